// Package footprint estimates daily and weekly carbon footprints for a single
// declared activity and classifies the weekly value into a severity tier.
//
// All reference data (emission factors, tier thresholds, mitigation strategies
// and the per-category wording of the session) lives in an immutable Catalog
// decoded once from an embedded YAML document.
package footprint
