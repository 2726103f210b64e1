// Package version reports the build version of ecostep.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// DefaultVersion is reported when no valid version was injected at build time.
const DefaultVersion = "0.1.0-dev"

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/ecostep/pkg/version.version=1.2.3"
//
//nolint:gochecknoglobals // Set via ldflags.
var version = DefaultVersion

// GetVersion returns the normalized semantic version, or DefaultVersion when
// the injected value does not parse.
func GetVersion() string {
	return normalize(version)
}

func normalize(v string) string {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return DefaultVersion
	}
	return parsed.String()
}
