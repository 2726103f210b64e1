package footprint

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// thresholdCount is the number of bounded tiers; the last tier is open-ended.
const thresholdCount = 3

// Profile is the reference data and wording for one category.
type Profile struct {
	Category       Category
	Factor         float64
	Thresholds     Thresholds
	Intro          string
	Prompt         string
	Subject        string
	TierSubject    string
	StrategyHeader string
	strategies     []string
}

// Strategies returns a copy of the ordered mitigation strategies.
func (p Profile) Strategies() []string {
	out := make([]string, len(p.strategies))
	copy(out, p.strategies)
	return out
}

// Catalog is the immutable reference data for every category.
type Catalog struct {
	profiles map[Category]Profile
}

type catalogFile struct {
	Categories map[string]profileEntry `yaml:"categories"`
}

type profileEntry struct {
	Factor         float64   `yaml:"factor"`
	Thresholds     []float64 `yaml:"thresholds"`
	Intro          string    `yaml:"intro"`
	Prompt         string    `yaml:"prompt"`
	Subject        string    `yaml:"subject"`
	TierSubject    string    `yaml:"tier_subject"`
	StrategyHeader string    `yaml:"strategy_header"`
	Strategies     []string  `yaml:"strategies"`
}

// DefaultCatalog decodes the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// ParseCatalog decodes and validates a YAML catalog document. Every category
// must be present with a positive factor, strictly ascending thresholds and at
// least one strategy.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: decoding yaml: %w", ErrInvalidCatalog, err)
	}

	profiles := make(map[Category]Profile, len(Categories()))
	for _, c := range Categories() {
		entry, ok := file.Categories[c.key()]
		if !ok {
			return nil, fmt.Errorf("%w: missing category %q", ErrInvalidCatalog, c.key())
		}
		p, err := entry.toProfile(c)
		if err != nil {
			return nil, err
		}
		profiles[c] = p
	}

	return &Catalog{profiles: profiles}, nil
}

func (e profileEntry) toProfile(c Category) (Profile, error) {
	if e.Factor <= 0 {
		return Profile{}, fmt.Errorf("%w: %s factor must be positive, got %v", ErrInvalidCatalog, c, e.Factor)
	}
	if len(e.Thresholds) != thresholdCount {
		return Profile{}, fmt.Errorf("%w: %s needs %d thresholds, got %d",
			ErrInvalidCatalog, c, thresholdCount, len(e.Thresholds))
	}
	for i := 1; i < len(e.Thresholds); i++ {
		if e.Thresholds[i] <= e.Thresholds[i-1] {
			return Profile{}, fmt.Errorf("%w: %s thresholds must be strictly ascending", ErrInvalidCatalog, c)
		}
	}
	if len(e.Strategies) == 0 {
		return Profile{}, fmt.Errorf("%w: %s has no strategies", ErrInvalidCatalog, c)
	}
	if strings.TrimSpace(e.Prompt) == "" {
		return Profile{}, fmt.Errorf("%w: %s has no prompt", ErrInvalidCatalog, c)
	}

	strategies := make([]string, len(e.Strategies))
	copy(strategies, e.Strategies)

	return Profile{
		Category: c,
		Factor:   e.Factor,
		Thresholds: Thresholds{
			Low:      e.Thresholds[0],
			Moderate: e.Thresholds[1],
			High:     e.Thresholds[2],
		},
		Intro:          e.Intro,
		Prompt:         e.Prompt,
		Subject:        e.Subject,
		TierSubject:    e.TierSubject,
		StrategyHeader: e.StrategyHeader,
		strategies:     strategies,
	}, nil
}

// Profile returns the reference data of a category.
func (c *Catalog) Profile(cat Category) (Profile, error) {
	p, ok := c.profiles[cat]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownCategory, cat)
	}
	return p, nil
}

// Factors returns the emission factors of every category.
func (c *Catalog) Factors() EmissionFactors {
	return EmissionFactors{
		Electronics: c.profiles[Electronics].Factor,
		Vehicles:    c.profiles[Vehicles].Factor,
		Household:   c.profiles[Household].Factor,
	}
}
