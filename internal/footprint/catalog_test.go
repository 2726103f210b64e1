package footprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, EmissionFactors{Electronics: 0.05, Vehicles: 2.31, Household: 0.45}, catalog.Factors())

	t.Run("thresholds", func(t *testing.T) {
		want := map[Category]Thresholds{
			Electronics: {Low: 0.7, Moderate: 2.1, High: 4.2},
			Vehicles:    {Low: 32.2, Moderate: 80.5, High: 161.7},
			Household:   {Low: 15.75, Moderate: 31.5, High: 63.0},
		}
		for c, th := range want {
			p, err := catalog.Profile(c)
			require.NoError(t, err)
			assert.Equal(t, th, p.Thresholds, c.String())
		}
	})

	t.Run("strategies are fixed and ordered", func(t *testing.T) {
		p, err := catalog.Profile(Electronics)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Invest in energy-efficient appliances",
			"Minimize screen time and reduce power usage",
			"Unplug devices when not in use",
			"Use energy-efficient devices",
			"Turn off devices instead of leaving them on standby",
		}, p.Strategies())

		p, err = catalog.Profile(Vehicles)
		require.NoError(t, err)
		assert.Len(t, p.Strategies(), 6)
		assert.Equal(t, "Use public transportation, carpooling, biking or walking", p.Strategies()[0])

		p, err = catalog.Profile(Household)
		require.NoError(t, err)
		assert.Len(t, p.Strategies(), 7)
		assert.Equal(t, "Install solar panels or other renewable energy sources", p.Strategies()[6])
	})

	t.Run("strategies copy is detached", func(t *testing.T) {
		p, err := catalog.Profile(Vehicles)
		require.NoError(t, err)
		s := p.Strategies()
		s[0] = "changed"

		again, err := catalog.Profile(Vehicles)
		require.NoError(t, err)
		assert.NotEqual(t, "changed", again.Strategies()[0])
	})

	t.Run("vehicle strategies do not leak into other categories", func(t *testing.T) {
		vehicles, err := catalog.Profile(Vehicles)
		require.NoError(t, err)
		for _, other := range []Category{Electronics, Household} {
			p, err := catalog.Profile(other)
			require.NoError(t, err)
			for _, s := range vehicles.Strategies() {
				assert.NotContains(t, p.Strategies(), s)
			}
		}
	})
}

func TestParseCatalog_Invalid(t *testing.T) {
	valid := string(defaultCatalogYAML)

	tests := []struct {
		name string
		doc  string
	}{
		{name: "not yaml", doc: "categories: [\n"},
		{name: "missing category", doc: strings.Replace(valid, "  household:", "  garden:", 1)},
		{name: "non-positive factor", doc: strings.Replace(valid, "factor: 2.31", "factor: 0", 1)},
		{name: "wrong threshold count", doc: strings.Replace(valid, "[0.7, 2.1, 4.2]", "[0.7, 2.1]", 1)},
		{name: "descending thresholds", doc: strings.Replace(valid, "[15.75, 31.5, 63.0]", "[15.75, 3.5, 63.0]", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.doc))
			require.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}
