package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/ecostep/internal/footprint"
)

func TestRenderer_PlainPassesThrough(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})

	assert.Equal(t, "header", r.Heading("header"))
	assert.Equal(t, "tier line", r.Tier("tier line", footprint.TierHigh))
}

func TestRenderer_StyledKeepsText(t *testing.T) {
	r := newRenderer(&bytes.Buffer{}, true)

	assert.Contains(t, r.Heading("Ways to Reduce"), "Ways to Reduce")
	assert.Contains(t, r.Tier("is VERY HIGH.", footprint.TierVeryHigh), "is VERY HIGH.")
}

func TestTierColor(t *testing.T) {
	assert.Equal(t, ColorLow, tierColor(footprint.TierLow))
	assert.Equal(t, ColorModerate, tierColor(footprint.TierModerate))
	assert.Equal(t, ColorHigh, tierColor(footprint.TierHigh))
	assert.Equal(t, ColorVeryHigh, tierColor(footprint.TierVeryHigh))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
