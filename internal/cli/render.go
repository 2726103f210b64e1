package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rshade/ecostep/internal/footprint"
)

// Colors used when writing to a terminal.
const (
	ColorHeader   = lipgloss.Color("42")  // green
	ColorLow      = lipgloss.Color("42")  // green
	ColorModerate = lipgloss.Color("220") // yellow
	ColorHigh     = lipgloss.Color("208") // orange
	ColorVeryHigh = lipgloss.Color("196") // red
)

// isTerminal checks if the given writer is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Renderer styles report text. A plain renderer returns text unchanged so
// piped output stays byte-for-byte predictable.
type Renderer struct {
	styled bool
	lg     *lipgloss.Renderer
}

// NewRenderer styles output only when w is a terminal.
func NewRenderer(w io.Writer) Renderer {
	return newRenderer(w, isTerminal(w))
}

func newRenderer(w io.Writer, styled bool) Renderer {
	return Renderer{styled: styled, lg: lipgloss.NewRenderer(w)}
}

// Heading renders banner and section header lines.
func (r Renderer) Heading(s string) string {
	if !r.styled {
		return s
	}
	return r.lg.NewStyle().Bold(true).Foreground(ColorHeader).Render(s)
}

// Tier renders the classification line in the tier's color.
func (r Renderer) Tier(s string, t footprint.Tier) string {
	if !r.styled {
		return s
	}
	return r.lg.NewStyle().Bold(true).Foreground(tierColor(t)).Render(s)
}

func tierColor(t footprint.Tier) lipgloss.Color {
	switch t {
	case footprint.TierLow:
		return ColorLow
	case footprint.TierModerate:
		return ColorModerate
	case footprint.TierHigh:
		return ColorHigh
	default:
		return ColorVeryHigh
	}
}
