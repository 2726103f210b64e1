package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecostep/internal/footprint"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("stdin closed") }

func TestPrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  e  \n 42\n"), &out)

	first, err := p.Ask("first?")
	require.NoError(t, err)
	assert.Equal(t, "e", first)

	second, err := p.Ask("second?")
	require.NoError(t, err)
	assert.Equal(t, "42", second)

	assert.Equal(t, "first?\nsecond?\n", out.String())
}

func TestPrompter_AskEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	got, err := p.Ask("anything?")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPrompter_AskLastLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("V"), &bytes.Buffer{})

	got, err := p.Ask("choice?")
	require.NoError(t, err)
	assert.Equal(t, "V", got)
}

func TestPrompter_AskReadError(t *testing.T) {
	p := NewPrompter(failingReader{}, &bytes.Buffer{})

	_, err := p.Ask("choice?")
	require.ErrorIs(t, err, footprint.ErrReadInput)
	assert.Contains(t, err.Error(), "stdin closed")
}

func TestPrompter_AskLongLine(t *testing.T) {
	long := strings.Repeat("Z", 70_000)
	p := NewPrompter(strings.NewReader(long+"\n5\n"), &bytes.Buffer{})

	got, err := p.Ask("choice?")
	require.NoError(t, err)
	assert.Len(t, got, 70_000)

	next, err := p.Ask("quantity?")
	require.NoError(t, err)
	assert.Equal(t, "5", next)
}
