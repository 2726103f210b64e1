package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rshade/ecostep/internal/footprint"
)

// Prompter prints a prompt and reads the answer line.
type Prompter struct {
	writer io.Writer
	reader *bufio.Reader
}

// NewPrompter reads answers from reader and writes prompts to writer.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{writer: writer, reader: bufio.NewReader(reader)}
}

// Ask prints the prompt on its own line and returns the next input line with
// surrounding whitespace removed. Lines have no length limit. End of input
// yields whatever was read before it, possibly "". A failing reader is
// reported as footprint.ErrReadInput.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprintln(p.writer, prompt)

	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", footprint.ErrReadInput, err)
	}

	return strings.TrimSpace(line), nil
}
