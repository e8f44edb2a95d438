package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	oerrors "github.com/opmodel/modkit/internal/errors"
	"github.com/opmodel/modkit/internal/output"
)

// HuhPrompter asks for fields with a huh form.
type HuhPrompter struct {
	// In is the answer source. Nil means stdin.
	In io.Reader

	// Out receives the form. Nil means stdout, or stderr in accessible mode.
	Out io.Writer

	// Accessible renders plain line prompts instead of the TUI.
	Accessible bool
}

// NewHuhPrompter creates a prompter. Accessible mode is used when stdin is not
// a terminal or ACCESSIBLE is set, and then prompts go to stderr so they are
// not captured with the command's output.
func NewHuhPrompter() *HuhPrompter {
	accessible := !output.IsInputTTY() || os.Getenv("ACCESSIBLE") != ""

	var out io.Writer = os.Stdout
	if accessible {
		out = os.Stderr
	}

	return &HuhPrompter{
		Out:        out,
		Accessible: accessible,
	}
}

// Prompt runs one form with an input per field.
func (p *HuhPrompter) Prompt(ctx context.Context, fields []Field) error {
	inputs := make([]huh.Field, 0, len(fields))
	for _, f := range fields {
		in := huh.NewInput().
			Key(f.Key).
			Title(f.Title).
			Placeholder(f.Placeholder).
			Value(f.Value)
		if f.Description != "" {
			in = in.Description(f.Description)
		}
		if f.Validate != nil {
			in = in.Validate(f.Validate)
		}
		inputs = append(inputs, in)
	}

	var lines *lineReader
	in := p.In
	if p.Accessible {
		if in == nil {
			in = os.Stdin
		}
		lines = newLineReader(in)
		in = lines
	}

	form := huh.NewForm(huh.NewGroup(inputs...)).
		WithTheme(huh.ThemeBase()).
		WithAccessible(p.Accessible)
	if in != nil {
		form = form.WithInput(in)
	}
	if p.Out != nil {
		form = form.WithOutput(p.Out)
	}

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) ||
			errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return oerrors.ErrCancelled
		}
		return fmt.Errorf("prompting: %w", err)
	}

	// Input that ends before every field has a valid answer is treated as
	// an abort.
	if lines != nil && lines.eof {
		for _, f := range fields {
			if f.Validate != nil && f.Validate(*f.Value) != nil {
				return oerrors.ErrCancelled
			}
		}
	}
	return nil
}

// lineReader hands out at most one line per Read. Accessible prompts scan
// each field with a new scanner, so a bulk read would swallow the answers of
// later fields.
type lineReader struct {
	r   *bufio.Reader
	eof bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (l *lineReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := l.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
			}
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		p[n] = b
		n++
		if b == '\n' {
			break
		}
	}
	return n, nil
}
