package tracker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrCancelled is returned when a confirmation is declined. Nothing was changed.
var ErrCancelled = errors.New("cancelled")

// Confirmer decides whether a pending mutation goes ahead. Confirm may block
// until the user answers; it should return promptly once ctx is done.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// AutoConfirm approves every prompt.
var AutoConfirm Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) {
	return true, nil
})

// PromptConfirmer asks on out and reads a y/N answer from in.
//
// A single goroutine reads in line by line for the life of the confirmer, so
// a prompt abandoned through ctx never leaves a second reader behind. A line
// typed after its prompt was abandoned answers the next prompt.
type PromptConfirmer struct {
	in      *bufio.Reader
	out     io.Writer
	once    sync.Once
	answers chan answer
}

type answer struct {
	line string
	err  error
}

// NewPromptConfirmer creates a PromptConfirmer.
func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{
		in:      bufio.NewReader(in),
		out:     out,
		answers: make(chan answer, 1),
	}
}

// readLoop feeds answers until in fails, then closes the channel after
// delivering the final result.
func (p *PromptConfirmer) readLoop() {
	defer close(p.answers)
	for {
		line, err := p.in.ReadString('\n')
		p.answers <- answer{line, err}
		if err != nil {
			return
		}
	}
}

// Confirm prints "<prompt> [y/N]: " and accepts "y" or "yes" in any case.
// End of input counts as no. The wait is abandoned if ctx is cancelled first.
func (p *PromptConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	p.once.Do(func() { go p.readLoop() })
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a, ok := <-p.answers:
		if !ok {
			return false, nil
		}
		if a.err != nil && a.line == "" {
			if errors.Is(a.err, io.EOF) {
				return false, nil
			}
			return false, fmt.Errorf("read answer: %w", a.err)
		}
		response := strings.TrimSpace(strings.ToLower(a.line))
		return response == "y" || response == "yes", nil
	}
}

// confirm runs the confirmation step of a mutation. A nil Confirmer approves.
func confirm(ctx context.Context, c Confirmer, prompt string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c == nil {
		return nil
	}

	ok, err := c.Confirm(ctx, prompt)
	if err != nil {
		return fmt.Errorf("confirmation: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}
