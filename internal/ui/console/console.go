package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	apperrors "bikeshare/internal/platform/errors"
)

type line struct {
	text string
	err  error
}

// Console is a line-oriented prompt over an input stream. A single reader
// goroutine feeds lines so a pending prompt can also observe interrupts and
// context cancellation.
type Console struct {
	out        io.Writer
	lines      <-chan line
	interrupts <-chan os.Signal
}

// New starts reading in. interrupts may be nil when no signal handling is wanted.
func New(in io.Reader, out io.Writer, interrupts <-chan os.Signal) *Console {
	lines := make(chan line)
	go scan(in, lines)
	return &Console{out: out, lines: lines, interrupts: interrupts}
}

func scan(in io.Reader, lines chan<- line) {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines <- line{text: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	lines <- line{err: err}
}

func (c *Console) Writer() io.Writer { return c.out }

func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	_, _ = fmt.Fprintln(c.out, args...)
}

// ReadLine writes prompt and waits for one line. It returns io.EOF once the
// input is exhausted, apperrors.ErrInterrupted on SIGINT and ctx.Err() on
// cancellation.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	c.Printf("%s", prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.interrupts:
		c.Println()
		return "", apperrors.ErrInterrupted
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return l.text, nil
	}
}

// Choose prompts until the lower-cased answer is one of allowed. An empty
// answer or any read failure yields def.
func (c *Console) Choose(ctx context.Context, label string, allowed []string, def string) string {
	for {
		answer, err := c.ReadLine(ctx, fmt.Sprintf("Enter a %s: ", label))
		if err != nil {
			c.Printf("%s, using default value of %s\n", describe(err), def)
			return def
		}
		answer = strings.ToLower(answer)
		if slices.Contains(allowed, answer) {
			return answer
		}
		if answer == "" {
			c.Printf("Using default value of %s\n", def)
			return def
		}
		c.Printf("Invalid %s, valid inputs are:\n%s\n", label, strings.Join(allowed, "\n"))
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInterrupted), errors.Is(err, io.EOF):
		return "Keyboard interrupt detected"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Cancelled"
	default:
		return "Input unavailable"
	}
}
