package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Terminal is a Provider that reads answers line by line from an input
// stream. When the input is a terminal, Password answers are read without
// echo.
type Terminal struct {
	reader *bufio.Reader
	out    io.Writer

	// fd is the terminal file descriptor for hidden input, or -1.
	fd           int
	readPassword func(fd int) ([]byte, error)

	promptStyle lipgloss.Style
	hintStyle   lipgloss.Style
	errorStyle  lipgloss.Style
}

// NewTerminal returns a Terminal reading from in and writing prompts to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}

	r := lipgloss.NewRenderer(out)
	return &Terminal{
		reader:       bufio.NewReader(in),
		out:          out,
		fd:           fd,
		readPassword: term.ReadPassword,
		promptStyle:  r.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true),
		hintStyle:    r.NewStyle().Foreground(lipgloss.Color("240")),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("red")),
	}
}

// Ask implements Provider.
func (t *Terminal) Ask(ctx context.Context, questions []Question) (Responses, error) {
	resp := make(Responses, len(questions))
	for _, q := range questions {
		answer, err := t.ask(ctx, q)
		if err != nil {
			return nil, err
		}
		resp[q.Name] = answer
	}
	return resp, nil
}

func (t *Terminal) ask(ctx context.Context, q Question) (string, error) {
	for {
		fmt.Fprint(t.out, t.render(q))

		line, err := t.read(ctx, q.Kind == Password)
		if err != nil {
			return "", err
		}

		answer := strings.TrimSpace(line)
		if q.Kind == YesNo {
			return strconv.FormatBool(parseConfirm(answer, q.Initial)), nil
		}
		if answer == "" {
			answer = q.Initial
		}

		if q.Validate != nil {
			if msg := q.Validate(answer); msg != "" {
				fmt.Fprintln(t.out, t.errorStyle.Render(msg))
				continue
			}
		}
		return answer, nil
	}
}

func (t *Terminal) render(q Question) string {
	var hint string
	switch q.Kind {
	case YesNo:
		hint = "[y/N]"
		if parseConfirm("", q.Initial) {
			hint = "[Y/n]"
		}
	case Password:
		if q.Initial != "" {
			hint = "(press ENTER to use the placeholder)"
		}
	default:
		if q.Initial != "" {
			hint = "(" + q.Initial + ")"
		}
	}

	s := t.promptStyle.Render(q.Message)
	if hint != "" {
		s += " " + t.hintStyle.Render(hint)
	}
	return s + " "
}

type readResult struct {
	line string
	err  error
}

// read returns one line of input. It gives up when ctx is cancelled; the
// blocked read is abandoned since the process is about to exit anyway.
func (t *Terminal) read(ctx context.Context, hidden bool) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		// Pasted input already buffered past the previous line belongs to
		// this answer; the raw fd would skip it.
		if hidden && t.fd >= 0 && t.reader.Buffered() == 0 {
			b, err := t.readPassword(t.fd)
			fmt.Fprintln(t.out)
			ch <- readResult{line: string(b), err: err}
			return
		}
		line, err := t.reader.ReadString('\n')
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		}
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(t.out)
		return "", fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			if errors.Is(res.err, io.EOF) {
				return "", ErrCancelled
			}
			return "", fmt.Errorf("reading answer: %w", res.err)
		}
		return res.line, nil
	}
}

// parseConfirm interprets a yes/no answer, falling back to initial.
func parseConfirm(answer, initial string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	case "":
		v, _ := strconv.ParseBool(initial)
		return v
	default:
		return false
	}
}
