package prompt

import (
	"context"
	"errors"
	"strconv"
)

// Kind selects how a question is asked and how its answer is echoed.
type Kind int

const (
	// Text asks for a single line of visible input.
	Text Kind = iota
	// Password asks for a single line of hidden input.
	Password
	// YesNo asks a yes/no question; the answer is "true" or "false".
	YesNo
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Password:
		return "password"
	case YesNo:
		return "confirm"
	default:
		return "unknown"
	}
}

// Question describes one prompt.
type Question struct {
	Kind    Kind
	Name    string
	Message string
	// Initial is returned when the user submits an empty answer. For YesNo
	// questions it is parsed as a bool; empty means "no".
	Initial string
	// Validate returns "" when the answer is acceptable, otherwise the
	// message shown before asking again.
	Validate func(answer string) string
}

// Responses maps question names to answers.
type Responses map[string]string

// Bool interprets the named answer as a YesNo result.
func (r Responses) Bool(name string) bool {
	v, err := strconv.ParseBool(r[name])
	return err == nil && v
}

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("prompt cancelled")

// Provider asks questions in order and returns every answer, or an error
// wrapping ErrCancelled when the user aborts.
type Provider interface {
	Ask(ctx context.Context, questions []Question) (Responses, error)
}

// Confirm asks a single yes/no question through p.
func Confirm(ctx context.Context, p Provider, message string) (bool, error) {
	resp, err := p.Ask(ctx, []Question{{Kind: YesNo, Name: "confirm", Message: message}})
	if err != nil {
		return false, err
	}
	return resp.Bool("confirm"), nil
}
