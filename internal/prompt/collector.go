package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentx-labs/create-discord-bot/internal/manifest"
)

// Answers are the inputs of a scaffolding run.
type Answers struct {
	Name  string
	Token string
}

// Collector gathers Answers through a Provider.
type Collector struct {
	Provider Provider
	// DefaultName pre-fills the application name, normally the template's
	// own package name.
	DefaultName string
	// TokenPlaceholder is used when no token is entered.
	TokenPlaceholder string
	// ValidateName overrides PackageNameValidator when set.
	ValidateName func(string) string
}

// Collect asks for the application name (re-asked until valid) and then the
// bot token.
func (c *Collector) Collect(ctx context.Context) (Answers, error) {
	validate := c.ValidateName
	if validate == nil {
		validate = PackageNameValidator
	}

	resp, err := c.Provider.Ask(ctx, []Question{
		{
			Kind:     Text,
			Name:     "name",
			Message:  "Application name?",
			Initial:  c.DefaultName,
			Validate: validate,
		},
		{
			Kind:    Password,
			Name:    "token",
			Message: "Discord bot token?",
			Initial: c.TokenPlaceholder,
		},
	})
	if err != nil {
		return Answers{}, fmt.Errorf("collecting answers: %w", err)
	}

	return Answers{Name: resp["name"], Token: resp["token"]}, nil
}

// PackageNameValidator accepts names valid for new npm packages and
// otherwise returns "Error: <reasons>.".
func PackageNameValidator(name string) string {
	r := manifest.ValidateName(name)
	if r.ValidForNewPackages {
		return ""
	}
	return "Error: " + strings.Join(r.Reasons(), ", ") + "."
}
