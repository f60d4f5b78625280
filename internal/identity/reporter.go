package identity

import (
	"context"

	"github.com/agentx-labs/create-discord-bot/internal/output"
)

// InvalidTokenWarning is printed when no invite link could be produced.
const InvalidTokenWarning = "Bot invite link was not generated due to the given bot token being invalid."

// Resolver looks up the bot user id for a token.
type Resolver interface {
	CurrentUserID(ctx context.Context, token string) (string, error)
}

// Reporter prints the invite link for a freshly created bot.
type Reporter struct {
	Resolver Resolver
	Host     string
	Out      *output.Printer
}

// Report prints progress, then the invite link or a warning. It always
// returns nil: an unusable token must not fail project creation.
func (r *Reporter) Report(ctx context.Context, token string) error {
	r.Out.Line("Generating bot invite link...")

	id, err := r.Resolver.CurrentUserID(ctx, token)
	if err != nil {
		r.Out.Debug("identity lookup failed: %v", err)
		r.Out.Warn(InvalidTokenWarning)
		return nil
	}

	r.Out.Success("Invite your bot: " + InviteURL(r.Host, id))
	return nil
}
