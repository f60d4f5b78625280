// Package identity talks to the Discord REST API to resolve the bot user
// behind a token and builds the OAuth2 invite link for it. The lookup is
// best-effort: Reporter never fails a run, it only prints a warning.
package identity
