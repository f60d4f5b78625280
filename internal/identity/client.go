package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/agentx-labs/create-discord-bot/internal/branding"
)

// ErrInvalidToken is returned when the API rejects the bot token.
var ErrInvalidToken = errors.New("bot token was rejected")

// User is the subset of the Discord user object the invite link needs.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Bot      bool   `json:"bot"`
}

// Client resolves the identity behind a bot token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithBaseURL points the client at another API root, e.g. an httptest server.
func WithBaseURL(u string) Option {
	return func(cl *Client) {
		cl.baseURL = strings.TrimRight(u, "/")
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// New creates a Client for the configured Discord API.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    strings.TrimRight(branding.APIBaseURL(), "/"),
		userAgent:  "DiscordBot (" + branding.CLIName() + ")",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentUser fetches the user the token belongs to.
func (c *Client) CurrentUser(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/@me", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching current user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discord API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("parsing user JSON: %w", err)
	}
	if user.ID == "" {
		return nil, errors.New("user response has no id")
	}
	return &user, nil
}

// CurrentUserID returns the id of the user the token belongs to.
func (c *Client) CurrentUserID(ctx context.Context, token string) (string, error) {
	user, err := c.CurrentUser(ctx, token)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

// InviteURL builds the OAuth2 authorize link that adds a bot to a server.
func InviteURL(host, clientID string) string {
	return fmt.Sprintf("https://%s/oauth2/authorize?scope=bot&client_id=%s", host, url.QueryEscape(clientID))
}
