package identity

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agentx-labs/create-discord-bot/internal/output"
)

func newServer(t *testing.T, wantToken string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/users/@me" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bot "+wantToken {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "401: Unauthorized", "code": 0}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "123456789012345678", "username": "pinger", "bot": true}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCurrentUser(t *testing.T) {
	server := newServer(t, "good-token")
	c := New(WithHTTPClient(server.Client()), WithBaseURL(server.URL+"/"))

	user, err := c.CurrentUser(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if user.ID != "123456789012345678" || user.Username != "pinger" || !user.Bot {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestCurrentUser_InvalidToken(t *testing.T) {
	server := newServer(t, "good-token")
	c := New(WithHTTPClient(server.Client()), WithBaseURL(server.URL))

	_, err := c.CurrentUserID(context.Background(), "bad-token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCurrentUser_BlankTokenCheckedRemotely(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := New(WithHTTPClient(server.Client()), WithBaseURL(server.URL))
	_, err := c.CurrentUserID(context.Background(), "")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if requests != 1 {
		t.Errorf("server saw %d requests, want 1", requests)
	}
}

func TestCurrentUser_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := New(WithHTTPClient(server.Client()), WithBaseURL(server.URL))
	_, err := c.CurrentUser(context.Background(), "token")
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestCurrentUser_MissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"username": "ghost"}`))
	}))
	defer server.Close()

	c := New(WithHTTPClient(server.Client()), WithBaseURL(server.URL))
	if _, err := c.CurrentUser(context.Background(), "token"); err == nil {
		t.Fatal("expected error for user without id")
	}
}

func TestInviteURL(t *testing.T) {
	got := InviteURL("discordapp.com", "123")
	want := "https://discordapp.com/oauth2/authorize?scope=bot&client_id=123"
	if got != want {
		t.Errorf("InviteURL = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	server := newServer(t, "good-token")
	c := New(WithHTTPClient(server.Client()), WithBaseURL(server.URL))

	tests := []struct {
		name     string
		token    string
		contains string
		absent   string
	}{
		{
			name:     "valid token",
			token:    "good-token",
			contains: "Invite your bot: https://discordapp.com/oauth2/authorize?scope=bot&client_id=123456789012345678",
			absent:   InvalidTokenWarning,
		},
		{
			name:     "invalid token",
			token:    "DISCORD_BOT_TOKEN_PLACEHOLDER",
			contains: InvalidTokenWarning,
			absent:   "Invite your bot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &Reporter{Resolver: c, Host: "discordapp.com", Out: output.New(&buf)}

			if err := r.Report(context.Background(), tt.token); err != nil {
				t.Fatalf("Report returned error: %v", err)
			}
			out := buf.String()
			if !strings.HasPrefix(out, "Generating bot invite link...\n") {
				t.Errorf("missing progress line, got %q", out)
			}
			if !strings.Contains(out, tt.contains) {
				t.Errorf("output %q does not contain %q", out, tt.contains)
			}
			if strings.Contains(out, tt.absent) {
				t.Errorf("output %q unexpectedly contains %q", out, tt.absent)
			}
		})
	}
}

func TestReport_NetworkFailureIsWarning(t *testing.T) {
	server := newServer(t, "good-token")
	c := New(WithHTTPClient(server.Client()), WithBaseURL(server.URL))
	server.Close()

	var buf bytes.Buffer
	r := &Reporter{Resolver: c, Host: "discordapp.com", Out: output.New(&buf)}
	if err := r.Report(context.Background(), "good-token"); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if !strings.Contains(buf.String(), InvalidTokenWarning) {
		t.Errorf("expected warning, got %q", buf.String())
	}
}
