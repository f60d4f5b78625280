//go:build integration

package integration_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/agentx-labs/create-discord-bot/internal/fsops"
	"github.com/agentx-labs/create-discord-bot/internal/identity"
	"github.com/agentx-labs/create-discord-bot/internal/installer"
	"github.com/agentx-labs/create-discord-bot/internal/output"
	"github.com/agentx-labs/create-discord-bot/internal/project"
	"github.com/agentx-labs/create-discord-bot/internal/prompt"
	"github.com/agentx-labs/create-discord-bot/internal/scaffold"
)

const (
	validToken = "valid.bot.token"
	botID      = "987654321098765432"
)

// testEnv holds an isolated working directory and the fakes behind a run.
type testEnv struct {
	WorkDir   string
	Installer string // path to the fake installer script
	APIURL    string
	Out       *bytes.Buffer
}

// setupTestEnv creates a sandboxed working directory, a fake installer that
// records where it ran, and a Discord API stand-in accepting validToken.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake installer is a shell script")
	}

	env := &testEnv{
		WorkDir: t.TempDir(),
		Out:     &bytes.Buffer{},
	}

	env.Installer = filepath.Join(t.TempDir(), "fake-npm")
	writeFile(t, env.Installer, "#!/bin/sh\npwd > installed.txt\necho \"$@\" >> installed.txt\n")
	if err := os.Chmod(env.Installer, 0o755); err != nil {
		t.Fatalf("chmod installer: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bot "+validToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"id": "` + botID + `", "username": "it-bot", "bot": true}`))
	}))
	t.Cleanup(server.Close)
	env.APIURL = server.URL

	return env
}

// newCreator wires real collaborators; only the network and npm are faked.
func (env *testEnv) newCreator(t *testing.T, tmpl *scaffold.Template, input string) *project.Creator {
	t.Helper()
	if tmpl == nil {
		var err error
		if tmpl, err = scaffold.Bundled(); err != nil {
			t.Fatalf("loading bundled template: %v", err)
		}
	}

	out := output.New(env.Out)
	client := identity.New(identity.WithBaseURL(env.APIURL))
	return &project.Creator{
		Prompter:       prompt.NewTerminal(strings.NewReader(input), env.Out),
		FS:             fsops.OS{},
		Installer:      installer.New(nil),
		Reporter:       &identity.Reporter{Resolver: client, Host: "discordapp.com", Out: out},
		Template:       tmpl,
		Out:            out,
		Cwd:            env.WorkDir,
		Version:        "2.0.0",
		InstallCommand: []string{env.Installer, "ci", "--loglevel=error"},
	}
}

// writeFile creates parent dirs and writes content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
