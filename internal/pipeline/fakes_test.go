package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing/fstest"

	"github.com/agentx-labs/create-discord-bot/internal/scaffold"
)

// recordingFS records every call instead of touching the disk.
type recordingFS struct {
	calls   []string
	files   map[string][]byte
	secrets map[string]bool
	failOn  string
}

func newRecordingFS() *recordingFS {
	return &recordingFS{files: map[string][]byte{}, secrets: map[string]bool{}}
}

func (f *recordingFS) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failOn != "" && f.failOn == call {
		return errors.New("disk full")
	}
	return nil
}

func (f *recordingFS) Exists(path string) (bool, error) {
	return false, nil
}

func (f *recordingFS) Mkdir(path string) error {
	return f.record("mkdir " + path)
}

func (f *recordingFS) Copy(src fs.FS, srcPath, dst string) error {
	if _, err := fs.Stat(src, srcPath); err != nil {
		return err
	}
	return f.record(fmt.Sprintf("copy %s %s", srcPath, dst))
}

func (f *recordingFS) WriteFile(path string, data []byte) error {
	if err := f.record("write " + path); err != nil {
		return err
	}
	f.files[path] = data
	return nil
}

func (f *recordingFS) WriteSecret(path string, data []byte) error {
	if err := f.record("secret " + path); err != nil {
		return err
	}
	f.files[path] = data
	f.secrets[path] = true
	return nil
}

type recordingInstaller struct {
	dir     string
	command []string
	calls   int
	err     error
}

func (i *recordingInstaller) Run(ctx context.Context, dir string, command []string) error {
	i.calls++
	i.dir = dir
	i.command = command
	return i.err
}

func testTemplate(t interface{ Fatalf(string, ...any) }) *scaffold.Template {
	fsys := fstest.MapFS{
		"package.json":         {Data: []byte(`{"a": 1, "name": "discord-bot", "b": 2}`)},
		"src/index.js":         {Data: []byte("require('./core/client');\n")},
		"src/core/client.js":   {Data: []byte("module.exports = {};\n")},
		"src/commands/ping.js": {Data: []byte("module.exports = {};\n")},
	}
	tmpl, err := scaffold.Load(fsys, "test")
	if err != nil {
		t.Fatalf("loading template: %v", err)
	}
	return tmpl
}
