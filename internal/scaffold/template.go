package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/agentx-labs/create-discord-bot/internal/manifest"
)

//go:embed app
var appFS embed.FS

// Paths inside the template tree refreshed by an update run.
const (
	CoreDir   = "src/core"
	EntryFile = "src/index.js"
)

// Template is a bot project template: a file tree plus its parsed
// package manifest.
type Template struct {
	FS      fs.FS
	Package *manifest.Package
	// Source describes where the tree came from, for diagnostics.
	Source string
}

// Open returns the template at dir, or the bundled template when dir is empty.
func Open(dir string) (*Template, error) {
	if dir == "" {
		return Bundled()
	}
	return FromDir(dir)
}

// Bundled returns the template embedded in the binary.
func Bundled() (*Template, error) {
	sub, err := fs.Sub(appFS, "app")
	if err != nil {
		return nil, fmt.Errorf("opening bundled template: %w", err)
	}
	return Load(sub, "bundled")
}

// FromDir returns a template read from a directory on disk.
func FromDir(dir string) (*Template, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("template directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template path %s is not a directory", dir)
	}
	return Load(os.DirFS(dir), dir)
}

// Load builds a Template from fsys. The tree must contain a package.json at
// its root and the core files refreshed by updates.
func Load(fsys fs.FS, source string) (*Template, error) {
	pkg, err := manifest.ReadPackage(fsys, manifest.FileName)
	if err != nil {
		return nil, fmt.Errorf("loading template %s: %w", source, err)
	}

	for _, required := range []string{CoreDir, EntryFile} {
		if _, err := fs.Stat(fsys, required); err != nil {
			return nil, fmt.Errorf("template %s is missing %s: %w", source, required, err)
		}
	}

	return &Template{FS: fsys, Package: pkg, Source: source}, nil
}

// Files returns the slash-separated paths of every regular file in the
// template, sorted.
func (t *Template) Files() ([]string, error) {
	var files []string
	err := fs.WalkDir(t.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
