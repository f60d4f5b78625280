package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

const (
	dirPerm    fs.FileMode = 0o755
	filePerm   fs.FileMode = 0o644
	execPerm   fs.FileMode = 0o755
	secretPerm fs.FileMode = 0o600
)

// excludedNames are never copied out of a template tree.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// OS implements the filesystem provider on the local disk.
type OS struct{}

// Exists reports whether anything exists at path.
func (OS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}

// Mkdir creates a single directory. It fails if path already exists or its
// parent is missing.
func (OS) Mkdir(path string) error {
	if err := os.Mkdir(path, dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// Copy copies srcPath from src to dst. A directory is copied recursively,
// merging into dst and overwriting files that already exist; a file is
// copied to exactly dst.
func (OS) Copy(src fs.FS, srcPath, dst string) error {
	info, err := fs.Stat(src, srcPath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", srcPath, err)
	}

	if !info.IsDir() {
		if err := copyFile(src, srcPath, dst, info.Mode()); err != nil {
			return fmt.Errorf("copying %s to %s: %w", srcPath, dst, err)
		}
		return nil
	}

	if err := copyDir(src, srcPath, dst); err != nil {
		return fmt.Errorf("copying %s to %s: %w", srcPath, dst, err)
	}
	return nil
}

// WriteFile writes data to path, replacing any existing content.
func (OS) WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteSecret writes data to path readable only by the owner.
func (OS) WriteSecret(path string, data []byte) error {
	if err := os.WriteFile(path, data, secretPerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	// WriteFile keeps the mode of a pre-existing file.
	if err := chmod(path, secretPerm); err != nil {
		return fmt.Errorf("restricting permissions on %s: %w", path, err)
	}
	return nil
}

func copyDir(src fs.FS, root, dst string) error {
	return fs.WalkDir(src, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && excludedNames[d.Name()] {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(filepath.FromSlash(root), filepath.FromSlash(path))
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, dirPerm)
		case d.Type().IsRegular():
			info, err := d.Info()
			if err != nil {
				return err
			}
			return copyFile(src, path, target, info.Mode())
		default:
			// Symlinks and special files are not part of a template.
			return nil
		}
	})
}

func copyFile(src fs.FS, path, dst string, mode fs.FileMode) error {
	data, err := fs.ReadFile(src, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return err
	}

	perm := filePerm
	if mode&0o111 != 0 {
		perm = execPerm
	}
	return os.WriteFile(dst, data, perm)
}

// chmod is a no-op on Windows, which has no Unix permission bits.
func chmod(path string, mode fs.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
