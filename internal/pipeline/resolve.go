package pipeline

import "path/filepath"

// ResolveDirectory returns the absolute target directory for name. An
// absolute name is used as is; a relative one is resolved against cwd.
func ResolveDirectory(cwd, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(cwd, name)
}
