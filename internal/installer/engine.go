package installer

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckEngine reports whether version (e.g. "v18.17.0") satisfies the
// semver range constraint (e.g. ">=12.0.0").
func CheckEngine(constraint, version string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing engine constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(version), "v"))
	if err != nil {
		return false, fmt.Errorf("parsing node version %q: %w", version, err)
	}
	return c.Check(v), nil
}

// NodeEngineWarning returns a human-readable warning when the local Node.js
// does not satisfy constraint, or "" when it does or cannot be determined.
// It never fails: a missing node binary is reported by the installer itself.
func (r *Runner) NodeEngineWarning(ctx context.Context, dir, constraint string) string {
	if constraint == "" {
		return ""
	}
	version, err := r.Output(ctx, dir, "node", "--version")
	if err != nil {
		return ""
	}
	ok, err := CheckEngine(constraint, version)
	if err != nil || ok {
		return ""
	}
	return fmt.Sprintf("Warning: Node.js %s does not satisfy the template's engines.node %q.", version, constraint)
}
