package branding

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// NormalizeVersion strips a leading "v" and canonicalizes semver input
// ("1.2" → "1.2.0"). Non-semver builds such as "dev" are returned unchanged.
func NormalizeVersion(version string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(version), "v")
	v, err := semver.NewVersion(trimmed)
	if err != nil {
		return trimmed
	}
	return v.String()
}

// NameAndVersion returns "<cli-name> v<version>", the identity stamped into
// generated package descriptions and printed in the intro banner.
func NameAndVersion(version string) string {
	return fmt.Sprintf("%s v%s", CLIName(), NormalizeVersion(version))
}
