package manifest

import (
	"regexp"
	"strings"
)

// maxNameLength is the longest name the npm registry accepts for new packages.
const maxNameLength = 214

var (
	scopedNamePattern = regexp.MustCompile(`^(?:@([^/]+?)[/])?([^/]+?)$`)
	specialChars      = regexp.MustCompile(`[~'!()*]`)

	blacklistedNames = []string{"node_modules", "favicon.ico"}

	// coreModules are the Node.js built-in module names; npm warns when a
	// package shadows one of them.
	coreModules = []string{
		"assert", "async_hooks", "buffer", "child_process", "cluster", "console",
		"constants", "crypto", "dgram", "dns", "domain", "events", "fs", "http",
		"http2", "https", "inspector", "module", "net", "os", "path", "perf_hooks",
		"process", "punycode", "querystring", "readline", "repl", "stream",
		"string_decoder", "sys", "timers", "tls", "trace_events", "tty", "url",
		"util", "v8", "vm", "wasi", "worker_threads", "zlib",
	}
)

// NameResult is the outcome of validating a package name.
type NameResult struct {
	ValidForNewPackages bool
	ValidForOldPackages bool
	Errors              []string
	Warnings            []string
}

// Reasons returns the errors, or the warnings when there are no errors.
func (r NameResult) Reasons() []string {
	if len(r.Errors) > 0 {
		return r.Errors
	}
	return r.Warnings
}

// ValidateName checks name against the npm package-name rules. Errors make a
// name unusable; warnings only make it unusable for newly published packages.
func ValidateName(name string) NameResult {
	var errs, warnings []string

	if name == "" {
		errs = append(errs, "name length must be greater than zero")
	}
	if strings.HasPrefix(name, ".") {
		errs = append(errs, "name cannot start with a period")
	}
	if strings.HasPrefix(name, "_") {
		errs = append(errs, "name cannot start with an underscore")
	}
	if strings.TrimSpace(name) != name {
		errs = append(errs, "name cannot contain leading or trailing spaces")
	}

	lower := strings.ToLower(name)
	for _, b := range blacklistedNames {
		if lower == b {
			errs = append(errs, b+" is a blacklisted name")
		}
	}
	for _, m := range coreModules {
		if lower == m {
			warnings = append(warnings, m+" is a core module name")
		}
	}

	if len(name) > maxNameLength {
		warnings = append(warnings, "name can no longer contain more than 214 characters")
	}
	if lower != name {
		warnings = append(warnings, "name can no longer contain capital letters")
	}

	parts := strings.Split(name, "/")
	if specialChars.MatchString(parts[len(parts)-1]) {
		warnings = append(warnings, `name can no longer contain special characters ("~'!()*")`)
	}

	if !uriComponentSafe(name) && !validScopedName(name) {
		errs = append(errs, "name can only contain URL-friendly characters")
	}

	return NameResult{
		ValidForNewPackages: len(errs) == 0 && len(warnings) == 0,
		ValidForOldPackages: len(errs) == 0,
		Errors:              errs,
		Warnings:            warnings,
	}
}

// validScopedName accepts "@scope/name" where both halves are URL-safe.
func validScopedName(name string) bool {
	m := scopedNamePattern.FindStringSubmatch(name)
	if m == nil || m[1] == "" {
		return false
	}
	return uriComponentSafe(m[1]) && uriComponentSafe(m[2])
}

// uriComponentSafe reports whether s survives URI component encoding
// unchanged, i.e. consists only of A-Z a-z 0-9 and -_.!~*'().
func uriComponentSafe(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("-_.!~*'()", c) >= 0:
		default:
			return false
		}
	}
	return true
}
