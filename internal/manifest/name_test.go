package manifest

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		validNew   bool
		validOld   bool
		wantReason string
	}{
		{"simple", "my-bot", true, true, ""},
		{"dots and underscores", "my_bot.js", true, true, ""},
		{"scoped", "@acme/my-bot", true, true, ""},
		{"empty", "", false, false, "name length must be greater than zero"},
		{"leading period", ".bot", false, false, "name cannot start with a period"},
		{"leading underscore", "_bot", false, false, "name cannot start with an underscore"},
		{"surrounding spaces", " bot ", false, false, "name cannot contain leading or trailing spaces"},
		{"blacklisted", "node_modules", false, false, "node_modules is a blacklisted name"},
		{"blacklisted any case", "FAVICON.ICO", false, false, "favicon.ico is a blacklisted name"},
		{"core module", "http", false, true, "http is a core module name"},
		{"capital letters", "MyBot", false, true, "name can no longer contain capital letters"},
		{"special characters", "bot!", false, true, `name can no longer contain special characters ("~'!()*")`},
		{"url unsafe", "my bot", false, false, "name can only contain URL-friendly characters"},
		{"unicode", "bøt", false, false, "name can only contain URL-friendly characters"},
		{"slash without scope", "a/b", false, false, "name can only contain URL-friendly characters"},
		{"too long", strings.Repeat("a", 215), false, true, "name can no longer contain more than 214 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateName(tt.input)
			if r.ValidForNewPackages != tt.validNew {
				t.Errorf("ValidForNewPackages = %v, want %v (errors=%v warnings=%v)",
					r.ValidForNewPackages, tt.validNew, r.Errors, r.Warnings)
			}
			if r.ValidForOldPackages != tt.validOld {
				t.Errorf("ValidForOldPackages = %v, want %v", r.ValidForOldPackages, tt.validOld)
			}
			if tt.wantReason == "" {
				if len(r.Reasons()) != 0 {
					t.Errorf("unexpected reasons: %v", r.Reasons())
				}
				return
			}
			found := false
			for _, reason := range r.Reasons() {
				if reason == tt.wantReason {
					found = true
				}
			}
			if !found {
				t.Errorf("reasons %v do not contain %q", r.Reasons(), tt.wantReason)
			}
		})
	}
}

func TestNameResultReasonsPrefersErrors(t *testing.T) {
	// Uppercase triggers a warning, the space an error; only errors are reported.
	r := ValidateName("My Bot")
	if len(r.Errors) == 0 || len(r.Warnings) == 0 {
		t.Fatalf("expected both errors and warnings, got errors=%v warnings=%v", r.Errors, r.Warnings)
	}
	reasons := r.Reasons()
	if len(reasons) != len(r.Errors) || reasons[0] != r.Errors[0] {
		t.Errorf("Reasons() = %v, want errors %v", reasons, r.Errors)
	}
}
