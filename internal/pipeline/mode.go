package pipeline

import (
	"context"
	"fmt"
)

// RunMode selects which step list a run executes.
type RunMode int

const (
	// CleanInstall creates a new project directory from the template.
	CleanInstall RunMode = iota
	// Update refreshes the core files of an existing project.
	Update
)

func (m RunMode) String() string {
	switch m {
	case CleanInstall:
		return "clean-install"
	case Update:
		return "update"
	default:
		return fmt.Sprintf("RunMode(%d)", int(m))
	}
}

// ConfirmFunc asks a yes/no question.
type ConfirmFunc func(ctx context.Context, message string) (bool, error)

// SelectMode picks the mode for a target that does or does not exist.
// confirmed is only consulted when the target exists.
func SelectMode(exists, confirmed bool, directory string) (RunMode, error) {
	if !exists {
		return CleanInstall, nil
	}
	if !confirmed {
		return 0, Fatalf("Error: '%s' already exists.\nQuitting...", directory)
	}
	return Update, nil
}

// Plan selects the run mode for directory. When it already exists the user
// is asked whether to update it; declining is fatal.
func Plan(ctx context.Context, directory string, exists bool, confirm ConfirmFunc) (RunMode, error) {
	if !exists {
		return SelectMode(false, false, directory)
	}

	ok, err := confirm(ctx, fmt.Sprintf("Directory '%s' already exists. Do you want to update it?", directory))
	if err != nil {
		return 0, err
	}
	return SelectMode(true, ok, directory)
}
