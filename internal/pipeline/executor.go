package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ExecuteOptions configures execution behavior.
type ExecuteOptions struct {
	DryRun bool
	Writer io.Writer // Where step messages go (defaults to os.Stdout)
}

// Execute runs steps in order. Each step's message is printed before its
// action runs; with DryRun the actions are skipped. The first failure stops
// execution and is returned as a *StepError.
func Execute(ctx context.Context, steps []Step, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(opts.Writer, step.Message)
		if opts.DryRun || step.Action == nil {
			continue
		}
		if err := step.Action(ctx); err != nil {
			return &StepError{Message: step.Message, Err: err}
		}
	}

	return nil
}
