package pipeline

import "context"

// Step is one unit of work: a progress message and the action that performs it.
type Step struct {
	Message string
	Action  func(ctx context.Context) error
}
