package cli

import (
	"errors"
	"io"

	"github.com/agentx-labs/create-discord-bot/internal/output"
	"github.com/agentx-labs/create-discord-bot/internal/pipeline"
)

// reportError prints err for the user. Fatal errors and failed steps carry
// their own wording; anything else is unexpected.
func reportError(w io.Writer, err error) {
	out := output.New(w)

	var fatal *pipeline.FatalError
	if errors.As(err, &fatal) {
		out.Error(fatal.Msg)
		return
	}

	var step *pipeline.StepError
	if errors.As(err, &step) {
		out.Error("Error: " + step.Error())
		return
	}

	out.Error("unexpected error: " + err.Error())
}
