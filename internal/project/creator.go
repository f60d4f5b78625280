package project

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/agentx-labs/create-discord-bot/internal/branding"
	"github.com/agentx-labs/create-discord-bot/internal/output"
	"github.com/agentx-labs/create-discord-bot/internal/pipeline"
	"github.com/agentx-labs/create-discord-bot/internal/prompt"
	"github.com/agentx-labs/create-discord-bot/internal/scaffold"
)

// Reporter prints the invite link for a newly created bot.
type Reporter interface {
	Report(ctx context.Context, token string) error
}

// EngineChecker warns when the local runtime does not satisfy the
// template's engines constraint.
type EngineChecker interface {
	NodeEngineWarning(ctx context.Context, dir, constraint string) string
}

// Creator holds the collaborators of a run.
type Creator struct {
	Prompter  prompt.Provider
	FS        pipeline.Filesystem
	Installer pipeline.Installer
	Engine    EngineChecker
	Reporter  Reporter
	Template  *scaffold.Template
	Out       *output.Printer

	// Cwd resolves relative application names. Defaults to os.Getwd.
	Cwd            string
	Version        string
	InstallCommand []string
}

// Options are per-run switches.
type Options struct {
	DryRun bool
}

// Result describes what a run did.
type Result struct {
	Mode      pipeline.RunMode
	Answers   prompt.Answers
	Directory string
}

// Run performs one session. A declined update or an aborted prompt is
// returned as a *pipeline.FatalError.
func (c *Creator) Run(ctx context.Context, opts Options) (*Result, error) {
	c.banner()

	collector := &prompt.Collector{
		Provider:         c.Prompter,
		DefaultName:      c.Template.Package.Name(),
		TokenPlaceholder: branding.TokenPlaceholder(),
	}
	answers, err := collector.Collect(ctx)
	if err != nil {
		return nil, cancelled(err)
	}
	c.Out.Blank()

	cwd := c.Cwd
	if cwd == "" {
		if cwd, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
	}
	directory := pipeline.ResolveDirectory(cwd, answers.Name)
	c.Out.Debug("target directory %s", directory)

	exists, err := c.FS.Exists(directory)
	if err != nil {
		return nil, err
	}

	mode, err := pipeline.Plan(ctx, directory, exists, func(ctx context.Context, message string) (bool, error) {
		ok, err := prompt.Confirm(ctx, c.Prompter, message)
		if err != nil {
			return false, cancelled(err)
		}
		c.Out.Blank()
		return ok, nil
	})
	if err != nil {
		return nil, err
	}
	c.Out.Debug("run mode %s, template %s", mode, c.Template.Source)

	env := &pipeline.Env{
		Name:           answers.Name,
		Token:          answers.Token,
		Directory:      directory,
		Description:    fmt.Sprintf("Generated by %s.", branding.NameAndVersion(c.Version)),
		TokenFile:      branding.TokenFile(),
		Template:       c.Template,
		FS:             c.FS,
		Installer:      c.Installer,
		InstallCommand: c.InstallCommand,
		Warn:           c.Out.Warn,
	}

	if mode == pipeline.CleanInstall && !opts.DryRun && c.Engine != nil {
		if w := c.Engine.NodeEngineWarning(ctx, cwd, c.Template.Package.NodeEngine()); w != "" {
			c.Out.Warn(w)
		}
	}

	err = pipeline.Execute(ctx, pipeline.Steps(mode, env), pipeline.ExecuteOptions{
		DryRun: opts.DryRun,
		Writer: c.Out.Writer(),
	})
	if err != nil {
		return nil, err
	}

	if mode == pipeline.CleanInstall {
		c.Out.Blank()
		if err := c.Reporter.Report(ctx, answers.Token); err != nil {
			c.Out.Debug("invite report: %v", err)
		}
		c.Out.Blank()
	}

	c.done(answers.Name)
	return &Result{Mode: mode, Answers: answers, Directory: directory}, nil
}

func (c *Creator) banner() {
	name := branding.CLIName()
	c.Out.Line(fmt.Sprintf("This utility will walk you through creating a %s application.", name))
	c.Out.Blank()
	c.Out.Line("Press ENTER to use the default.")
	c.Out.Line("Press ^C at any time to quit.")
	c.Out.Blank()
	c.Out.Info(branding.NameAndVersion(c.Version))
}

func (c *Creator) done(name string) {
	c.Out.Success("Done!")
	c.Out.Blank()
	c.Out.Line("Start by running:")
	c.Out.Step(fmt.Sprintf("$ cd %s/", name))
	c.Out.Step("$ " + branding.StartCommand())
}

// cancelled turns an aborted prompt into a fatal error.
func cancelled(err error) error {
	if errors.Is(err, prompt.ErrCancelled) {
		return &pipeline.FatalError{Msg: "Quitting...", Err: err}
	}
	return err
}
