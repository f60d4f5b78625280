package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/agentx-labs/create-discord-bot/internal/branding"
	"github.com/agentx-labs/create-discord-bot/internal/config"
	"github.com/agentx-labs/create-discord-bot/internal/fsops"
	"github.com/agentx-labs/create-discord-bot/internal/identity"
	"github.com/agentx-labs/create-discord-bot/internal/installer"
	"github.com/agentx-labs/create-discord-bot/internal/output"
	"github.com/agentx-labs/create-discord-bot/internal/project"
	"github.com/agentx-labs/create-discord-bot/internal/prompt"
	"github.com/agentx-labs/create-discord-bot/internal/scaffold"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	dryRun  bool
	verbose bool
)

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the steps without changing anything on disk")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output and stream installer output")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` asks for an application name and a Discord bot token, then creates
a new bot project from the bundled template or refreshes the core files of an
existing one.

Configuration is read from ` + "~/" + branding.HomeDir() + `/config.yaml and ` + branding.EnvVar("*") + ` variables.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func runCreate(ctx context.Context, in io.Reader, stdout, stderr io.Writer) error {
	settings := config.Load()

	out := output.New(stdout)
	out.SetVerbose(verbose)
	out.Debug("%s commit %s built %s", branding.NameAndVersion(buildVersion), buildCommit, buildDate)
	out.Debug("config file %s", config.FilePath())

	tmpl, err := scaffold.Open(settings.TemplateDir)
	if err != nil {
		return err
	}

	opts := &installer.Options{}
	if verbose {
		opts.Stdout = stdout
		opts.Stderr = stderr
	} else if isTerminal(stdout) {
		opts.SpinnerOut = stdout
	}
	runner := installer.New(opts)

	client := identity.New(
		identity.WithHTTPClient(&http.Client{Timeout: settings.HTTPTimeout}),
		identity.WithBaseURL(settings.APIBaseURL),
	)

	creator := &project.Creator{
		Prompter:  prompt.NewTerminal(in, stdout),
		FS:        fsops.OS{},
		Installer: runner,
		Engine:    runner,
		Reporter: &identity.Reporter{
			Resolver: client,
			Host:     settings.AuthorizeHost,
			Out:      out,
		},
		Template:       tmpl,
		Out:            out,
		Version:        buildVersion,
		InstallCommand: settings.Installer,
	}

	_, err = creator.Run(ctx, project.Options{DryRun: dryRun})
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	rootCmd.Version = branding.NormalizeVersion(version)
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s (commit: %s, built: %s)\n", branding.NameAndVersion(version), commit, date))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}
