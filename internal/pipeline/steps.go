package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/agentx-labs/create-discord-bot/internal/manifest"
	"github.com/agentx-labs/create-discord-bot/internal/scaffold"
)

// GitIgnore is the ignore file written into a new project.
const GitIgnore = "node_modules/\ntoken.json\n"

// Filesystem is the set of disk operations the steps perform.
type Filesystem interface {
	Exists(path string) (bool, error)
	Mkdir(path string) error
	Copy(src fs.FS, srcPath, dst string) error
	WriteFile(path string, data []byte) error
	WriteSecret(path string, data []byte) error
}

// Installer runs the dependency installer inside dir.
type Installer interface {
	Run(ctx context.Context, dir string, command []string) error
}

// Env is everything the steps of one run operate on.
type Env struct {
	Name        string
	Token       string
	Directory   string
	Description string
	TokenFile   string

	Template       *scaffold.Template
	FS             Filesystem
	Installer      Installer
	InstallCommand []string

	// Warn receives non-fatal findings such as manifest schema issues.
	Warn func(msg string)
}

// Steps returns the fixed step list for mode.
func Steps(mode RunMode, env *Env) []Step {
	if mode == Update {
		return updateSteps(env)
	}
	return cleanInstallSteps(env)
}

func updateSteps(env *Env) []Step {
	return []Step{
		{
			Message: fmt.Sprintf("Updating core files in '%s'...", env.Name),
			Action: func(ctx context.Context) error {
				for _, p := range []string{scaffold.CoreDir, scaffold.EntryFile} {
					if err := env.FS.Copy(env.Template.FS, p, env.path(p)); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}

func cleanInstallSteps(env *Env) []Step {
	return []Step{
		{
			Message: fmt.Sprintf("Creating directory '%s'...", env.Name),
			Action: func(ctx context.Context) error {
				return env.FS.Mkdir(env.Directory)
			},
		},
		{
			Message: "Creating boilerplate...",
			Action: func(ctx context.Context) error {
				if err := env.FS.Copy(env.Template.FS, ".", env.Directory); err != nil {
					return err
				}
				return env.FS.WriteFile(env.path(".gitignore"), []byte(GitIgnore))
			},
		},
		{
			Message: "Updating package.json...",
			Action: func(ctx context.Context) error {
				data, err := env.Template.Package.Merge(env.Name, env.Description)
				if err != nil {
					return fmt.Errorf("generating package.json: %w", err)
				}
				env.checkManifest(data)
				return env.FS.WriteFile(env.path(manifest.FileName), data)
			},
		},
		{
			Message: fmt.Sprintf("Writing %s...", env.tokenFile()),
			Action: func(ctx context.Context) error {
				data, err := manifest.MarshalIndent(struct {
					Token string `json:"token"`
				}{env.Token})
				if err != nil {
					return fmt.Errorf("encoding token: %w", err)
				}
				return env.FS.WriteSecret(env.path(env.tokenFile()), data)
			},
		},
		{
			Message: "Installing modules...",
			Action: func(ctx context.Context) error {
				return env.Installer.Run(ctx, env.Directory, env.InstallCommand)
			},
		},
	}
}

func (env *Env) path(slashPath string) string {
	return filepath.Join(env.Directory, filepath.FromSlash(slashPath))
}

func (env *Env) tokenFile() string {
	if env.TokenFile == "" {
		return "token.json"
	}
	return env.TokenFile
}

// checkManifest reports schema issues in the generated package.json as
// warnings; they never stop the run.
func (env *Env) checkManifest(data []byte) {
	if env.Warn == nil {
		return
	}
	result, err := manifest.Validate(data)
	if err != nil {
		env.Warn(fmt.Sprintf("could not validate package.json: %v", err))
		return
	}
	for _, issue := range result.Issues {
		env.Warn("package.json: " + issue.String())
	}
}
