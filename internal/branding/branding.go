// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Forks only need to edit the YAML.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	GoModule         string `yaml:"go_module"`
	APIBaseURL       string `yaml:"api_base_url"`
	AuthorizeHost    string `yaml:"authorize_host"`
	TokenFile        string `yaml:"token_file"`
	TokenPlaceholder string `yaml:"token_placeholder"`
	Installer        string `yaml:"installer"`
	StartCommand     string `yaml:"start_command"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:          "create-discord-bot",
			DisplayName:      "Create Discord Bot",
			Description:      "Scaffold and update Discord bot projects",
			HomeDir:          ".create-discord-bot",
			EnvPrefix:        "CREATE_DISCORD_BOT",
			GoModule:         "github.com/agentx-labs/create-discord-bot",
			APIBaseURL:       "https://discord.com/api/v10",
			AuthorizeHost:    "discordapp.com",
			TokenFile:        "token.json",
			TokenPlaceholder: "DISCORD_BOT_TOKEN_PLACEHOLDER",
			Installer:        "npm ci --loglevel=error",
			StartCommand:     "npm start",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-discord-bot").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME.
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix.
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// APIBaseURL returns the default base URL of the Discord REST API.
func APIBaseURL() string { load(); return defaults.APIBaseURL }

// AuthorizeHost returns the host used in generated invite links.
func AuthorizeHost() string { load(); return defaults.AuthorizeHost }

// TokenFile returns the name of the secret token file written into new projects.
func TokenFile() string { load(); return defaults.TokenFile }

// TokenPlaceholder returns the default answer offered for the bot token.
func TokenPlaceholder() string { load(); return defaults.TokenPlaceholder }

// Installer returns the default dependency installer command line.
func Installer() string { load(); return defaults.Installer }

// StartCommand returns the command suggested to start a generated project.
func StartCommand() string { load(); return defaults.StartCommand }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("installer") → "CREATE_DISCORD_BOT_INSTALLER".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
