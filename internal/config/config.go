package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agentx-labs/create-discord-bot/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys recognized in the config file and environment.
const (
	KeyTemplateDir   = "template_dir"
	KeyInstaller     = "installer"
	KeyAPIBaseURL    = "api_base_url"
	KeyAuthorizeHost = "authorize_host"
	KeyHTTPTimeout   = "http_timeout"
)

// Settings is the resolved configuration for a single run.
type Settings struct {
	// TemplateDir overrides the bundled template tree when non-empty.
	TemplateDir   string
	Installer     []string
	APIBaseURL    string
	AuthorizeHost string
	// HTTPTimeout bounds the identity lookup; zero means no timeout.
	HTTPTimeout time.Duration
}

// Dir returns the path to the config directory (~/.create-discord-bot/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// New returns a Viper instance seeded with branding defaults, reading the
// config file at path (if it exists) and the environment.
func New(path string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyTemplateDir, "")
	v.SetDefault(KeyInstaller, branding.Installer())
	v.SetDefault(KeyAPIBaseURL, branding.APIBaseURL())
	v.SetDefault(KeyAuthorizeHost, branding.AuthorizeHost())
	v.SetDefault(KeyHTTPTimeout, time.Duration(0))

	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = v.ReadInConfig()
	return v
}

// Load reads the user's config file and environment into Settings.
func Load() Settings {
	return FromViper(New(FilePath()))
}

// FromViper extracts Settings from an initialized Viper instance.
func FromViper(v *viper.Viper) Settings {
	return Settings{
		TemplateDir:   strings.TrimSpace(v.GetString(KeyTemplateDir)),
		Installer:     strings.Fields(v.GetString(KeyInstaller)),
		APIBaseURL:    strings.TrimRight(v.GetString(KeyAPIBaseURL), "/"),
		AuthorizeHost: v.GetString(KeyAuthorizeHost),
		HTTPTimeout:   v.GetDuration(KeyHTTPTimeout),
	}
}
