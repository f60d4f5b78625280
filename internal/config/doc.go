// Package config manages user-level settings stored at
// ~/.create-discord-bot/config.yaml. Every key can be overridden through an
// environment variable with the CREATE_DISCORD_BOT_ prefix, e.g.
// CREATE_DISCORD_BOT_TEMPLATE_DIR points the tool at an on-disk template.
package config
