// Package cli defines the create-discord-bot root command. The command has
// no subcommands: it loads configuration, wires the prompt, filesystem,
// installer and identity collaborators, and hands the session to the
// project package. Errors are rendered here so main only sets the exit code.
package cli
