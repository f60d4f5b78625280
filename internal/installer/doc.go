// Package installer runs the project's dependency installer (npm ci by
// default) inside a given working directory. The working directory is passed
// to the child process; the CLI's own working directory never changes.
//
// Installer output is captured and only surfaced when the command fails.
// When a terminal is attached a spinner is shown while the command runs.
package installer
