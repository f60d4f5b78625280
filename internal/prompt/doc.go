// Package prompt asks the user questions on the terminal and collects the
// answers needed to scaffold a bot: the application name and the bot token.
//
// Questions are answered through a Provider. Terminal is the interactive
// implementation; tests substitute scripted providers. A provider returns
// ErrCancelled when the user aborts (EOF or interrupt), which callers treat
// as fatal.
package prompt
