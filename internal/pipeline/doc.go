// Package pipeline plans and executes the ordered steps of a run.
//
// A run is either an Update of an existing project or a CleanInstall of a
// new one. Plan picks the mode, Steps builds its fixed step list and Execute
// runs the list in order, printing each step's message first. In dry-run mode
// the messages are printed and no action runs. The first failing step aborts
// the run; earlier steps are not rolled back.
package pipeline
