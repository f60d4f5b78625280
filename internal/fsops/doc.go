// Package fsops is the filesystem provider used by the step pipeline. Every
// call is synchronous and either completes or returns an error; nothing is
// rolled back on failure.
package fsops
