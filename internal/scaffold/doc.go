// Package scaffold provides the template tree copied into new bot projects.
// The default tree is embedded into the binary; a directory on disk can be
// used instead (config key template_dir). Update runs only refresh CoreDir
// and EntryFile from the template.
package scaffold
