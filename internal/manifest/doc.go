// Package manifest handles the npm package manifest (package.json) of the
// bundled bot template. It validates application names against the npm
// package-name rules, merges the template manifest with the chosen name and
// generated description while preserving field order, and checks the
// generated file against an embedded JSON schema.
package manifest
