// Package project runs one create-or-update session end to end: intro
// banner, answer collection, mode planning, step execution, the invite-link
// report for new projects and the closing guidance.
package project
