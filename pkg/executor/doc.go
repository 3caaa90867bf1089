// Package executor runs external processes for packsmith.
//
// The OS implementation wraps os/exec and reports a child's exit status as a
// value rather than an error, so callers can tell "could not start" apart
// from "ran and failed".
package executor
