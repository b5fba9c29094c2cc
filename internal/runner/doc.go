// Package runner centralizes helpers that execute the application process.
//
// These wrappers keep consistent dry-run logging and exit-code semantics so
// that command handlers never have to touch os/exec directly.
package runner
