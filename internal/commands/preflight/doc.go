// Package preflight implements the "preflight" host diagnostics command.
// It checks python/pip availability, validates the entry point and manifest,
// inspects the venv state, and verifies the serving port is free.
package preflight
