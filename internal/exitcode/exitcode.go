// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, invalid title, unknown ref).
	UserError = 1

	// ConfigError indicates an unreadable or invalid configuration.
	ConfigError = 2
)
