// Package cli implements the allocview command-line interface.
//
// # Command Structure
//
// The root command "allocview" runs the live dashboard. Subcommands:
//
//	allocview metrics [--json]  - Describe tracked metrics with one sample each
//	allocview version           - Print build information
//
// # Flag Handling
//
// Every setting is a persistent flag on the root command, bound through
// viper to an ALLOCVIEW_* environment variable (dashes become underscores).
// Flags win over the environment, which wins over defaults. See the config
// package for keys and validation.
//
// # Logging
//
// The dashboard owns the terminal, so logs are discarded unless --log-file
// is set. Errors that stop a command are printed to stderr by Execute and
// the process exits with status 1.
package cli
