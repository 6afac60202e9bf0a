// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// builds the cobra command tree, merges flags and VIEWBIND_* environment
// variables with viper, and translates them into the application's
// configuration.
package cli
