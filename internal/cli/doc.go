// Package cli wires together the Cobra command tree for the glance binary.
//
// It defines the root command and all subcommands (review, panel, serve,
// prompts, config, version), binds flags, reads configuration, runs the
// review interaction and returns deterministic exit codes.
package cli
