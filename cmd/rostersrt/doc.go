// Package main hosts the rostersrt CLI entrypoint and command graph.
//
// The Cobra-based command tree wraps the pipeline package: generate renders
// caption tracks for roster collections, plan previews pacing, check validates
// existing SRT artifacts, and the config commands scaffold and inspect the
// TOML configuration. Configuration resolution and logger setup live in
// commandContext so subcommands only deal with their own flags and output.
package main
