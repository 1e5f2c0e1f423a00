// Package app wires the cryptolab dependency graph for the CLI.
package app
