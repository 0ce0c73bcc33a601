// Package cmd implements the trie-mcp command-line interface.  Each file
// registers a single sub-command (get, insert, exec, list-tools, tool,
// serve); configuration loading and service initialisation shared between
// commands live in shared.go.
package cmd
