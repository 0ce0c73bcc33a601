// Package table exposes named trie tables as a Fluxor action service so that
// inserts and lookups can be executed from workflows or through the MCP tool
// bridge.
package table
