// Package tool bridges Fluxor action names and MCP tool names and provides a
// typed client for calling trie tools on a remote or in-process MCP server.
package tool
