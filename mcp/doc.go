// Package mcp wires named trie tables into the Fluxor workflow engine and
// the MCP protocol.  Its Service seeds tables from configuration, registers
// the table actions with the workflow runtime and exposes them as MCP tools.
package mcp
