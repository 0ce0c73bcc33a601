// Package config defines the YAML/JSON configuration model of the trie MCP
// service: server options, Fluxor pass-through options and the tables to seed
// on startup.
package config
