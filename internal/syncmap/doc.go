// Package syncmap offers a small generic registry of named values guarded by
// a sync.RWMutex.  It holds the named tables served by trie-mcp.
package syncmap
