// Package trie implements a string-keyed lookup table backed by a character
// trie.  Every operation serialises on a single table-wide mutex, so a Trie is
// safe for concurrent use but offers no parallelism between callers.
package trie
