package cmd

import (
	"fmt"

	"github.com/viant/trie-mcp/internal/conv"
)

// ListToolsCmd prints every registered tool matching a pattern.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"tool name pattern (*, trie/, trie-get)" default:"*"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	for _, t := range svc.MatchTools(c.Pattern) {
		fmt.Fprintf(stdout, "%s\t%s\n", t.Metadata.Name, conv.Dereference(t.Metadata.Description))
	}
	return nil
}
