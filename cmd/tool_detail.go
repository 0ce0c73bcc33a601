package cmd

import (
	"encoding/json"
	"fmt"
)

// ToolCmd prints metadata and input schema for a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name (trie-get or trie/get)" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

type toolDetail struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema interface{} `json:"inputSchema"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	description, schema, ok := svc.ToolMetadata(c.Name)
	if !ok {
		return fmt.Errorf("tool %q not found", c.Name)
	}
	detail := &toolDetail{Name: c.Name, Description: description, InputSchema: schema}
	if c.JSON {
		return printJSON(detail)
	}
	fmt.Fprintf(stdout, "Name : %s\n", detail.Name)
	fmt.Fprintf(stdout, "Desc : %s\n", detail.Description)
	js, _ := json.MarshalIndent(detail.InputSchema, "", "  ")
	fmt.Fprintf(stdout, "InputSchema:\n%s\n", string(js))
	return nil
}
