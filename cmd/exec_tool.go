package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ExecCmd executes a tool through the Fluxor runtime.  Arguments are given
// inline via -i/--input or read from a JSON file via --file.
type ExecCmd struct {
	Name       string `short:"n" long:"name" positional-arg-name:"tool" description:"Tool name (e.g. trie-get or trie/get)" required:"yes"`
	Inline     string `short:"i" long:"input" description:"Inline JSON arguments (object)"`
	File       string `long:"file" description:"Path to JSON file with arguments (use - for stdin)"`
	TimeoutSec int    `long:"timeout" description:"Seconds to wait for completion" default:"30"`
}

func (c *ExecCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}
	args, err := c.arguments()
	if err != nil {
		return err
	}
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	timeout := time.Duration(c.TimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	out, err := svc.ExecuteTool(context.Background(), c.Name, args, timeout)
	if err != nil {
		return err
	}
	return printJSON(out)
}

func (c *ExecCmd) arguments() (map[string]interface{}, error) {
	var data []byte
	switch {
	case c.Inline != "":
		data = []byte(c.Inline)
	case c.File == "-":
		var err error
		if data, err = io.ReadAll(os.Stdin); err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	case c.File != "":
		var err error
		if data, err = os.ReadFile(c.File); err != nil {
			return nil, fmt.Errorf("read input file: %w", err)
		}
	default:
		return nil, nil
	}
	var args map[string]interface{}
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("decode JSON arguments: %w", err)
	}
	return args, nil
}
