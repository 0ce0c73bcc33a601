package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/viant/mcp"
	"github.com/viant/trie-mcp/mcp/table"
	"github.com/viant/trie-mcp/mcp/tool"

	triemcp "github.com/viant/trie-mcp/mcp"
	mcpconfig "github.com/viant/trie-mcp/mcp/config"
)

var (
	stdout io.Writer = os.Stdout

	cfgPath string

	svcOnce sync.Once
	svcInst *triemcp.Service
	svcErr  error
)

// setConfigPath remembers the -f/--config location and drops any service
// built for a previous invocation.
func setConfigPath(p string) {
	cfgPath = p
	svcOnce = sync.Once{}
	svcInst, svcErr = nil, nil
}

// serviceSingleton initialises a service once per CLI invocation.
func serviceSingleton() (*triemcp.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		var cfg *mcpconfig.Config
		if cfgPath != "" {
			if cfg, svcErr = mcpconfig.Load(ctx, cfgPath); svcErr != nil {
				return
			}
			if debug := os.Getenv("TRIEMCP_DEBUG_CONFIG"); debug == "1" {
				_ = json.NewEncoder(os.Stderr).Encode(cfg)
			}
		}
		svcInst, svcErr = triemcp.New(ctx, triemcp.WithConfig(cfg))
	})
	return svcInst, svcErr
}

// tableClient is implemented by tool.Client.
type tableClient interface {
	Insert(ctx context.Context, tableName, key string, value interface{}) (*table.InsertOutput, error)
	Get(ctx context.Context, tableName, key string) (*table.GetOutput, error)
}

// newTableClient connects to the server at address, or to an in-process
// server over the locally configured service when address is empty.
func newTableClient(address string) (tableClient, error) {
	if address != "" {
		return triemcp.Dial(address)
	}
	svc, err := serviceSingleton()
	if err != nil {
		return nil, err
	}
	srv, err := mcp.NewServer(svc.NewHandler, nil)
	if err != nil {
		return nil, err
	}
	return tool.NewClient(srv.AsClient(context.Background())), nil
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
