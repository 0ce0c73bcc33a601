package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/x"
	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

// Table seeds one named table.  Inline Entries are inserted first, then the
// entries of the YAML mapping found at URL, so URL entries win on conflict.
type Table struct {
	Name    string                 `yaml:"name" json:"name" short:"n" long:"name" description:"table name"`
	URL     string                 `yaml:"url,omitempty" json:"url,omitempty" short:"u" long:"url" description:"seed file URL"`
	Entries map[string]interface{} `yaml:"entries,omitempty" json:"entries,omitempty"`
}

type Config struct {
	Server         *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Options        []fluxor.Option    `yaml:"-" json:"-"`
	Extensions     []types.Service    `yaml:"-" json:"-"`
	ExtensionTypes []*x.Type          `yaml:"-" json:"-"`
	Tables         []*Table           `yaml:"tables,omitempty" json:"tables,omitempty"`
}

// Load reads config from any afs supported URL (local path, file://, mem://, ...).
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return &cfg, nil
}

// Validate checks that every table has a unique, non-empty name.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Tables))
	for i, table := range c.Tables {
		if table == nil {
			return fmt.Errorf("tables[%d]: is empty", i)
		}
		if table.Name == "" {
			return fmt.Errorf("tables[%d]: name was empty", i)
		}
		if seen[table.Name] {
			return fmt.Errorf("tables[%d]: duplicate table %q", i, table.Name)
		}
		seen[table.Name] = true
	}
	return nil
}
