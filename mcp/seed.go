package mcp

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/viant/afs"
	"github.com/viant/trie-mcp/internal/conv"
	"github.com/viant/trie-mcp/mcp/config"
	"gopkg.in/yaml.v3"
)

// seedTables creates every configured table and loads its entries.
func (s *Service) seedTables(ctx context.Context) error {
	if len(s.config.Tables) == 0 {
		return nil
	}
	fs := afs.New()
	for _, tableConfig := range s.config.Tables {
		keys, err := s.seedTable(ctx, fs, tableConfig)
		if err != nil {
			return fmt.Errorf("seed table %q: %w", tableConfig.Name, err)
		}
		log.Info().Str("table", tableConfig.Name).Int("keys", keys).Msg("seeded table")
	}
	return nil
}

// seedTable loads inline entries, then URL entries, and returns the number of
// distinct keys in the table.
func (s *Service) seedTable(ctx context.Context, fs afs.Service, tableConfig *config.Table) (int, error) {
	aTable := s.tables.Ensure(tableConfig.Name)
	for key, value := range tableConfig.Entries {
		aTable.Insert(key, conv.Clone(value))
	}
	if tableConfig.URL == "" {
		return aTable.Len(), nil
	}
	data, err := fs.DownloadWithURL(ctx, tableConfig.URL)
	if err != nil {
		return 0, fmt.Errorf("download %q: %w", tableConfig.URL, err)
	}
	var entries map[string]interface{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("parse %q: %w", tableConfig.URL, err)
	}
	for key, value := range entries {
		aTable.Insert(key, conv.Clone(value))
	}
	return aTable.Len(), nil
}
