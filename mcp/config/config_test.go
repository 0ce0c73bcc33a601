package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	location := filepath.Join(dir, "config.yaml")
	content := `
tables:
  - name: default
    entries:
      hello: 10
      world: 20
  - name: words
    url: file:///tmp/words.yaml
`
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))

	cfg, err := Load(context.Background(), location)
	require.NoError(t, err)
	require.Len(t, cfg.Tables, 2)
	assert.EqualValues(t, "default", cfg.Tables[0].Name)
	assert.EqualValues(t, 10, cfg.Tables[0].Entries["hello"])
	assert.EqualValues(t, "file:///tmp/words.yaml", cfg.Tables[1].URL)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		tables      []*Table
		hasError    bool
	}{
		{description: "no tables"},
		{description: "unique", tables: []*Table{{Name: "a"}, {Name: "b"}}},
		{description: "empty name", tables: []*Table{{Name: ""}}, hasError: true},
		{description: "nil table", tables: []*Table{nil}, hasError: true},
		{description: "duplicate", tables: []*Table{{Name: "a"}, {Name: "a"}}, hasError: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			err := (&Config{Tables: testCase.tables}).Validate()
			assert.EqualValues(t, testCase.hasError, err != nil)
		})
	}
}
