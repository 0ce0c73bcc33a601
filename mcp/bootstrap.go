package mcp

import (
	"context"
	"fmt"

	"github.com/viant/fluxor"
	"github.com/viant/trie-mcp/mcp/config"
	"github.com/viant/trie-mcp/mcp/table"
)

// init runs the bootstrap sequence: defaults, validation, seeding, engine
// assembly, tool registry and runtime start.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := s.seedTables(ctx); err != nil {
		return err
	}
	s.initWorkflowService()
	s.buildToolRegistry()
	return s.Start(ctx)
}

func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	if s.tables == nil {
		s.tables = table.New()
	}
}

// initWorkflowService assembles the Fluxor options and instantiates the engine.
func (s *Service) initWorkflowService() {
	opts := append([]fluxor.Option{}, s.config.Options...)
	if len(s.config.ExtensionTypes) > 0 {
		s.Workflow.ExtensionTypes = append(s.Workflow.ExtensionTypes, s.config.ExtensionTypes...)
		opts = append(opts, fluxor.WithExtensionTypes(s.Workflow.ExtensionTypes...))
	}
	s.Workflow.Extensions = append(s.Workflow.Extensions, s.tables)
	s.Workflow.Extensions = append(s.Workflow.Extensions, s.config.Extensions...)
	opts = append(opts, fluxor.WithExtensionServices(s.Workflow.Extensions...))
	opts = append(opts, s.Workflow.Options...)

	s.Workflow.Service = fluxor.New(opts...)
	s.Workflow.Runtime = s.Workflow.Service.Runtime()
}
