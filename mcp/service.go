package mcp

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/trie-mcp/mcp/config"
	"github.com/viant/trie-mcp/mcp/table"
	"github.com/viant/x"
)

// Service bundles configuration, the table action service and the Fluxor
// workflow engine that executes it.
type Service struct {
	Workflow
	started int32
	config  *config.Config
	tables  *table.Service

	mu    sync.RWMutex
	tools map[string]*toolEntry
}

type Workflow struct {
	Options        []fluxor.Option
	Runtime        *fluxor.Runtime
	Service        *fluxor.Service
	Extensions     []types.Service
	ExtensionTypes []*x.Type `json:"-"`
}

// WorkflowRuntime returns the underlying Fluxor runtime.
func (s *Service) WorkflowRuntime() *fluxor.Runtime { return s.Workflow.Runtime }

// WorkflowService returns the Fluxor service exposing all actions.
func (s *Service) WorkflowService() *fluxor.Service { return s.Workflow.Service }

// Config returns the effective configuration; treat it as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Tables returns the table action service.
func (s *Service) Tables() *table.Service { return s.tables }

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a custom configuration instance.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithWorkflowOptions appends Fluxor options used when the engine is created.
func WithWorkflowOptions(opts ...fluxor.Option) Option {
	return func(s *Service) {
		s.Workflow.Options = append(s.Workflow.Options, opts...)
	}
}

// WithTables replaces the table action service, e.g. to share tables between
// service instances.
func WithTables(tables *table.Service) Option {
	return func(s *Service) {
		s.tables = tables
	}
}

// New constructs a started service.  Bootstrap steps live in bootstrap.go.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Start launches the Fluxor runtime; repeated calls are ignored.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	return s.Workflow.Runtime.Start(ctx)
}

// Shutdown stops the Fluxor runtime; only the first call after Start has an
// effect.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	return s.Workflow.Runtime.Shutdown(ctx)
}
