package table

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/trie-mcp/internal/conv"
	"github.com/viant/trie-mcp/internal/syncmap"
	"github.com/viant/trie-mcp/trie"
)

// Name is the Fluxor service name.
const Name = "trie"

// Trie is the table type held by the service.
type Trie = trie.Trie[interface{}]

// Service keeps named tables and exposes insert, get and len actions.
type Service struct {
	tables    *syncmap.Map[*Trie]
	sigs      types.Signatures
	executors map[string]types.Executable
}

// New creates a service with no tables.
func New() *Service {
	s := &Service{
		tables:    syncmap.New[*Trie](),
		executors: map[string]types.Executable{},
	}
	s.register("insert", "Insert value under key, replacing any previous value",
		&InsertInput{}, &InsertOutput{}, s.insert)
	s.register("get", "Get value stored under key; found is false for keys never inserted",
		&GetInput{}, &GetOutput{}, s.get)
	s.register("len", "Count keys stored in table",
		&LenInput{}, &LenOutput{}, s.size)
	return s
}

// register adds a method whose typed handler receives *In and fills *Out.
func (s *Service) register(name, description string, in, out interface{}, call func(ctx context.Context, in, out interface{}) error) {
	inType := reflect.TypeOf(in)
	outType := reflect.TypeOf(out)
	s.executors[name] = func(ctx context.Context, input, output interface{}) error {
		param := input
		if input == nil || reflect.TypeOf(input) != inType {
			param = reflect.New(inType.Elem()).Interface()
			if err := conv.Convert(input, param); err != nil {
				return fmt.Errorf("%v: invalid input: %w", name, err)
			}
		}
		result := output
		if output == nil || reflect.TypeOf(output) != outType {
			result = reflect.New(outType.Elem()).Interface()
		}
		if err := call(ctx, param, result); err != nil {
			return err
		}
		if output != nil && result != output {
			switch outPtr := output.(type) {
			case *interface{}:
				*outPtr = result
			default:
				return conv.Convert(result, outPtr)
			}
		}
		return nil
	}
	s.sigs = append(s.sigs, types.Signature{
		Name:        name,
		Description: description,
		Input:       inType,
		Output:      outType,
	})
}

// Table returns the named table when it exists.
func (s *Service) Table(name string) (*Trie, bool) {
	return s.tables.Get(tableName(name))
}

// Ensure returns the named table, creating it when absent.
func (s *Service) Ensure(name string) *Trie {
	return s.tables.GetOrCreate(tableName(name), newTrie)
}

// Tables returns table names in ascending order.
func (s *Service) Tables() []string {
	return s.tables.Keys()
}

func newTrie() *Trie {
	return trie.New[interface{}](trie.WithClone(conv.Clone))
}

func (s *Service) insert(_ context.Context, in, out interface{}) error {
	input := in.(*InsertInput)
	output := out.(*InsertOutput)
	aTable := s.Ensure(input.Table)
	output.Size = aTable.Put(input.Key, conv.Clone(input.Value))
	output.Table = tableName(input.Table)
	output.Key = input.Key
	return nil
}

func (s *Service) get(_ context.Context, in, out interface{}) error {
	input := in.(*GetInput)
	output := out.(*GetOutput)
	output.Table = tableName(input.Table)
	output.Key = input.Key
	aTable, ok := s.Table(input.Table)
	if !ok {
		return nil
	}
	output.Value, output.Found = aTable.Get(input.Key)
	return nil
}

func (s *Service) size(_ context.Context, in, out interface{}) error {
	input := in.(*LenInput)
	output := out.(*LenOutput)
	output.Table = tableName(input.Table)
	if aTable, ok := s.Table(input.Table); ok {
		output.Size = aTable.Len()
	}
	return nil
}

func (s *Service) Name() string { return Name }

func (s *Service) Methods() types.Signatures { return s.sigs }

func (s *Service) Method(name string) (types.Executable, error) {
	if exec, ok := s.executors[name]; ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}
