package table

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Methods(t *testing.T) {
	srv := New()
	assert.EqualValues(t, Name, srv.Name())
	for _, name := range []string{"insert", "get", "len"} {
		assert.NotNil(t, srv.Methods().Lookup(name), name)
		_, err := srv.Method(name)
		assert.NoError(t, err, name)
	}
	_, err := srv.Method("delete")
	assert.Error(t, err)
}

func TestService_InsertGet(t *testing.T) {
	ctx := context.Background()
	srv := New()
	insert, err := srv.Method("insert")
	require.NoError(t, err)
	get, err := srv.Method("get")
	require.NoError(t, err)

	var testCases = []struct {
		description string
		inserts     []*InsertInput
		input       *GetInput
		expect      *GetOutput
	}{
		{
			description: "default table",
			inserts:     []*InsertInput{{Key: "hello", Value: 10}},
			input:       &GetInput{Key: "hello"},
			expect:      &GetOutput{Table: DefaultTable, Key: "hello", Value: 10, Found: true},
		},
		{
			description: "prefix is absent",
			inserts:     []*InsertInput{{Table: "words", Key: "hello", Value: "x"}},
			input:       &GetInput{Table: "words", Key: "hell"},
			expect:      &GetOutput{Table: "words", Key: "hell"},
		},
		{
			description: "overwrite",
			inserts:     []*InsertInput{{Table: "over", Key: "k", Value: 1}, {Table: "over", Key: "k", Value: 2}},
			input:       &GetInput{Table: "over", Key: "k"},
			expect:      &GetOutput{Table: "over", Key: "k", Value: 2, Found: true},
		},
		{
			description: "unknown table",
			input:       &GetInput{Table: "missing", Key: "k"},
			expect:      &GetOutput{Table: "missing", Key: "k"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			for _, in := range testCase.inserts {
				out := &InsertOutput{}
				require.NoError(t, insert(ctx, in, out))
			}
			actual := &GetOutput{}
			require.NoError(t, get(ctx, testCase.input, actual))
			assert.EqualValues(t, testCase.expect, actual)
		})
	}

	_, ok := srv.Table("missing")
	assert.False(t, ok, "get must not create tables")
	assert.EqualValues(t, []string{DefaultTable, "over", "words"}, srv.Tables())
}

func TestService_GenericInput(t *testing.T) {
	ctx := context.Background()
	srv := New()
	insert, _ := srv.Method("insert")
	get, _ := srv.Method("get")
	size, _ := srv.Method("len")

	var inserted interface{}
	err := insert(ctx, map[string]interface{}{"table": "t", "key": "a", "value": map[string]interface{}{"n": 1.0}}, &inserted)
	require.NoError(t, err)
	assert.EqualValues(t, &InsertOutput{Table: "t", Key: "a", Size: 1}, inserted)

	out := map[string]interface{}{}
	require.NoError(t, get(ctx, map[string]interface{}{"table": "t", "key": "a"}, &out))
	assert.EqualValues(t, true, out["found"])
	assert.EqualValues(t, map[string]interface{}{"n": 1.0}, out["value"])

	sizeOut := &LenOutput{}
	require.NoError(t, size(ctx, &LenInput{Table: "t"}, sizeOut))
	assert.EqualValues(t, 1, sizeOut.Size)
}

func TestService_ValueIsolation(t *testing.T) {
	ctx := context.Background()
	srv := New()
	insert, _ := srv.Method("insert")
	get, _ := srv.Method("get")

	value := map[string]interface{}{"n": 1}
	require.NoError(t, insert(ctx, &InsertInput{Key: "k", Value: value}, &InsertOutput{}))
	value["n"] = 2

	first := &GetOutput{}
	require.NoError(t, get(ctx, &GetInput{Key: "k"}, first))
	assert.EqualValues(t, map[string]interface{}{"n": 1}, first.Value)
	first.Value.(map[string]interface{})["n"] = 3

	second := &GetOutput{}
	require.NoError(t, get(ctx, &GetInput{Key: "k"}, second))
	assert.EqualValues(t, map[string]interface{}{"n": 1}, second.Value)
}

func TestService_TypedValueIsolation(t *testing.T) {
	ctx := context.Background()
	srv := New()
	insert, _ := srv.Method("insert")
	get, _ := srv.Method("get")

	value := []string{"a", "b"}
	require.NoError(t, insert(ctx, &InsertInput{Key: "k", Value: value}, &InsertOutput{}))
	value[0] = "caller"

	first := &GetOutput{}
	require.NoError(t, get(ctx, &GetInput{Key: "k"}, first))
	assert.EqualValues(t, []string{"a", "b"}, first.Value)
	first.Value.([]string)[1] = "reader"

	second := &GetOutput{}
	require.NoError(t, get(ctx, &GetInput{Key: "k"}, second))
	assert.EqualValues(t, []string{"a", "b"}, second.Value)
}
