package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClone(t *testing.T) {
	source := map[string]interface{}{
		"name": "hello",
		"tags": []interface{}{"a", map[string]interface{}{"b": 1}},
		"raw":  []byte("xyz"),
	}
	cloned := Clone(source).(map[string]interface{})
	assert.EqualValues(t, source, cloned)

	cloned["name"] = "changed"
	cloned["tags"].([]interface{})[1].(map[string]interface{})["b"] = 2
	cloned["raw"].([]byte)[0] = 'X'

	assert.EqualValues(t, "hello", source["name"])
	assert.EqualValues(t, 1, source["tags"].([]interface{})[1].(map[string]interface{})["b"])
	assert.EqualValues(t, "xyz", string(source["raw"].([]byte)))
}

func TestClone_Scalars(t *testing.T) {
	var testCases = []interface{}{nil, 1, 2.5, "text", true}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase, Clone(testCase))
	}
}

func TestConvert(t *testing.T) {
	type input struct {
		Table string `json:"table"`
		Key   string `json:"key"`
	}

	var direct input
	assert.NoError(t, Convert(input{Key: "a"}, &direct))
	assert.EqualValues(t, "a", direct.Key)

	var fromMap input
	assert.NoError(t, Convert(map[string]interface{}{"table": "t", "key": "k"}, &fromMap))
	assert.EqualValues(t, input{Table: "t", Key: "k"}, fromMap)

	assert.Error(t, Convert(1, nil))
	assert.Error(t, Convert(1, input{}))
}

func TestToMap(t *testing.T) {
	m, err := ToMap(struct {
		Key string `json:"key"`
	}{Key: "hello"})
	assert.NoError(t, err)
	assert.EqualValues(t, map[string]interface{}{"key": "hello"}, m)
}

func TestPointer(t *testing.T) {
	assert.EqualValues(t, 3, Dereference(Pointer(3)))
	assert.EqualValues(t, "", Dereference[string](nil))
}

func TestClone_TypedValues(t *testing.T) {
	type point struct {
		X    int
		Tags []string
	}

	var testCases = []struct {
		description string
		source      interface{}
		mutate      func(v interface{})
	}{
		{
			description: "typed slice",
			source:      []string{"a", "b"},
			mutate:      func(v interface{}) { v.([]string)[0] = "changed" },
		},
		{
			description: "typed map",
			source:      map[string]string{"a": "b"},
			mutate:      func(v interface{}) { v.(map[string]string)["a"] = "changed" },
		},
		{
			description: "nested typed map",
			source:      map[string][]int{"a": {1, 2}},
			mutate:      func(v interface{}) { v.(map[string][]int)["a"][0] = 100 },
		},
		{
			description: "struct pointer",
			source:      &point{X: 1, Tags: []string{"x"}},
			mutate: func(v interface{}) {
				p := v.(*point)
				p.X = 2
				p.Tags[0] = "changed"
			},
		},
		{
			description: "generic map with typed slice",
			source:      map[string]interface{}{"list": []string{"a"}},
			mutate:      func(v interface{}) { v.(map[string]interface{})["list"].([]string)[0] = "changed" },
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			expect := Clone(testCase.source)
			cloned := Clone(testCase.source)
			assert.EqualValues(t, testCase.source, cloned)

			testCase.mutate(cloned)
			assert.EqualValues(t, expect, testCase.source, "source changed through clone")

			testCase.mutate(testCase.source)
			assert.NotEqualValues(t, testCase.source, expect, "clone changed through source")
		})
	}
}
