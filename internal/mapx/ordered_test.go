package mapx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func TestOrderedMap_KeepsInsertionOrder(t *testing.T) {
	m := New[int]()
	m.Set("zulu", 1)
	m.Set("alpha", 2)
	m.Set("mike", 3)
	m.Set("alpha", 20)

	assert.Equal(t, []string{"zulu", "alpha", "mike"}, m.Keys())
	assert.Equal(t, []int{1, 20, 3}, m.Values())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("alpha")
	assert.True(t, ok)
	assert.Equal(t, 20, v)
}

func TestOrderedMap_Delete(t *testing.T) {
	m := New[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assert.False(t, m.Has("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())

	m.Set("b", 4)
	assert.Equal(t, []string{"a", "c", "b"}, m.Keys())
}

func TestOrderedMap_JSONRoundTripPreservesOrder(t *testing.T) {
	m := New[item]()
	m.Set("z@example.com", item{Name: "Zed"})
	m.Set("a@example.com", item{Name: "Ann"})

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z@example.com":{"name":"Zed"},"a@example.com":{"name":"Ann"}}`, string(b))

	back := New[item]()
	require.NoError(t, json.Unmarshal(b, back))
	assert.Equal(t, []string{"z@example.com", "a@example.com"}, back.Keys())

	ann, ok := back.Get("a@example.com")
	require.True(t, ok)
	assert.Equal(t, "Ann", ann.Name)
}

func TestOrderedMap_MarshalIndent(t *testing.T) {
	m := New[int]()
	m.Set("b", 1)
	m.Set("a", 2)

	b, err := json.MarshalIndent(m, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": 2\n}", string(b))
}

func TestOrderedMap_UnmarshalErrors(t *testing.T) {
	m := New[int]()

	require.Error(t, json.Unmarshal([]byte(`[1,2]`), m))
	require.Error(t, json.Unmarshal([]byte(`{"a": "x"}`), m))
	require.Error(t, json.Unmarshal([]byte(`{"a": 1`), m))
	require.Error(t, json.Unmarshal([]byte(`{"a": null}`), m))

	ptrs := New[*int]()
	err := json.Unmarshal([]byte(`{"a": 1, "b": null}`), ptrs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"b"`)

	empty := New[int]()
	require.NoError(t, json.Unmarshal([]byte(`null`), empty))
	assert.Equal(t, 0, empty.Len())

	require.NoError(t, json.Unmarshal([]byte(`{}`), empty))
	assert.Equal(t, 0, empty.Len())
}
