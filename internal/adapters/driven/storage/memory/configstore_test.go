package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Empty(t, store.Keys())
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
	assert.NoError(t, store.Save())
}

func TestNewConfigStore_Seeded(t *testing.T) {
	store := NewConfigStore(map[string]any{"extraction.stop_offset": 4})

	assert.Equal(t, 4, store.GetInt("extraction.stop_offset"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("watch.interval", "1s"))
	require.NoError(t, store.Set("watch.interval", "2s"))

	val, ok := store.Get("watch.interval")
	assert.True(t, ok)
	assert.Equal(t, "2s", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore(map[string]any{
		"str":    "hello",
		"int":    7,
		"int64":  int64(8),
		"float":  float64(9),
		"bool":   true,
		"slice":  []string{"a", "b"},
		"anyarr": []any{"c", 1, "d"},
	})

	tests := []struct {
		name string
		got  any
		want any
	}{
		{name: "string", got: store.GetString("str"), want: "hello"},
		{name: "string wrong type", got: store.GetString("int"), want: ""},
		{name: "int", got: store.GetInt("int"), want: 7},
		{name: "int64", got: store.GetInt("int64"), want: 8},
		{name: "float64", got: store.GetInt("float"), want: 9},
		{name: "int wrong type", got: store.GetInt("str"), want: 0},
		{name: "bool", got: store.GetBool("bool"), want: true},
		{name: "bool missing", got: store.GetBool("missing"), want: false},
		{name: "string slice", got: store.GetStringSlice("slice"), want: []string{"a", "b"}},
		{name: "any slice", got: store.GetStringSlice("anyarr"), want: []string{"c", "d"}},
		{name: "slice wrong type", got: store.GetStringSlice("str"), want: []string(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_GetStringSliceReturnsCopy(t *testing.T) {
	store := NewConfigStore(map[string]any{"anchors": []string{"ingredients"}})

	got := store.GetStringSlice("anchors")
	got[0] = "changed"

	assert.Equal(t, []string{"ingredients"}, store.GetStringSlice("anchors"))
}

func TestConfigStore_Delete(t *testing.T) {
	store := NewConfigStore(map[string]any{"a": 1, "b": 2})

	require.NoError(t, store.Delete("a"))
	require.NoError(t, store.Delete("missing"))

	assert.Equal(t, []string{"b"}, store.Keys())
}

func TestConfigStore_Concurrent(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("key", n)
			_ = store.GetInt("key")
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("key")
	assert.True(t, ok)
}
