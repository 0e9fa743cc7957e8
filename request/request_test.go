package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestOrderAndLookup(t *testing.T) {
	r := New([]Field{
		{Name: "container_name", Value: "images"},
		{Name: "blob_name", Value: "a.png"},
		{Name: "content_length", Value: uint64(4096)},
	})

	assert.Equal(t, 3, r.Len())

	fields := r.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "container_name", fields[0].Name)
	assert.Equal(t, "content_length", fields[2].Name)

	v, ok := r.Value("blob_name")
	require.True(t, ok)
	assert.Equal(t, "a.png", v)

	_, ok = r.Value("sequence_number")
	assert.False(t, ok)
}

func TestRequestFieldsIsACopy(t *testing.T) {
	r := New([]Field{{Name: "a", Value: 1}})

	fields := r.Fields()
	fields[0].Value = 2

	v, ok := r.Value("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestJSONAssemblerPreservesOrder(t *testing.T) {
	r := New([]Field{
		{Name: "container_name", Value: "images"},
		{Name: "content_length", Value: uint64(4096)},
		{Name: "metadata", Value: map[string]string{"owner": "media"}},
	})

	out, err := JSONAssembler{}.Assemble(r)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"container_name": "images",
		"content_length": 4096,
		"metadata": {"owner": "media"}
	}`, string(out))

	// Keys appear in schema order, not map order.
	s := string(out)
	assert.Less(t, strings.Index(s, "container_name"), strings.Index(s, "content_length"))
	assert.Less(t, strings.Index(s, "content_length"), strings.Index(s, "metadata"))
}

func TestJSONAssemblerEmpty(t *testing.T) {
	out, err := JSONAssembler{}.Assemble(New(nil))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}
