package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRoundTrip(t *testing.T) {
	f := NewFile(t.TempDir())

	_, ok, err := f.Get("blob")
	require.NoError(t, err)
	assert.False(t, ok, "absence is not an error")

	require.NoError(t, f.Set("blob", []byte(`{"a":1}`)))
	got, ok, err := f.Get("blob")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), got)

	require.NoError(t, f.Delete("blob"))
	_, ok, err = f.Get("blob")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting a missing key stays silent
	assert.NoError(t, f.Delete("blob"))
}

func TestFileSanitizesKey(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(dir)
	require.NoError(t, f.Set("../escape", []byte("x")))
	got, ok, err := f.Get("../escape")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("x"), got)
}
