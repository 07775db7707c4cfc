package kv

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Contract(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	v, err := r.Get(ctx, "passwords")
	require.NoError(t, err)
	require.Nil(t, v)

	payload := []byte("abc")
	require.NoError(t, r.Set(ctx, "passwords", payload))
	payload[0] = 'X'

	v, err = r.Get(ctx, "passwords")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v, "stored value must not alias caller slice")

	v[0] = 'Y'
	again, _ := r.Get(ctx, "passwords")
	assert.Equal(t, []byte("abc"), again, "returned value must not alias storage")

	require.NoError(t, r.Rename(ctx, "passwords", "passwords.corrupt"))
	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"passwords.corrupt": []byte("abc")}, m)

	require.ErrorIs(t, r.Rename(ctx, "missing", "x"), common.ErrorNotFound)

	require.NoError(t, r.Delete(ctx, "passwords.corrupt"))
	require.NoError(t, r.Delete(ctx, "passwords.corrupt"))

	require.NoError(t, r.Set(ctx, "a", nil))
	require.NoError(t, r.Clear(ctx))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestRepositories_SatisfyInterface(t *testing.T) {
	var _ Repository = (*SQLiteRepository)(nil)
	var _ Repository = (*MemoryRepository)(nil)
}
