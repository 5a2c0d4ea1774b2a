package notify

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, time.Hour)
}

func TestPushPopAllKeepsOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Success(ctx, "scope", "primeira")
	store.Error(ctx, "scope", "segunda")
	store.Info(ctx, "scope", "terceira")

	flashes, err := store.PopAll(ctx, "scope")
	require.NoError(t, err)
	require.Len(t, flashes, 3)
	assert.Equal(t, Flash{Type: TypeSuccess, Message: "primeira"}, flashes[0])
	assert.Equal(t, Flash{Type: TypeError, Message: "segunda"}, flashes[1])
	assert.Equal(t, Flash{Type: TypeInfo, Message: "terceira"}, flashes[2])
}

func TestPopAllDrainsQueue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Success(ctx, "scope", "uma vez só")

	first, err := store.PopAll(ctx, "scope")
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := store.PopAll(ctx, "scope")
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestScopesAreIsolated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Success(ctx, "a", "para a")
	store.Error(ctx, "b", "para b")

	flashesA, err := store.PopAll(ctx, "a")
	require.NoError(t, err)
	require.Len(t, flashesA, 1)
	assert.Equal(t, "para a", flashesA[0].Message)

	flashesB, err := store.PopAll(ctx, "b")
	require.NoError(t, err)
	require.Len(t, flashesB, 1)
	assert.Equal(t, "para b", flashesB[0].Message)
}
