package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patomosley/barbar-shop/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, time.Hour)
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess := New(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}, "session=abc")
	sess.State.Services = []models.Service{{ID: 1, Name: "Corte", Duration: 30, Price: 50}}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, "admin", got.User.Username)
	assert.Equal(t, "session=abc", got.BackendCookie)
	require.Len(t, got.State.Services, 1)
	assert.Equal(t, "Corte", got.State.Services[0].Name)
	assert.True(t, got.IsAdmin())
}

func TestStoreGetMissingReturnsNil(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess := New(&models.User{ID: 1, Role: models.RoleAdmin}, "")
	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Delete(ctx, sess.ID))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, New(&models.User{Role: models.RoleAdmin}, "").IsAdmin())
	assert.False(t, New(&models.User{Role: models.RoleClient}, "").IsAdmin())
	assert.False(t, (&Session{}).IsAdmin())
}
