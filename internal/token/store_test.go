package token

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studioportal/portal-client/internal/models"
	"github.com/studioportal/portal-client/internal/storage"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(storage.New(t.TempDir()))
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)

	pair := models.TokenPair{AccessToken: "t1", RefreshToken: "r1"}
	require.NoError(t, s.Save(pair))

	got, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, pair, got)
}

func TestStore_LoadEmpty(t *testing.T) {
	s := newStore(t)

	_, ok, err := s.Load()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Save(models.TokenPair{AccessToken: "old", RefreshToken: "old-r"}))
	require.NoError(t, s.Save(models.TokenPair{AccessToken: "new", RefreshToken: "new-r"}))

	got, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "new", got.AccessToken)
	require.Equal(t, "new-r", got.RefreshToken)
}

func TestStore_ClearThenLoadIsAbsent(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Save(models.TokenPair{AccessToken: "t1", RefreshToken: "r1"}))
	require.NoError(t, s.Clear())

	_, ok, err := s.Load()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
}
