package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistStore(t *testing.T) {
	s := NewPlaylistStore()
	require.NoError(t, s.Create("Road Trip"))
	assert.ErrorIs(t, s.Create("ROAD TRIP"), ErrDuplicateName)

	name, ok := s.DisplayName("road trip")
	assert.True(t, ok)
	assert.Equal(t, "Road Trip", name)

	require.NoError(t, s.AddVideo("road trip", "a"))
	require.NoError(t, s.AddVideo("Road Trip", "b"))
	require.NoError(t, s.AddVideo("Road Trip", "a"))

	got, err := s.Videos("ROAD TRIP")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a"}, got)

	// only the first duplicate goes
	require.NoError(t, s.RemoveVideo("Road Trip", "a"))
	got, _ = s.Videos("Road Trip")
	assert.Equal(t, []string{"b", "a"}, got)

	require.NoError(t, s.RemoveVideo("Road Trip", "zzz"))
	got, _ = s.Videos("Road Trip")
	assert.Equal(t, []string{"b", "a"}, got)

	require.NoError(t, s.Clear("Road Trip"))
	got, _ = s.Videos("Road Trip")
	assert.Empty(t, got)
	assert.True(t, s.Has("road trip"))

	require.NoError(t, s.Delete("road TRIP"))
	assert.False(t, s.Has("Road Trip"))
	assert.Equal(t, 0, s.Len())
}

func TestPlaylistStoreNotFound(t *testing.T) {
	s := NewPlaylistStore()
	assert.ErrorIs(t, s.AddVideo("x", "a"), ErrPlaylistNotFound)
	assert.ErrorIs(t, s.RemoveVideo("x", "a"), ErrPlaylistNotFound)
	assert.ErrorIs(t, s.Clear("x"), ErrPlaylistNotFound)
	assert.ErrorIs(t, s.Delete("x"), ErrPlaylistNotFound)
	_, err := s.Videos("x")
	assert.ErrorIs(t, err, ErrPlaylistNotFound)
	assert.False(t, s.Contains("x", "a"))
}

func TestPlaylistStoreVideosIsACopy(t *testing.T) {
	s := NewPlaylistStore()
	require.NoError(t, s.Create("p"))
	require.NoError(t, s.AddVideo("p", "a"))
	got, _ := s.Videos("p")
	got[0] = "mutated"
	again, _ := s.Videos("p")
	assert.Equal(t, []string{"a"}, again)
}

func TestPlaylistStoreNames(t *testing.T) {
	s := NewPlaylistStore()
	for _, n := range []string{"b", "C", "a"} {
		require.NoError(t, s.Create(n))
	}
	assert.Equal(t, []string{"a", "b", "C"}, s.Names())
}
