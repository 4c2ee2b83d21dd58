package ui

import (
	"errors"
	"testing"

	"github.com/sonroyaalmerol/vidplayer/internal/player"
	"github.com/stretchr/testify/assert"
)

func TestVideoLine(t *testing.T) {
	v := player.NewVideo("Amazing Cats", "amazing_cats_video_id", []string{"#cat", "#animal"})
	assert.Equal(t, "Amazing Cats (amazing_cats_video_id) [#cat #animal]", VideoLine(v))

	v.ToggleFlagged("dont_like_cats")
	assert.Equal(t, "Amazing Cats (amazing_cats_video_id) [#cat #animal] - FLAGGED (reason: dont_like_cats)", VideoLine(v))

	empty := player.NewVideo("Video about nothing", "nothing_video_id", nil)
	assert.Equal(t, "Video about nothing (nothing_video_id) []", VideoLine(empty))
}

func TestNowPlaying(t *testing.T) {
	v := player.NewVideo("Amazing Cats", "amazing_cats_video_id", []string{"#cat", "#animal"})
	assert.Equal(t, []string{"Currently playing: Amazing Cats (amazing_cats_video_id) [#cat #animal]"},
		NowPlaying(v, player.StatusPlaying))
	assert.Equal(t, []string{"Currently playing: Amazing Cats (amazing_cats_video_id) [#cat #animal] - PAUSED"},
		NowPlaying(v, player.StatusPaused))
	assert.Equal(t, []string{"No video is currently playing"}, NowPlaying(nil, player.StatusIdle))
}

func TestPlaylists(t *testing.T) {
	assert.Equal(t, []string{"No playlists exist yet"}, AllPlaylists(nil))
	assert.Equal(t, []string{"Showing all playlists:", " a", " B"}, AllPlaylists([]string{"a", "B"}))
	assert.Equal(t, []string{"Showing playlist: my_list", " No videos here yet"}, Playlist("my_list", nil))
}

func TestSearchResults(t *testing.T) {
	assert.Equal(t, []string{"No search results for blah"}, SearchResults("blah", nil))

	v := player.NewVideo("Amazing Cats", "amazing_cats_video_id", []string{"#cat", "#animal"})
	assert.Equal(t, []string{
		"Here are the results for cat:",
		" 1) Amazing Cats (amazing_cats_video_id) [#cat #animal]",
		SearchPrompt,
		SearchPromptHint,
	}, SearchResults("cat", []*player.Video{v}))
}

func TestErrorLine(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		playlist string
		err      error
		want     string
	}{
		{"play missing", OpPlay, "", player.ErrVideoNotFound, "Cannot play video: Video does not exist"},
		{"play flagged", OpPlay, "", &player.FlaggedError{Reason: "dont_like_cats"}, "Cannot play video: Video is currently flagged (reason: dont_like_cats)"},
		{"stop idle", OpStop, "", player.ErrNothingPlaying, "Cannot stop video: No video is currently playing"},
		{"random", OpPlayRandom, "", player.ErrNoVideosAvailable, "No videos available"},
		{"continue playing", OpContinue, "", player.ErrNotPaused, "Cannot continue video: Video is not paused"},
		{"duplicate", OpCreatePlaylist, "MY_list", player.ErrDuplicateName, "Cannot create playlist: A playlist with the same name already exists"},
		{"add twice", OpAddToPlaylist, "my_list", player.ErrAlreadyAdded, "Cannot add video to my_list: Video already added"},
		{"show missing", OpShowPlaylist, "another", player.ErrPlaylistNotFound, "Cannot show playlist another: Playlist does not exist"},
		{"remove absent", OpRemoveFromPlaylist, "my_list", player.ErrNotInPlaylist, "Cannot remove video from my_list: Video is not in playlist"},
		{"clear missing", OpClearPlaylist, "x", player.ErrPlaylistNotFound, "Cannot clear playlist x: Playlist does not exist"},
		{"delete missing", OpDeletePlaylist, "x", player.ErrPlaylistNotFound, "Cannot delete playlist x: Playlist does not exist"},
		{"flag twice", OpFlag, "", player.ErrAlreadyFlagged, "Cannot flag video: Video is already flagged"},
		{"allow unflagged", OpAllow, "", player.ErrNotFlagged, "Cannot remove flag from video: Video is not flagged"},
		{"unexpected", OpPlay, "", errors.New("boom"), "Cannot play video: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorLine(tt.op, tt.playlist, tt.err))
		})
	}
}

func TestEventLine(t *testing.T) {
	v := player.NewVideo("Amazing Cats", "amazing_cats_video_id", nil)
	assert.Equal(t, []string{
		"Stopping video: Amazing Cats",
		"Playing video: Amazing Cats",
		"Added video to my_PLAYlist: Amazing Cats",
		"Successfully flagged video: Amazing Cats (reason: Not supplied)",
	}, Events([]player.Event{
		{Kind: player.EventStopped, Video: v},
		{Kind: player.EventPlaying, Video: v},
		{Kind: player.EventAddedToPlaylist, Video: v, Playlist: "my_PLAYlist"},
		{Kind: player.EventFlagged, Video: v, Reason: "Not supplied"},
	}))
}
