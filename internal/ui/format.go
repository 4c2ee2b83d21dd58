package ui

import (
	"fmt"
	"strconv"

	"github.com/sonroyaalmerol/vidplayer/internal/player"
)

const (
	SearchPrompt     = "Would you like to play any of the above? If yes, specify the number of the video."
	SearchPromptHint = "If your answer is not a valid number, we will assume it's a no."
)

// VideoLine renders "Title (id) [tags]" with the flag annotation when the
// video is flagged.
func VideoLine(v *player.Video) string {
	line := videoSummary(v)
	if v.Flagged() {
		line += fmt.Sprintf(" - FLAGGED (reason: %s)", v.FlagReason())
	}
	return line
}

func videoSummary(v *player.Video) string {
	return fmt.Sprintf("%s (%s) [%s]", v.Title(), v.ID(), v.TagString())
}

func NumberOfVideos(n int) []string {
	return []string{fmt.Sprintf("%d videos in the library", n)}
}

func AllVideos(videos []*player.Video) []string {
	out := []string{"Here's a list of all available videos:"}
	for _, v := range videos {
		out = append(out, " "+VideoLine(v))
	}
	return out
}

func NowPlaying(v *player.Video, status player.Status) []string {
	switch status {
	case player.StatusPlaying:
		return []string{"Currently playing: " + videoSummary(v)}
	case player.StatusPaused:
		return []string{"Currently playing: " + videoSummary(v) + " - PAUSED"}
	default:
		return []string{"No video is currently playing"}
	}
}

func AllPlaylists(names []string) []string {
	if len(names) == 0 {
		return []string{"No playlists exist yet"}
	}
	out := []string{"Showing all playlists:"}
	for _, n := range names {
		out = append(out, " "+n)
	}
	return out
}

// Playlist renders a playlist in its stored order. name is echoed as typed.
func Playlist(name string, videos []*player.Video) []string {
	out := []string{"Showing playlist: " + name}
	if len(videos) == 0 {
		return append(out, " No videos here yet")
	}
	for _, v := range videos {
		out = append(out, " "+VideoLine(v))
	}
	return out
}

// SearchResults numbers the results from 1 and appends the selection prompt.
func SearchResults(query string, results []*player.Video) []string {
	if len(results) == 0 {
		return []string{"No search results for " + query}
	}
	out := []string{"Here are the results for " + query + ":"}
	for i, v := range results {
		out = append(out, " "+strconv.Itoa(i+1)+") "+videoSummary(v))
	}
	return append(out, SearchPrompt, SearchPromptHint)
}
