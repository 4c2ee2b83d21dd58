package ui

import (
	"errors"
	"fmt"

	"github.com/sonroyaalmerol/vidplayer/internal/player"
)

func EventLine(ev player.Event) string {
	switch ev.Kind {
	case player.EventStopped:
		return "Stopping video: " + ev.Video.Title()
	case player.EventPlaying:
		return "Playing video: " + ev.Video.Title()
	case player.EventPaused:
		return "Pausing video: " + ev.Video.Title()
	case player.EventAlreadyPaused:
		return "Video already paused: " + ev.Video.Title()
	case player.EventContinued:
		return "Continuing video: " + ev.Video.Title()
	case player.EventPlaylistCreated:
		return "Successfully created new playlist: " + ev.Playlist
	case player.EventAddedToPlaylist:
		return fmt.Sprintf("Added video to %s: %s", ev.Playlist, ev.Video.Title())
	case player.EventRemovedFromPlaylist:
		return fmt.Sprintf("Removed video from %s: %s", ev.Playlist, ev.Video.Title())
	case player.EventPlaylistCleared:
		return "Successfully removed all videos from " + ev.Playlist
	case player.EventPlaylistDeleted:
		return "Deleted playlist: " + ev.Playlist
	case player.EventFlagged:
		return fmt.Sprintf("Successfully flagged video: %s (reason: %s)", ev.Video.Title(), ev.Reason)
	case player.EventAllowed:
		return "Successfully removed flag from video: " + ev.Video.Title()
	}
	return ev.Kind.String()
}

func Events(events []player.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = EventLine(ev)
	}
	return out
}

// Op names the command an error came from; it picks the message prefix.
type Op int

const (
	OpPlay Op = iota
	OpStop
	OpPlayRandom
	OpPause
	OpContinue
	OpCreatePlaylist
	OpAddToPlaylist
	OpShowPlaylist
	OpRemoveFromPlaylist
	OpClearPlaylist
	OpDeletePlaylist
	OpFlag
	OpAllow
)

func (o Op) prefix(playlist string) string {
	switch o {
	case OpPlay:
		return "Cannot play video: "
	case OpStop:
		return "Cannot stop video: "
	case OpPause:
		return "Cannot pause video: "
	case OpContinue:
		return "Cannot continue video: "
	case OpCreatePlaylist:
		return "Cannot create playlist: "
	case OpAddToPlaylist:
		return "Cannot add video to " + playlist + ": "
	case OpShowPlaylist:
		return "Cannot show playlist " + playlist + ": "
	case OpRemoveFromPlaylist:
		return "Cannot remove video from " + playlist + ": "
	case OpClearPlaylist:
		return "Cannot clear playlist " + playlist + ": "
	case OpDeletePlaylist:
		return "Cannot delete playlist " + playlist + ": "
	case OpFlag:
		return "Cannot flag video: "
	case OpAllow:
		return "Cannot remove flag from video: "
	}
	return ""
}

var errorText = []struct {
	err  error
	text string
}{
	{player.ErrVideoNotFound, "Video does not exist"},
	{player.ErrPlaylistNotFound, "Playlist does not exist"},
	{player.ErrDuplicateName, "A playlist with the same name already exists"},
	{player.ErrAlreadyFlagged, "Video is already flagged"},
	{player.ErrNotFlagged, "Video is not flagged"},
	{player.ErrAlreadyAdded, "Video already added"},
	{player.ErrNotInPlaylist, "Video is not in playlist"},
	{player.ErrNothingPlaying, "No video is currently playing"},
	{player.ErrNotPaused, "Video is not paused"},
}

// ErrorLine renders a failed command. playlist is the name as typed, used
// by the playlist commands.
func ErrorLine(op Op, playlist string, err error) string {
	if errors.Is(err, player.ErrNoVideosAvailable) {
		return "No videos available"
	}
	var flagged *player.FlaggedError
	if errors.As(err, &flagged) {
		return op.prefix(playlist) + fmt.Sprintf("Video is currently flagged (reason: %s)", flagged.Reason)
	}
	for _, e := range errorText {
		if errors.Is(err, e.err) {
			return op.prefix(playlist) + e.text
		}
	}
	return op.prefix(playlist) + err.Error()
}
