package player

import (
	"errors"
	"fmt"
)

var (
	// ErrVideoNotFound indicates the id does not resolve in the catalog.
	ErrVideoNotFound = errors.New("video does not exist")
	// ErrPlaylistNotFound indicates no playlist matches the name.
	ErrPlaylistNotFound = errors.New("playlist does not exist")
	// ErrDuplicateName indicates a playlist with the same name, ignoring case, exists.
	ErrDuplicateName = errors.New("a playlist with the same name already exists")
	// ErrFlagged is wrapped by FlaggedError.
	ErrFlagged        = errors.New("video is currently flagged")
	ErrAlreadyFlagged = errors.New("video is already flagged")
	ErrNotFlagged     = errors.New("video is not flagged")
	ErrAlreadyAdded   = errors.New("video already added")
	ErrNotInPlaylist  = errors.New("video is not in playlist")
	// ErrNothingPlaying indicates the playback slot is empty.
	ErrNothingPlaying = errors.New("no video is currently playing")
	ErrNotPaused      = errors.New("video is not paused")
	// ErrNoVideosAvailable indicates every video in the catalog is flagged.
	ErrNoVideosAvailable = errors.New("no videos available")
)

// FlaggedError is returned when a command targets a flagged video.
type FlaggedError struct {
	VideoID string
	Reason  string
}

func (e *FlaggedError) Error() string {
	return fmt.Sprintf("%s (reason: %s)", ErrFlagged, e.Reason)
}

func (e *FlaggedError) Unwrap() error { return ErrFlagged }

func flaggedError(v *Video) error {
	return &FlaggedError{VideoID: v.ID(), Reason: v.FlagReason()}
}
