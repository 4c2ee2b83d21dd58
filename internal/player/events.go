package player

type EventKind int

const (
	EventStopped EventKind = iota
	EventPlaying
	EventPaused
	EventAlreadyPaused
	EventContinued
	EventPlaylistCreated
	EventAddedToPlaylist
	EventRemovedFromPlaylist
	EventPlaylistCleared
	EventPlaylistDeleted
	EventFlagged
	EventAllowed
)

func (k EventKind) String() string {
	switch k {
	case EventStopped:
		return "stopped"
	case EventPlaying:
		return "playing"
	case EventPaused:
		return "paused"
	case EventAlreadyPaused:
		return "already-paused"
	case EventContinued:
		return "continued"
	case EventPlaylistCreated:
		return "playlist-created"
	case EventAddedToPlaylist:
		return "added-to-playlist"
	case EventRemovedFromPlaylist:
		return "removed-from-playlist"
	case EventPlaylistCleared:
		return "playlist-cleared"
	case EventPlaylistDeleted:
		return "playlist-deleted"
	case EventFlagged:
		return "flagged"
	case EventAllowed:
		return "allowed"
	default:
		return "unknown"
	}
}

// Event is one visible outcome of a command. Playlist holds the name as the
// caller typed it.
type Event struct {
	Kind     EventKind
	Video    *Video
	Playlist string
	Reason   string
}

// SearchOutcome carries the numbered results of a search and whatever the
// follow-up selection triggered.
type SearchOutcome struct {
	Results []*Video
	Events  []Event
}
