package player

import "strings"

type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Video is a catalog entry. Identity and metadata never change after
// construction; the playback and moderation flags are flipped by the Player.
type Video struct {
	id    string
	title string
	tags  []string

	playing    bool
	paused     bool
	flagged    bool
	flagReason string
}

func NewVideo(title, id string, tags []string) *Video {
	cp := make([]string, len(tags))
	copy(cp, tags)
	return &Video{id: id, title: title, tags: cp}
}

func (v *Video) ID() string    { return v.id }
func (v *Video) Title() string { return v.title }

func (v *Video) Tags() []string {
	cp := make([]string, len(v.tags))
	copy(cp, v.tags)
	return cp
}

// TagString joins the tags with single spaces, the form used for display
// and for tag search.
func (v *Video) TagString() string {
	return strings.Join(v.tags, " ")
}

func (v *Video) Playing() bool      { return v.playing }
func (v *Video) Paused() bool       { return v.paused }
func (v *Video) Flagged() bool      { return v.flagged }
func (v *Video) FlagReason() string { return v.flagReason }

func (v *Video) active() bool { return v.playing || v.paused }

func (v *Video) TogglePlaying() {
	v.playing = !v.playing
}

func (v *Video) TogglePaused() {
	v.paused = !v.paused
}

// ToggleFlagged flips the flag. The reason is kept only while flagged.
func (v *Video) ToggleFlagged(reason string) {
	v.flagged = !v.flagged
	if v.flagged {
		v.flagReason = reason
		return
	}
	v.flagReason = ""
}
