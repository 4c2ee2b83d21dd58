package player

import (
	"log/slog"
	"math/rand"
	"sort"
	"sync"

	"github.com/sonroyaalmerol/vidplayer/internal/utils"
)

// Player owns the single playback slot and the playlist store. The slot is
// derived from the videos' own flags: at most one video is playing or paused.
type Player struct {
	catalog   Catalog
	playlists *PlaylistStore
	rng       *rand.Rand

	mu sync.Mutex
}

// NewPlayer builds a player over catalog. A nil rng gets a randomly seeded
// source.
func NewPlayer(catalog Catalog, rng *rand.Rand) *Player {
	if rng == nil {
		rng = utils.NewRand(0)
	}
	return &Player{
		catalog:   catalog,
		playlists: NewPlaylistStore(),
		rng:       rng,
	}
}

func (p *Player) NumberOfVideos() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.catalog.AllVideos())
}

// ListAll returns every video, flagged ones included, sorted by id.
func (p *Player) ListAll() []*Video {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sortedLocked(false)
}

func (p *Player) sortedLocked(unflaggedOnly bool) []*Video {
	all := p.catalog.AllVideos()
	out := make([]*Video, 0, len(all))
	for _, v := range all {
		if unflaggedOnly && v.Flagged() {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// activeLocked returns the video holding the playback slot, if any.
func (p *Player) activeLocked() *Video {
	for _, v := range p.catalog.AllVideos() {
		if v.active() {
			return v
		}
	}
	return nil
}

// NowPlaying reports the active video and whether it is paused.
func (p *Player) NowPlaying() (*Video, Status) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := p.activeLocked()
	switch {
	case v == nil:
		return nil, StatusIdle
	case v.Paused():
		return v, StatusPaused
	default:
		return v, StatusPlaying
	}
}

func (p *Player) Play(videoID string) ([]Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playLocked(videoID)
}

func (p *Player) playLocked(videoID string) ([]Event, error) {
	v, ok := p.catalog.Video(videoID)
	if !ok {
		return nil, ErrVideoNotFound
	}
	if v.Flagged() {
		return nil, flaggedError(v)
	}
	return p.startLocked(v), nil
}

// startLocked empties the slot and puts v in it playing.
func (p *Player) startLocked(v *Video) []Event {
	events := p.stopAllLocked()
	v.TogglePlaying()
	slog.Debug("playing video", "videoID", v.ID())
	return append(events, Event{Kind: EventPlaying, Video: v})
}

// stopAllLocked clears playing and paused on every video that has either
// set and reports one stop per cleared flag.
func (p *Player) stopAllLocked() []Event {
	var events []Event
	for _, v := range p.catalog.AllVideos() {
		if v.Playing() {
			v.TogglePlaying()
			events = append(events, Event{Kind: EventStopped, Video: v})
		}
		if v.Paused() {
			v.TogglePaused()
			events = append(events, Event{Kind: EventStopped, Video: v})
		}
	}
	for _, ev := range events {
		slog.Debug("stopped video", "videoID", ev.Video.ID())
	}
	return events
}

func (p *Player) Stop() ([]Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopLocked()
}

func (p *Player) stopLocked() ([]Event, error) {
	events := p.stopAllLocked()
	if len(events) == 0 {
		return nil, ErrNothingPlaying
	}
	return events, nil
}

func (p *Player) PlayRandom() ([]Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	candidates := p.sortedLocked(true)
	if len(candidates) == 0 {
		return nil, ErrNoVideosAvailable
	}
	v := utils.PickOne(p.rng, candidates)
	return p.startLocked(v), nil
}

func (p *Player) Pause() ([]Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := p.activeLocked()
	switch {
	case v == nil:
		return nil, ErrNothingPlaying
	case v.Paused():
		return []Event{{Kind: EventAlreadyPaused, Video: v}}, nil
	}
	v.TogglePlaying()
	v.TogglePaused()
	slog.Debug("paused video", "videoID", v.ID())
	return []Event{{Kind: EventPaused, Video: v}}, nil
}

// Resume continues a paused video.
func (p *Player) Resume() ([]Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := p.activeLocked()
	switch {
	case v == nil:
		return nil, ErrNothingPlaying
	case v.Playing():
		return nil, ErrNotPaused
	}
	v.TogglePaused()
	v.TogglePlaying()
	slog.Debug("continued video", "videoID", v.ID())
	return []Event{{Kind: EventContinued, Video: v}}, nil
}
