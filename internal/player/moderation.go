package player

import "log/slog"

const DefaultFlagReason = "Not supplied"

// FlagVideo hides a video from search, random play and playlist additions.
// A video holding the playback slot is stopped first.
func (p *Player) FlagVideo(videoID, reason string) ([]Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.catalog.Video(videoID)
	if !ok {
		return nil, ErrVideoNotFound
	}
	if v.Flagged() {
		return nil, ErrAlreadyFlagged
	}
	if reason == "" {
		reason = DefaultFlagReason
	}

	var events []Event
	if v.active() {
		stopped, err := p.stopLocked()
		if err != nil {
			return nil, err
		}
		events = append(events, stopped...)
	}
	v.ToggleFlagged(reason)
	slog.Info("flagged video", "videoID", videoID, "reason", reason)
	return append(events, Event{Kind: EventFlagged, Video: v, Reason: reason}), nil
}

func (p *Player) AllowVideo(videoID string) ([]Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.catalog.Video(videoID)
	if !ok {
		return nil, ErrVideoNotFound
	}
	if !v.Flagged() {
		return nil, ErrNotFlagged
	}
	v.ToggleFlagged("")
	slog.Info("allowed video", "videoID", videoID)
	return []Event{{Kind: EventAllowed, Video: v}}, nil
}
