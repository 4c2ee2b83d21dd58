package player

import "log/slog"

func (p *Player) CreatePlaylist(name string) ([]Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, existing := range p.playlists.Names() {
		if p.playlists.key(existing) == p.playlists.key(name) {
			return nil, ErrDuplicateName
		}
	}
	if err := p.playlists.Create(name); err != nil {
		return nil, err
	}
	slog.Debug("created playlist", "playlist", name)
	return []Event{{Kind: EventPlaylistCreated, Playlist: name}}, nil
}

// AddToPlaylist appends a video. A flagged video is refused as flagged even
// when it is already in the playlist.
func (p *Player) AddToPlaylist(name, videoID string) ([]Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playlists.Has(name) {
		return nil, ErrPlaylistNotFound
	}
	v, ok := p.catalog.Video(videoID)
	if !ok {
		return nil, ErrVideoNotFound
	}
	if v.Flagged() {
		return nil, flaggedError(v)
	}
	if p.playlists.Contains(name, videoID) {
		return nil, ErrAlreadyAdded
	}
	if err := p.playlists.AddVideo(name, videoID); err != nil {
		return nil, err
	}
	slog.Debug("added video to playlist", "playlist", name, "videoID", videoID)
	return []Event{{Kind: EventAddedToPlaylist, Playlist: name, Video: v}}, nil
}

func (p *Player) RemoveFromPlaylist(name, videoID string) ([]Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playlists.Has(name) {
		return nil, ErrPlaylistNotFound
	}
	v, ok := p.catalog.Video(videoID)
	if !ok {
		return nil, ErrVideoNotFound
	}
	if !p.playlists.Contains(name, videoID) {
		return nil, ErrNotInPlaylist
	}
	if err := p.playlists.RemoveVideo(name, videoID); err != nil {
		return nil, err
	}
	slog.Debug("removed video from playlist", "playlist", name, "videoID", videoID)
	return []Event{{Kind: EventRemovedFromPlaylist, Playlist: name, Video: v}}, nil
}

func (p *Player) ClearPlaylist(name string) ([]Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.playlists.Clear(name); err != nil {
		return nil, err
	}
	return []Event{{Kind: EventPlaylistCleared, Playlist: name}}, nil
}

func (p *Player) DeletePlaylist(name string) ([]Event, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.playlists.Delete(name); err != nil {
		return nil, err
	}
	slog.Debug("deleted playlist", "playlist", name)
	return []Event{{Kind: EventPlaylistDeleted, Playlist: name}}, nil
}

// ShowPlaylist returns the playlist's videos in insertion order. Ids that no
// longer resolve in the catalog are skipped.
func (p *Player) ShowPlaylist(name string) ([]*Video, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids, err := p.playlists.Videos(name)
	if err != nil {
		return nil, err
	}
	out := make([]*Video, 0, len(ids))
	for _, id := range ids {
		v, ok := p.catalog.Video(id)
		if !ok {
			slog.Warn("playlist references unknown video", "playlist", name, "videoID", id)
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (p *Player) ShowAllPlaylists() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playlists.Names()
}
