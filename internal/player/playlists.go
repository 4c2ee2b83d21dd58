package player

import (
	"sort"

	"golang.org/x/text/cases"
)

type playlist struct {
	name     string
	videoIDs []string
}

// PlaylistStore maps case-insensitive names to ordered lists of video ids.
// Entries are plain ids; duplicates are allowed at this layer.
type PlaylistStore struct {
	byKey map[string]*playlist
	fold  cases.Caser
}

func NewPlaylistStore() *PlaylistStore {
	return &PlaylistStore{
		byKey: make(map[string]*playlist),
		fold:  cases.Fold(),
	}
}

func (s *PlaylistStore) key(name string) string {
	return s.fold.String(name)
}

func (s *PlaylistStore) get(name string) (*playlist, error) {
	pl, ok := s.byKey[s.key(name)]
	if !ok {
		return nil, ErrPlaylistNotFound
	}
	return pl, nil
}

func (s *PlaylistStore) Create(name string) error {
	k := s.key(name)
	if _, ok := s.byKey[k]; ok {
		return ErrDuplicateName
	}
	s.byKey[k] = &playlist{name: name}
	return nil
}

func (s *PlaylistStore) Has(name string) bool {
	_, ok := s.byKey[s.key(name)]
	return ok
}

// DisplayName returns the casing the playlist was created with.
func (s *PlaylistStore) DisplayName(name string) (string, bool) {
	pl, ok := s.byKey[s.key(name)]
	if !ok {
		return "", false
	}
	return pl.name, true
}

func (s *PlaylistStore) AddVideo(name, videoID string) error {
	pl, err := s.get(name)
	if err != nil {
		return err
	}
	pl.videoIDs = append(pl.videoIDs, videoID)
	return nil
}

func (s *PlaylistStore) Videos(name string) ([]string, error) {
	pl, err := s.get(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(pl.videoIDs))
	copy(out, pl.videoIDs)
	return out, nil
}

func (s *PlaylistStore) Contains(name, videoID string) bool {
	pl, err := s.get(name)
	if err != nil {
		return false
	}
	for _, id := range pl.videoIDs {
		if id == videoID {
			return true
		}
	}
	return false
}

// RemoveVideo drops the first occurrence of videoID. An id that is not in
// the playlist is ignored.
func (s *PlaylistStore) RemoveVideo(name, videoID string) error {
	pl, err := s.get(name)
	if err != nil {
		return err
	}
	for i, id := range pl.videoIDs {
		if id == videoID {
			pl.videoIDs = append(pl.videoIDs[:i], pl.videoIDs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *PlaylistStore) Clear(name string) error {
	pl, err := s.get(name)
	if err != nil {
		return err
	}
	pl.videoIDs = nil
	return nil
}

func (s *PlaylistStore) Delete(name string) error {
	k := s.key(name)
	if _, ok := s.byKey[k]; !ok {
		return ErrPlaylistNotFound
	}
	delete(s.byKey, k)
	return nil
}

// Names lists display names ordered case-insensitively.
func (s *PlaylistStore) Names() []string {
	keys := make([]string, 0, len(s.byKey))
	for k := range s.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = s.byKey[k].name
	}
	return out
}

func (s *PlaylistStore) Len() int { return len(s.byKey) }
