package player

import (
	"strconv"
	"strings"
)

// FindByTitle lists unflagged videos, sorted by id, whose title contains
// term ignoring case.
func (p *Player) FindByTitle(term string) []*Video {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.findLocked(titleMatcher(term))
}

// FindByTag lists unflagged videos, sorted by id, whose joined tag string
// contains tag ignoring case. A query without '#' matches nothing.
func (p *Player) FindByTag(tag string) []*Video {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.findLocked(tagMatcher(tag))
}

// SearchByTitle runs FindByTitle and plays the result numbered selection.
// A selection that is not a number in range is ignored.
func (p *Player) SearchByTitle(term, selection string) (SearchOutcome, error) {
	return p.search(titleMatcher(term), selection)
}

func (p *Player) SearchByTag(tag, selection string) (SearchOutcome, error) {
	return p.search(tagMatcher(tag), selection)
}

func (p *Player) search(match func(*Video) bool, selection string) (SearchOutcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := SearchOutcome{Results: p.findLocked(match)}
	n, ok := parseSelection(selection, len(out.Results))
	if !ok {
		return out, nil
	}
	events, err := p.playLocked(out.Results[n-1].ID())
	if err != nil {
		return out, err
	}
	out.Events = events
	return out, nil
}

func (p *Player) findLocked(match func(*Video) bool) []*Video {
	var out []*Video
	for _, v := range p.sortedLocked(true) {
		if match(v) {
			out = append(out, v)
		}
	}
	return out
}

func titleMatcher(term string) func(*Video) bool {
	needle := strings.ToLower(term)
	return func(v *Video) bool {
		return strings.Contains(strings.ToLower(v.Title()), needle)
	}
}

func tagMatcher(tag string) func(*Video) bool {
	needle := strings.ToLower(tag)
	hasHash := strings.Contains(tag, "#")
	return func(v *Video) bool {
		return hasHash && strings.Contains(strings.ToLower(v.TagString()), needle)
	}
}

// parseSelection accepts only plain decimal digits naming an entry in
// [1, count].
func parseSelection(s string, count int) (int, bool) {
	if s == "" || count == 0 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n, true
}
