package player

// Catalog is the read-only source of videos for a session.
type Catalog interface {
	AllVideos() []*Video
	Video(id string) (*Video, bool)
}

type MemoryCatalog struct {
	videos []*Video
	byID   map[string]*Video
}

// NewMemoryCatalog indexes videos by id. A later video with an id already
// seen replaces the earlier one.
func NewMemoryCatalog(videos ...*Video) *MemoryCatalog {
	c := &MemoryCatalog{byID: make(map[string]*Video, len(videos))}
	for _, v := range videos {
		if _, ok := c.byID[v.ID()]; ok {
			for i := range c.videos {
				if c.videos[i].ID() == v.ID() {
					c.videos[i] = v
				}
			}
		} else {
			c.videos = append(c.videos, v)
		}
		c.byID[v.ID()] = v
	}
	return c
}

func (c *MemoryCatalog) AllVideos() []*Video {
	out := make([]*Video, len(c.videos))
	copy(out, c.videos)
	return out
}

func (c *MemoryCatalog) Video(id string) (*Video, bool) {
	v, ok := c.byID[id]
	return v, ok
}

func (c *MemoryCatalog) Len() int { return len(c.videos) }
