package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sonroyaalmerol/vidplayer/internal/player"
	"github.com/sonroyaalmerol/vidplayer/internal/repository"
)

// Source is the part of the repository the loader needs.
type Source interface {
	ListVideos(ctx context.Context) ([]repository.VideoRow, error)
}

// Load reads the whole catalog into memory. The returned catalog is fixed
// for the rest of the session.
func Load(ctx context.Context, src Source) (*player.MemoryCatalog, error) {
	rows, err := src.ListVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	catalog := player.NewMemoryCatalog(convertToVideos(rows)...)
	slog.Info("catalog loaded", "videos", catalog.Len())
	return catalog, nil
}

func convertToVideos(rows []repository.VideoRow) []*player.Video {
	videos := make([]*player.Video, len(rows))
	for i, row := range rows {
		videos[i] = player.NewVideo(row.Title, row.ID, row.Tags)
	}
	return videos
}
