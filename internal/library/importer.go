package library

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sonroyaalmerol/vidplayer/internal/repository"
)

type Sink interface {
	UpsertVideo(ctx context.Context, v repository.VideoRow) error
}

// ParseCatalog reads lines of the form
//
//	Title | video_id | #tag1 , #tag2
//
// The tag field may be empty or missing. Blank lines are skipped.
func ParseCatalog(r io.Reader) ([]repository.VideoRow, error) {
	var out []repository.VideoRow
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: want at least title and id", lineNo)
		}
		row := repository.VideoRow{
			Title: strings.TrimSpace(fields[0]),
			ID:    strings.TrimSpace(fields[1]),
		}
		if row.ID == "" {
			return nil, fmt.Errorf("line %d: empty video id", lineNo)
		}
		if len(fields) > 2 {
			for _, tag := range strings.Split(fields[2], ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					row.Tags = append(row.Tags, tag)
				}
			}
		}
		out = append(out, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ImportFile upserts every video listed in path.
func ImportFile(ctx context.Context, sink Sink, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rows, err := ParseCatalog(f)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, row := range rows {
		if err := sink.UpsertVideo(ctx, row); err != nil {
			return 0, err
		}
	}
	slog.Info("imported catalog file", "path", path, "videos", len(rows))
	return len(rows), nil
}
