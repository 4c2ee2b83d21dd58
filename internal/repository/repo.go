package repository

import (
	"context"
	"database/sql"
	"fmt"
)

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

// ListVideos returns every video ordered by id, tags in stored order.
func (r *Repo) ListVideos(ctx context.Context) ([]VideoRow, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT v.id, v.title, t.tag
	FROM videos v
	LEFT JOIN video_tags t ON t.video_id = v.id
	ORDER BY v.id ASC, t.position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VideoRow
	for rows.Next() {
		var id, title string
		var tag sql.NullString
		if err := rows.Scan(&id, &title, &tag); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].ID != id {
			out = append(out, VideoRow{ID: id, Title: title})
		}
		if tag.Valid {
			last := &out[len(out)-1]
			last.Tags = append(last.Tags, tag.String)
		}
	}
	return out, rows.Err()
}

// UpsertVideo inserts or replaces a video and all of its tags.
func (r *Repo) UpsertVideo(ctx context.Context, v VideoRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO videos(id, title) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET title = excluded.title`,
		v.ID, v.Title,
	); err != nil {
		return fmt.Errorf("upsert video %s: %w", v.ID, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM video_tags WHERE video_id = ?`, v.ID); err != nil {
		return fmt.Errorf("clear tags %s: %w", v.ID, err)
	}
	for i, tag := range v.Tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO video_tags(video_id, position, tag) VALUES (?, ?, ?)`,
			v.ID, i, tag,
		); err != nil {
			return fmt.Errorf("insert tag %s: %w", v.ID, err)
		}
	}
	return tx.Commit()
}

func (r *Repo) CountVideos(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM videos`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
