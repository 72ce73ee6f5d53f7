package library

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// mapSQLiteError converts SQLite errors to custom error types.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return ErrDuplicate
	}
	if strings.Contains(errStr, "FOREIGN KEY constraint failed") ||
		strings.Contains(errStr, "CHECK constraint failed") {
		return ErrConstraint
	}
	return err
}

const videoColumns = "id, filename, title, description, path, size_bytes, duration_sec, width, height, fps, codec, rating, thumbnail_path, added_at"

func scanVideo(row interface{ Scan(...any) error }) (*VideoRecord, error) {
	v := &VideoRecord{}
	err := row.Scan(&v.ID, &v.Filename, &v.Title, &v.Description, &v.Path,
		&v.SizeBytes, &v.DurationSec, &v.Width, &v.Height, &v.FPS, &v.Codec,
		&v.Rating, &v.ThumbnailPath, &v.AddedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func addVideo(q querier, v *VideoRecord) error {
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO videos (filename, title, description, path, size_bytes, duration_sec, width, height, fps, codec, rating, thumbnail_path, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Filename, v.Title, v.Description, v.Path, v.SizeBytes, v.DurationSec,
		v.Width, v.Height, v.FPS, v.Codec, v.Rating, v.ThumbnailPath, now,
	)
	if err != nil {
		return fmt.Errorf("insert video: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	v.ID = id
	v.AddedAt = now

	for _, tag := range v.Tags {
		if err := addTagToVideo(q, id, tag); err != nil {
			return err
		}
	}
	for i, ch := range v.Chapters {
		if _, err := q.Exec(`
			INSERT INTO chapter_thumbs (video_id, position, path, timestamp_sec)
			VALUES (?, ?, ?, ?)`, id, i, ch.Path, ch.TimestampSec,
		); err != nil {
			return fmt.Errorf("insert chapter thumb: %w", mapSQLiteError(err))
		}
	}
	return nil
}

// AddVideo inserts a new video into the catalog.
// Sets ID and AddedAt on the struct. Tags and chapter thumbnails present on
// the struct are persisted along with it.
func (s *Store) AddVideo(v *VideoRecord) error { return addVideo(s.db, v) }

// AddVideo inserts a new video within a transaction.
func (t *Tx) AddVideo(v *VideoRecord) error { return addVideo(t.tx, v) }

func getVideo(q querier, id int64) (*VideoRecord, error) {
	v, err := scanVideo(q.QueryRow("SELECT "+videoColumns+" FROM videos WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get video %d: %w", id, mapSQLiteError(err))
	}
	if err := attachDetails(q, []*VideoRecord{v}); err != nil {
		return nil, err
	}
	return v, nil
}

// GetVideo retrieves a video by ID, including its tags and chapter thumbnails.
// Returns ErrNotFound if the video does not exist.
func (s *Store) GetVideo(id int64) (*VideoRecord, error) { return getVideo(s.db, id) }

// GetVideo retrieves a video by ID within a transaction.
func (t *Tx) GetVideo(id int64) (*VideoRecord, error) { return getVideo(t.tx, id) }

// GetVideoByPath finds a video by its file path.
// Returns nil, nil if not found.
func (s *Store) GetVideoByPath(path string) (*VideoRecord, error) {
	v, err := scanVideo(s.db.QueryRow("SELECT "+videoColumns+" FROM videos WHERE path = ?", path))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get video by path: %w", mapSQLiteError(err))
	}
	if err := attachDetails(s.db, []*VideoRecord{v}); err != nil {
		return nil, err
	}
	return v, nil
}

func listVideos(q querier, f VideoFilter) ([]*VideoRecord, int, error) {
	var conditions []string
	var args []any

	if f.MinRating > 0 {
		conditions = append(conditions, "rating >= ?")
		args = append(args, f.MinRating)
	}
	if f.Search != nil {
		pattern := "%" + strings.ToLower(*f.Search) + "%"
		conditions = append(conditions, "(LOWER(title) LIKE ? OR LOWER(filename) LIKE ? OR LOWER(description) LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}
	if f.Tag != nil {
		conditions = append(conditions, "id IN (SELECT video_id FROM video_tags JOIN tags ON tags.id = video_tags.tag_id WHERE tags.name = ?)")
		args = append(args, *f.Tag)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := q.QueryRow("SELECT COUNT(*) FROM videos "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count videos: %w", err)
	}

	query := "SELECT " + videoColumns + " FROM videos " + whereClause + " ORDER BY id"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list videos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*VideoRecord
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan video: %w", err)
		}
		results = append(results, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate videos: %w", err)
	}

	if err := attachDetails(q, results); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// ListVideos returns videos matching the filter with pagination, including
// tags and chapter thumbnails. Returns (results, totalCount, error).
func (s *Store) ListVideos(f VideoFilter) ([]*VideoRecord, int, error) { return listVideos(s.db, f) }

// ListVideos returns videos matching the filter within a transaction.
func (t *Tx) ListVideos(f VideoFilter) ([]*VideoRecord, int, error) { return listVideos(t.tx, f) }

// attachDetails loads tags and chapter thumbnails for the given videos.
func attachDetails(q querier, videos []*VideoRecord) error {
	if len(videos) == 0 {
		return nil
	}
	byID := make(map[int64]*VideoRecord, len(videos))
	ids := make([]string, 0, len(videos))
	var args []any
	for _, v := range videos {
		byID[v.ID] = v
		ids = append(ids, "?")
		args = append(args, v.ID)
	}
	inClause := "(" + strings.Join(ids, ", ") + ")"

	rows, err := q.Query(`
		SELECT vt.video_id, t.name
		FROM video_tags vt JOIN tags t ON t.id = vt.tag_id
		WHERE vt.video_id IN `+inClause+`
		ORDER BY vt.video_id, t.name`, args...)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var videoID int64
		var name string
		if err := rows.Scan(&videoID, &name); err != nil {
			return fmt.Errorf("scan tag: %w", err)
		}
		byID[videoID].Tags = append(byID[videoID].Tags, name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate tags: %w", err)
	}

	chRows, err := q.Query(`
		SELECT video_id, path, timestamp_sec
		FROM chapter_thumbs
		WHERE video_id IN `+inClause+`
		ORDER BY video_id, position`, args...)
	if err != nil {
		return fmt.Errorf("load chapter thumbs: %w", err)
	}
	defer func() { _ = chRows.Close() }()
	for chRows.Next() {
		var videoID int64
		var ch ChapterThumb
		if err := chRows.Scan(&videoID, &ch.Path, &ch.TimestampSec); err != nil {
			return fmt.Errorf("scan chapter thumb: %w", err)
		}
		byID[videoID].Chapters = append(byID[videoID].Chapters, ch)
	}
	return chRows.Err()
}

// VideoUpdate specifies a partial update; nil fields are left unchanged.
type VideoUpdate struct {
	Title         *string
	Description   *string
	Rating        *int
	ThumbnailPath *string
}

func updateVideo(q querier, id int64, u VideoUpdate) (*VideoRecord, error) {
	var sets []string
	var args []any

	if u.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *u.Title)
	}
	if u.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *u.Description)
	}
	if u.Rating != nil {
		sets = append(sets, "rating = ?")
		args = append(args, *u.Rating)
	}
	if u.ThumbnailPath != nil {
		sets = append(sets, "thumbnail_path = ?")
		args = append(args, *u.ThumbnailPath)
	}

	if len(sets) > 0 {
		args = append(args, id)
		result, err := q.Exec("UPDATE videos SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return nil, fmt.Errorf("update video %d: %w", id, mapSQLiteError(err))
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("rows affected: %w", err)
		}
		if rows == 0 {
			return nil, fmt.Errorf("update video %d: %w", id, ErrNotFound)
		}
	}
	return getVideo(q, id)
}

// UpdateVideo applies a partial update and returns the updated record.
// Returns ErrNotFound if the video does not exist.
func (s *Store) UpdateVideo(id int64, u VideoUpdate) (*VideoRecord, error) {
	return updateVideo(s.db, id, u)
}

// UpdateVideo applies a partial update within a transaction.
func (t *Tx) UpdateVideo(id int64, u VideoUpdate) (*VideoRecord, error) {
	return updateVideo(t.tx, id, u)
}

// SetRating sets the rating (0-5) of a video.
// Returns ErrNotFound if the video does not exist.
func (s *Store) SetRating(id int64, rating int) error {
	_, err := s.UpdateVideo(id, VideoUpdate{Rating: &rating})
	return err
}

func deleteVideo(q querier, id int64) error {
	if _, err := q.Exec("DELETE FROM videos WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete video %d: %w", id, mapSQLiteError(err))
	}
	// Tag links cascade; drop tags nothing references anymore.
	return pruneTags(q)
}

// DeleteVideo removes a video by ID. Tag links cascade and tags left with no
// references are pruned. This operation is idempotent - no error is returned
// if the video does not exist.
func (s *Store) DeleteVideo(id int64) error { return deleteVideo(s.db, id) }

// DeleteVideo removes a video by ID within a transaction.
func (t *Tx) DeleteVideo(id int64) error { return deleteVideo(t.tx, id) }
