package library

import (
	"database/sql"
	"fmt"
)

func listTags(q querier) ([]*TagRecord, error) {
	rows, err := q.Query(`
		SELECT t.name, COUNT(vt.video_id)
		FROM tags t LEFT JOIN video_tags vt ON vt.tag_id = t.id
		GROUP BY t.id
		ORDER BY t.name`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*TagRecord
	for rows.Next() {
		t := &TagRecord{}
		if err := rows.Scan(&t.Name, &t.VideoCount); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return results, nil
}

// ListTags returns all known tags with their reference counts, sorted by name.
func (s *Store) ListTags() ([]*TagRecord, error) { return listTags(s.db) }

// ListTags returns all known tags within a transaction.
func (t *Tx) ListTags() ([]*TagRecord, error) { return listTags(t.tx) }

func tagID(q querier, name string) (int64, error) {
	var id int64
	err := q.QueryRow("SELECT id FROM tags WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get tag %q: %w", name, err)
	}
	return id, nil
}

func addTagToVideo(q querier, videoID int64, name string) error {
	var exists int
	if err := q.QueryRow("SELECT COUNT(*) FROM videos WHERE id = ?", videoID).Scan(&exists); err != nil {
		return fmt.Errorf("check video %d: %w", videoID, err)
	}
	if exists == 0 {
		return fmt.Errorf("tag video %d: %w", videoID, ErrNotFound)
	}
	if _, err := q.Exec("INSERT OR IGNORE INTO tags (name) VALUES (?)", name); err != nil {
		return fmt.Errorf("register tag %q: %w", name, mapSQLiteError(err))
	}
	id, err := tagID(q, name)
	if err != nil {
		return err
	}
	if _, err := q.Exec("INSERT OR IGNORE INTO video_tags (video_id, tag_id) VALUES (?, ?)", videoID, id); err != nil {
		return fmt.Errorf("link tag %q to video %d: %w", name, videoID, mapSQLiteError(err))
	}
	return nil
}

// AddTagToVideo attaches a tag to a video, registering the tag if it is new.
// Adding a tag the video already has is a no-op.
// Returns ErrNotFound if the video does not exist.
func (s *Store) AddTagToVideo(videoID int64, name string) error {
	return addTagToVideo(s.db, videoID, name)
}

// AddTagToVideo attaches a tag to a video within a transaction.
func (t *Tx) AddTagToVideo(videoID int64, name string) error {
	return addTagToVideo(t.tx, videoID, name)
}

// pruneTags deletes tags no video references anymore.
func pruneTags(q querier) error {
	if _, err := q.Exec("DELETE FROM tags WHERE id NOT IN (SELECT DISTINCT tag_id FROM video_tags)"); err != nil {
		return fmt.Errorf("prune tags: %w", err)
	}
	return nil
}

func removeTagFromVideo(q querier, videoID int64, name string) error {
	id, err := tagID(q, name)
	if err != nil {
		return err
	}
	if _, err := q.Exec("DELETE FROM video_tags WHERE video_id = ? AND tag_id = ?", videoID, id); err != nil {
		return fmt.Errorf("unlink tag %q from video %d: %w", name, videoID, mapSQLiteError(err))
	}
	return pruneTags(q)
}

// RemoveTagFromVideo detaches a tag from a video. If that was the tag's last
// reference, the tag is removed from the registry as well.
// Returns ErrNotFound if the tag does not exist.
func (s *Store) RemoveTagFromVideo(videoID int64, name string) error {
	return removeTagFromVideo(s.db, videoID, name)
}

// RemoveTagFromVideo detaches a tag from a video within a transaction.
func (t *Tx) RemoveTagFromVideo(videoID int64, name string) error {
	return removeTagFromVideo(t.tx, videoID, name)
}

func renameTag(q querier, oldName, newName string) error {
	if oldName == newName {
		return nil
	}
	if _, err := tagID(q, newName); err == nil {
		return fmt.Errorf("rename tag %q to %q: %w", oldName, newName, ErrDuplicate)
	}
	id, err := tagID(q, oldName)
	if err != nil {
		return fmt.Errorf("rename tag %q: %w", oldName, err)
	}
	if _, err := q.Exec("UPDATE tags SET name = ? WHERE id = ?", newName, id); err != nil {
		return fmt.Errorf("rename tag %q to %q: %w", oldName, newName, mapSQLiteError(err))
	}
	return nil
}

// RenameTag renames a tag everywhere it is referenced.
// Renaming a tag to itself is a no-op. Returns ErrDuplicate if newName
// already names a different tag, ErrNotFound if oldName is unknown.
func (s *Store) RenameTag(oldName, newName string) error {
	return renameTag(s.db, oldName, newName)
}

// RenameTag renames a tag within a transaction.
func (t *Tx) RenameTag(oldName, newName string) error {
	return renameTag(t.tx, oldName, newName)
}

func deleteTag(q querier, name string) error {
	if _, err := q.Exec("DELETE FROM tags WHERE name = ?", name); err != nil {
		return fmt.Errorf("delete tag %q: %w", name, mapSQLiteError(err))
	}
	return nil
}

// DeleteTag removes a tag from the registry and from every video carrying it.
// This operation is idempotent - no error is returned if the tag is unknown.
func (s *Store) DeleteTag(name string) error { return deleteTag(s.db, name) }

// DeleteTag removes a tag within a transaction.
func (t *Tx) DeleteTag(name string) error { return deleteTag(t.tx, name) }
