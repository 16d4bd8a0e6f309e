package model

import "time"

// MoodLog is the persisted record of one classified upload. One row is
// written per accepted image; rows are immutable apart from deletion.
//
// Fields:
//
//	ID        – primary key identifier, assigned by the database.
//	UserID    – owner of the record (foreign key into users).
//	Filename  – original filename as sent by the client.
//	Mood      – label assigned by the classifier at upload time.
//	ThumbPath – path of the generated thumbnail on disk (nullable; empty
//	            when thumbnail generation failed or was skipped).
//	CreatedAt – server-assigned timestamp of persistence.
//
// The coping recommendation is intentionally not a column: it is computed
// from Mood on every read so edits to the advisory table are never stale.
type MoodLog struct {
	ID        uint64    // mood_logs.id
	UserID    uint64    // mood_logs.user_id
	Filename  string    // mood_logs.filename
	Mood      string    // mood_logs.mood
	ThumbPath string    // mood_logs.thumb_path
	CreatedAt time.Time // mood_logs.created_at
}
