package repository

import (
	"context"
	"database/sql"

	"github.com/moodsnap/moodsnap/internal/model"
)

// MoodLogRepo owns all access to the 'mood_logs' table.
type MoodLogRepo struct{ DB *sql.DB }

func NewMoodLogRepo(db *sql.DB) *MoodLogRepo { return &MoodLogRepo{DB: db} }

const moodLogColumns = "id, user_id, filename, mood, thumb_path, created_at"

// Create inserts a log row and reads it back so the caller sees the
// server-assigned id and timestamp. A missing user surfaces as the
// driver's foreign-key error.
func (r *MoodLogRepo) Create(ctx context.Context, userID uint64, filename, mood, thumbPath string) (model.MoodLog, error) {
	var thumb sql.NullString
	if thumbPath != "" {
		thumb = sql.NullString{String: thumbPath, Valid: true}
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO mood_logs (user_id, filename, mood, thumb_path) VALUES (?,?,?,?)",
		userID, filename, mood, thumb)
	if err != nil {
		return model.MoodLog{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.MoodLog{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a single log row. Absence is reported as sql.ErrNoRows.
func (r *MoodLogRepo) GetByID(ctx context.Context, id uint64) (model.MoodLog, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+moodLogColumns+" FROM mood_logs WHERE id=? LIMIT 1", id)
	return scanMoodLog(row)
}

// ListByUser returns all of a user's logs newest-first. The secondary sort
// on id keeps same-second inserts in a deterministic order.
func (r *MoodLogRepo) ListByUser(ctx context.Context, userID uint64) ([]model.MoodLog, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+moodLogColumns+" FROM mood_logs WHERE user_id=? ORDER BY created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]model.MoodLog, 0)
	for rows.Next() {
		l, err := scanMoodLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// Delete removes a log row if present and reports whether a deletion
// occurred. Deleting an absent id returns (false, nil).
func (r *MoodLogRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM mood_logs WHERE id=?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanMoodLog(s scanner) (model.MoodLog, error) {
	var (
		l     model.MoodLog
		thumb sql.NullString
	)
	err := s.Scan(&l.ID, &l.UserID, &l.Filename, &l.Mood, &thumb, &l.CreatedAt)
	if err != nil {
		return model.MoodLog{}, err
	}
	if thumb.Valid {
		l.ThumbPath = thumb.String
	}
	return l, nil
}
