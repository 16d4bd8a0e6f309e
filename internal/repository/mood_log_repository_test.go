package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newLogRepoWithMock(t *testing.T) (*MoodLogRepo, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewMoodLogRepo(db), mock, db
}

const selectLogByID = "SELECT id, user_id, filename, mood, thumb_path, created_at FROM mood_logs WHERE id=? LIMIT 1"

func TestMoodLogCreate_RoundTrip(t *testing.T) {
	repo, mock, db := newLogRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectExec("INSERT INTO mood_logs (user_id, filename, mood, thumb_path) VALUES (?,?,?,?)").
		WithArgs(uint64(7), "selfie.png", "happy", "uploads/t.jpg").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectQuery(selectLogByID).
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "filename", "mood", "thumb_path", "created_at"}).
			AddRow(42, 7, "selfie.png", "happy", "uploads/t.jpg", now))

	rec, err := repo.Create(context.Background(), 7, "selfie.png", "happy", "uploads/t.jpg")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.ID != 42 || rec.UserID != 7 || rec.Filename != "selfie.png" || rec.Mood != "happy" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.CreatedAt.IsZero() {
		t.Fatalf("timestamp not populated from the database")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMoodLogCreate_NoThumbnailStoresNull(t *testing.T) {
	repo, mock, db := newLogRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO mood_logs (user_id, filename, mood, thumb_path) VALUES (?,?,?,?)").
		WithArgs(uint64(7), "a.jpg", "sad", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(selectLogByID).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "filename", "mood", "thumb_path", "created_at"}).
			AddRow(1, 7, "a.jpg", "sad", nil, time.Now()))

	rec, err := repo.Create(context.Background(), 7, "a.jpg", "sad", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.ThumbPath != "" {
		t.Fatalf("expected empty thumb path, got %q", rec.ThumbPath)
	}
}

func TestMoodLogCreate_FKViolation(t *testing.T) {
	repo, mock, db := newLogRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO mood_logs (user_id, filename, mood, thumb_path) VALUES (?,?,?,?)").
		WithArgs(uint64(999), "a.jpg", "sad", nil).
		WillReturnError(errors.New("Error 1452: Cannot add or update a child row"))

	if _, err := repo.Create(context.Background(), 999, "a.jpg", "sad", ""); err == nil {
		t.Fatalf("expected error for unknown user, got nil")
	}
}

func TestMoodLogGetByID_Absent(t *testing.T) {
	repo, mock, db := newLogRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectLogByID).
		WithArgs(uint64(5)).
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), 5); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestMoodLogListByUser_NewestFirst(t *testing.T) {
	repo, mock, db := newLogRepoWithMock(t)
	defer db.Close()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "filename", "mood", "thumb_path", "created_at"}).
		AddRow(3, 7, "c.png", "excited", nil, base.Add(2*time.Minute)).
		AddRow(2, 7, "b.png", "sad", nil, base.Add(time.Minute)).
		AddRow(1, 7, "a.png", "happy", nil, base)

	mock.ExpectQuery("SELECT id, user_id, filename, mood, thumb_path, created_at FROM mood_logs WHERE user_id=? ORDER BY created_at DESC, id DESC").
		WithArgs(uint64(7)).
		WillReturnRows(rows)

	logs, err := repo.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("got %d logs, want 3", len(logs))
	}
	for i := 1; i < len(logs); i++ {
		if logs[i].CreatedAt.After(logs[i-1].CreatedAt) {
			t.Fatalf("logs not newest-first: %v before %v", logs[i-1].CreatedAt, logs[i].CreatedAt)
		}
	}
}

func TestMoodLogListByUser_Empty(t *testing.T) {
	repo, mock, db := newLogRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, filename, mood, thumb_path, created_at FROM mood_logs WHERE user_id=? ORDER BY created_at DESC, id DESC").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "filename", "mood", "thumb_path", "created_at"}))

	logs, err := repo.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if logs == nil || len(logs) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", logs)
	}
}

func TestMoodLogDelete_Idempotent(t *testing.T) {
	repo, mock, db := newLogRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM mood_logs WHERE id=?").
		WithArgs(uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM mood_logs WHERE id=?").
		WithArgs(uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 9)
	if err != nil || !deleted {
		t.Fatalf("first delete: got (%v,%v), want (true,nil)", deleted, err)
	}
	deleted, err = repo.Delete(context.Background(), 9)
	if err != nil || deleted {
		t.Fatalf("second delete: got (%v,%v), want (false,nil)", deleted, err)
	}
}
