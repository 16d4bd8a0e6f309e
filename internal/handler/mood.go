package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"image"
	_ "image/gif"  // register decoders for the accepted formats
	_ "image/jpeg"
	_ "image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/moodsnap/moodsnap/internal/cache"
	"github.com/moodsnap/moodsnap/internal/classifier"
	"github.com/moodsnap/moodsnap/internal/config"
	"github.com/moodsnap/moodsnap/internal/middleware"
	"github.com/moodsnap/moodsnap/internal/model"
	"github.com/moodsnap/moodsnap/internal/queue"
	"github.com/moodsnap/moodsnap/internal/recommend"
	"github.com/moodsnap/moodsnap/internal/repository"
	queue_publisher "github.com/moodsnap/moodsnap/internal/service"
	"github.com/moodsnap/moodsnap/internal/thumbnail"
)

// maxUploadBytes bounds how much of a multipart file we are willing to
// read before decoding.
const maxUploadBytes = 10 << 20 // 10 MiB

// MoodHandler bundles dependencies for the upload/history endpoints.
type MoodHandler struct {
	Cfg        config.Config
	Users      *repository.UserRepo
	Logs       *repository.MoodLogRepo
	Classifier classifier.Classifier
	Cache      *cache.History
}

func NewMoodHandler(cfg config.Config, u *repository.UserRepo, l *repository.MoodLogRepo,
	cl classifier.Classifier, hist *cache.History) *MoodHandler {
	return &MoodHandler{Cfg: cfg, Users: u, Logs: l, Classifier: cl, Cache: hist}
}

// ----- DTOs -----

type logResp struct {
	ID        uint64    `json:"id"`
	Filename  string    `json:"filename"`
	Mood      string    `json:"mood"`
	Timestamp time.Time `json:"timestamp"`
	UserID    uint64    `json:"user_id"`
}

type historyItem struct {
	Filename       string    `json:"filename"`
	Mood           string    `json:"mood"`
	Timestamp      time.Time `json:"timestamp"`
	Recommendation string    `json:"recommendation"`
}

// Upload accepts a multipart photo, classifies it and persists one mood
// log. The image must decode (jpeg/png/gif); the classifier is only
// invoked on a successfully decoded image.
func (h *MoodHandler) Upload(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, ok := h.currentUser(c, ctx)
	if !ok {
		return nil
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}
	if fh.Size > maxUploadBytes {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file too large"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid upload"})
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image file"})
	}

	mood := h.Classifier.Classify(img)

	// A failed thumbnail must not reject an otherwise valid upload.
	thumbPath, err := thumbnail.Save(h.Cfg.UploadDir, img)
	if err != nil {
		log.Printf("upload: thumbnail failed: %v", err)
		thumbPath = ""
	}

	rec, err := h.Logs.Create(ctx, u.ID, fh.Filename, mood, thumbPath)
	if err != nil {
		thumbnail.Remove(thumbPath)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create log failed"})
	}

	h.Cache.Invalidate(ctx, u.ID)

	// Best effort: a broker outage never fails the upload.
	_ = queue_publisher.PublishMoodLogged(ctx, queue.MoodLoggedEvent{
		LogID:    rec.ID,
		UserID:   u.ID,
		Email:    u.Email,
		Filename: rec.Filename,
		Mood:     rec.Mood,
		LoggedAt: rec.CreatedAt.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, toLogResp(rec))
}

// History returns the caller's logs newest-first, each annotated with the
// recommendation computed from its stored mood label.
func (h *MoodHandler) History(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, ok := h.currentUser(c, ctx)
	if !ok {
		return nil
	}

	if payload, hit := h.Cache.Get(ctx, u.ID); hit {
		return c.JSONBlob(http.StatusOK, payload)
	}

	logs, err := h.Logs.ListByUser(ctx, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	items := make([]historyItem, 0, len(logs))
	for _, l := range logs {
		items = append(items, historyItem{
			Filename:       l.Filename,
			Mood:           l.Mood,
			Timestamp:      l.CreatedAt,
			Recommendation: recommend.For(l.Mood),
		})
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encode failed"})
	}
	h.Cache.Set(ctx, u.ID, payload)
	return c.JSONBlob(http.StatusOK, payload)
}

// GetLog returns one of the caller's records by id, with recommendation.
// Records owned by other users are reported as not found.
func (h *MoodHandler) GetLog(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, ok := h.currentUser(c, ctx)
	if !ok {
		return nil
	}
	rec, ok := h.ownedLog(c, ctx, u)
	if !ok {
		return nil
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":             rec.ID,
		"filename":       rec.Filename,
		"mood":           rec.Mood,
		"timestamp":      rec.CreatedAt,
		"user_id":        rec.UserID,
		"recommendation": recommend.For(rec.Mood),
	})
}

// DeleteLog removes one of the caller's records and its thumbnail.
func (h *MoodHandler) DeleteLog(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, ok := h.currentUser(c, ctx)
	if !ok {
		return nil
	}
	rec, ok := h.ownedLog(c, ctx, u)
	if !ok {
		return nil
	}

	deleted, err := h.Logs.Delete(ctx, rec.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	if !deleted {
		// raced with another delete of the same record
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}

	thumbnail.Remove(rec.ThumbPath)
	h.Cache.Invalidate(ctx, u.ID)
	return c.NoContent(http.StatusNoContent)
}

// Thumbnail serves the stored preview for one of the caller's records.
func (h *MoodHandler) Thumbnail(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, ok := h.currentUser(c, ctx)
	if !ok {
		return nil
	}
	rec, ok := h.ownedLog(c, ctx, u)
	if !ok {
		return nil
	}
	if rec.ThumbPath == "" {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no thumbnail"})
	}
	return c.File(rec.ThumbPath)
}

// currentUser resolves the JWT subject stored by the middleware into a
// user row, writing the error response itself on failure. A subject that
// no longer exists gets 401, matching how a deleted account should behave
// with a still-valid token.
func (h *MoodHandler) currentUser(c echo.Context, ctx context.Context) (model.User, bool) {
	email, _ := c.Get(middleware.EmailKey).(string)
	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "user not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		return model.User{}, false
	}
	return u, true
}

// ownedLog parses the :id param and loads the record when it belongs to u,
// writing the error response itself on failure.
func (h *MoodHandler) ownedLog(c echo.Context, ctx context.Context, u model.User) (model.MoodLog, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		return model.MoodLog{}, false
	}
	rec, err := h.Logs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		return model.MoodLog{}, false
	}
	if rec.UserID != u.ID {
		// don't leak other users' record ids
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		return model.MoodLog{}, false
	}
	return rec, true
}

func toLogResp(l model.MoodLog) logResp {
	return logResp{
		ID:        l.ID,
		Filename:  l.Filename,
		Mood:      l.Mood,
		Timestamp: l.CreatedAt,
		UserID:    l.UserID,
	}
}
