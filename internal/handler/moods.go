package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodsnap/moodsnap/internal/classifier"
	"github.com/moodsnap/moodsnap/internal/recommend"
)

type moodEntry struct {
	Mood           string `json:"mood"`
	Recommendation string `json:"recommendation"`
}

// Moods is a public endpoint listing every mood label the classifier can
// assign together with its advisory text. Iterates classifier.Labels so
// the order is stable.
func Moods(c echo.Context) error {
	out := make([]moodEntry, 0, len(classifier.Labels))
	for _, l := range classifier.Labels {
		out = append(out, moodEntry{Mood: l, Recommendation: recommend.For(l)})
	}
	return c.JSON(http.StatusOK, out)
}
