// Package classifier assigns a mood label to an uploaded photo. The current
// implementation is a stand-in that draws uniformly from a fixed label set;
// it sits behind the Classifier interface so a real model can replace it
// without touching any caller.
package classifier

import (
	"image"
	"math/rand/v2"
)

// Labels is the closed set of moods the classifier can produce. The
// recommendation table in package recommend carries an entry for each.
var Labels = []string{
	"happy",
	"sad",
	"angry",
	"neutral",
	"excited",
	"surprised",
	"fearful",
	"disgusted",
}

// Classifier maps a decoded image to one label from Labels. Callers must
// decode the upload before invoking Classify; the classifier itself has no
// failure mode.
type Classifier interface {
	Classify(img image.Image) string
}

// Random picks a label uniformly at random, ignoring the image contents.
type Random struct{}

// NewRandom returns the stub classifier.
func NewRandom() *Random { return &Random{} }

// Classify returns a uniformly random member of Labels.
func (*Random) Classify(_ image.Image) string {
	return Labels[rand.IntN(len(Labels))]
}
