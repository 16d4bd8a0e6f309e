// Package recommend maps a mood label to a coping recommendation shown to
// the user alongside their history.
package recommend

import "strings"

// Fallback is returned for any label outside the known set, including
// empty and malformed input.
const Fallback = "Take a moment to check in with yourself and practice mindfulness."

// advisories has one entry per classifier label. Keys are lowercase; For
// normalizes before lookup.
var advisories = map[string]string{
	"happy":     "Keep doing what you love! Consider journaling about what made you happy today.",
	"sad":       "Take some time for self-care. A short walk, talking to a friend, or listening to uplifting music might help.",
	"angry":     "Try deep breathing exercises or writing down your thoughts to process your emotions.",
	"neutral":   "This might be a good time to try something new or explore a different routine.",
	"excited":   "Channel your energy into a creative project or something you've been meaning to start!",
	"surprised": "Unexpected moments can be a gift. Take a beat to reflect on what caught you off guard.",
	"fearful":   "Ground yourself: name five things you can see and take a few slow breaths.",
	"disgusted": "Step away from what's bothering you and give yourself a change of scenery.",
}

// For returns the advisory text for a mood label. Lookup is
// case-insensitive and total: unknown labels resolve to Fallback, so this
// never fails regardless of what is stored in a record.
func For(label string) string {
	if s, ok := advisories[strings.ToLower(label)]; ok {
		return s
	}
	return Fallback
}

// Table returns a copy of the full label -> advisory mapping, keyed by the
// canonical lowercase labels. Used by the public moods endpoint.
func Table() map[string]string {
	out := make(map[string]string, len(advisories))
	for k, v := range advisories {
		out[k] = v
	}
	return out
}
