// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// MoodLoggedEvent is published after each upload is classified and
// persisted. It carries enough information for downstream consumers to
// log, notify or feed analytics without querying the primary database.
type MoodLoggedEvent struct {
	LogID    uint64 `json:"log_id"`
	UserID   uint64 `json:"user_id"`
	Email    string `json:"email"`
	Filename string `json:"filename"`
	Mood     string `json:"mood"`
	LoggedAt string `json:"logged_at"`
}
