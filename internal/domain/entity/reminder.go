package entity

import "time"

// Reminder is a single pending reminder owned by a Slack user.
// Ordinal is the position in the owner's list at creation time and is only
// used for display; the 1-based position shown to the user shifts when
// earlier reminders are cancelled.
type Reminder struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	ChannelID string    `json:"channel_id"`
	Message   string    `json:"message"`
	DueAt     time.Time `json:"due_at"`
	Ordinal   int       `json:"ordinal"`
}

// Due reports whether the reminder is eligible for delivery at t.
func (r *Reminder) Due(t time.Time) bool {
	return !r.DueAt.After(t)
}
