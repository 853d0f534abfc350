package models

import "time"

// Notification is a persisted in-app notification (distinct from the
// transient toast surface in the notify package).
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
