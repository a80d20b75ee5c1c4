package domain

import "time"

type Participant struct {
	EventID  string    `json:"event_id"`
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
