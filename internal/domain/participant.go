package domain

import "time"

// Participant is an authenticated end user owning holdings and an experience counter.
type Participant struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Level     int       `json:"level"`
	XP        int       `json:"xp"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultUsername derives the username assigned when a participant is provisioned.
func DefaultUsername(participantID string) string {
	if len(participantID) > 8 {
		participantID = participantID[:8]
	}
	return DefaultUsernamePrefix + participantID
}
