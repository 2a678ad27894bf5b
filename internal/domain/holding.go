package domain

import "time"

// Holding is the count of one card owned by one participant.
// There is at most one holding per (participant, card) pair.
type Holding struct {
	ParticipantID   string    `json:"participant_id"`
	CardID          string    `json:"card_id"`
	Count           int       `json:"count"`
	FirstObtainedAt time.Time `json:"first_obtained_at"`
}

// HoldingChange reports what the outcome applier did to a holding.
type HoldingChange struct {
	CardID   string `json:"card_id"`
	Count    int    `json:"count"`
	Created  bool   `json:"created"`  // a new holding row was inserted
	Fallback bool   `json:"fallback"` // the insert failed and the increment path was used
}
