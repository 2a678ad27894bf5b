package domain

import "time"

// OpenEvent is the append-only record of one successful open.
type OpenEvent struct {
	ParticipantID string    `json:"participant_id"`
	PackID        string    `json:"pack_id"`
	OpenedAt      time.Time `json:"opened_at"`
}

// Eligibility is the result of checking a participant against a pack's cooldown.
type Eligibility struct {
	PackID                   string     `json:"pack_id"`
	Eligible                 bool       `json:"eligible"`
	EffectiveCooldownMinutes int        `json:"cooldown_minutes"`
	LastOpenedAt             *time.Time `json:"last_opened_at"`
}

// NextEligibleAt returns when the participant may open again, or nil when there is no prior open.
func (e Eligibility) NextEligibleAt() *time.Time {
	if e.LastOpenedAt == nil {
		return nil
	}
	next := e.LastOpenedAt.Add(time.Duration(e.EffectiveCooldownMinutes) * time.Minute)
	return &next
}

// Remaining returns how long until the participant may open again.
func (e Eligibility) Remaining(now time.Time) time.Duration {
	next := e.NextEligibleAt()
	if next == nil || !now.Before(*next) {
		return 0
	}
	return next.Sub(now)
}

// OpenResult is returned to the caller after a successful open.
type OpenResult struct {
	Card            Card      `json:"card"`
	Rarity          string    `json:"rarity"`
	CooldownMinutes int       `json:"cooldown_minutes"`
	OpenedAt        time.Time `json:"-"`
	HoldingCount    int       `json:"-"`
	Degraded        []string  `json:"-"` // best-effort steps that failed
}
