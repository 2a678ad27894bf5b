package cooldown

import (
	"fmt"
	"time"

	"github.com/osse101/CarPacks_Go/internal/domain"
)

// ErrOnCooldown is returned when a pack is still on cooldown for a participant.
type ErrOnCooldown struct {
	PackID          string
	CooldownMinutes int
	LastOpenedAt    time.Time
	Remaining       time.Duration
}

func (e *ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.PackID, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.PackID, seconds)
}

// Is allows errors.Is(err, domain.ErrOnCooldown) to match.
func (e *ErrOnCooldown) Is(target error) bool {
	return target == domain.ErrOnCooldown
}

func newErrOnCooldown(elig *domain.Eligibility, now time.Time) *ErrOnCooldown {
	e := &ErrOnCooldown{
		PackID:          elig.PackID,
		CooldownMinutes: elig.EffectiveCooldownMinutes,
		Remaining:       elig.Remaining(now),
	}
	if elig.LastOpenedAt != nil {
		e.LastOpenedAt = *elig.LastOpenedAt
	}
	return e
}
