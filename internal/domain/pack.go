package domain

import "time"

// Pack is a named reward source.
type Pack struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DailyFree       bool   `json:"daily_free"`
	CooldownMinutes int    `json:"cooldown_minutes"`
}

// EffectiveCooldownMinutes applies the daily-free floor to the configured cooldown.
func (p Pack) EffectiveCooldownMinutes() int {
	if p.DailyFree && p.CooldownMinutes < DailyFreeMinCooldownMinutes {
		return DailyFreeMinCooldownMinutes
	}
	return p.CooldownMinutes
}

// EffectiveCooldown is EffectiveCooldownMinutes as a duration.
func (p Pack) EffectiveCooldown() time.Duration {
	return time.Duration(p.EffectiveCooldownMinutes()) * time.Minute
}

// RarityWeight is the relative weight of one rarity tier inside a pack.
type RarityWeight struct {
	PackID string  `json:"pack_id"`
	Rarity string  `json:"rarity"`
	Weight float64 `json:"weight"`
}

// PoolEntry declares that a card may drop from a pack.
type PoolEntry struct {
	PackID string `json:"pack_id"`
	CardID string `json:"card_id"`
}
