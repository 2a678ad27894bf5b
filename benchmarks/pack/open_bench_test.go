package pack_bench

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CarPacks_Go/internal/clock"
	"github.com/osse101/CarPacks_Go/internal/cooldown"
	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/event"
	"github.com/osse101/CarPacks_Go/internal/inventory"
	"github.com/osse101/CarPacks_Go/internal/pack"
	"github.com/osse101/CarPacks_Go/internal/reward"
	"github.com/osse101/CarPacks_Go/internal/testing/memstore"
	"github.com/osse101/CarPacks_Go/internal/utils"
)

func setup(b *testing.B, mode string) (pack.Service, []string) {
	b.Helper()
	store := memstore.New()
	store.AddPack(
		domain.Pack{ID: "starter", Title: "Starter", CooldownMinutes: 60},
		[]domain.RarityWeight{{PackID: "starter", Rarity: domain.RarityCommon, Weight: 80}, {PackID: "starter", Rarity: domain.RarityRare, Weight: 20}},
		[]domain.Card{{ID: "civic", Rarity: domain.RarityCommon}, {ID: "supra", Rarity: domain.RarityRare}},
	)

	participants := make([]string, 64)
	for i := range participants {
		participants[i] = uuid.NewString()
		store.AddParticipant(participants[i])
	}

	clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	svc := pack.NewService(
		store,
		cooldown.NewGate(store, store, clk, cooldown.Config{DevMode: true}),
		reward.NewSelectorWithRand(store, utils.NewSeededFloat(7)),
		inventory.NewApplier(store, store, store, clk),
		event.NewMemoryBus(),
		clk,
		pack.Config{StorageTimeout: time.Second, XPPerOpen: 5, CooldownMode: mode},
	)
	return svc, participants
}

func BenchmarkOpenPack(b *testing.B) {
	ctx := context.Background()
	for _, mode := range []string{pack.CooldownModeReference, pack.CooldownModeLocked} {
		b.Run(fmt.Sprintf("mode=%s", mode), func(b *testing.B) {
			svc, participants := setup(b, mode)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := svc.OpenPack(ctx, participants[i%len(participants)], "starter"); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
