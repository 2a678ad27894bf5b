package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarPacks_Go/internal/domain"
)

func TestProfileRepository_Integration(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewProfileRepository(pool)
	id := uuid.NewString()

	p, err := repo.EnsureParticipant(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUsername(id), p.Username)
	assert.Equal(t, 1, p.Level)
	assert.Zero(t, p.XP)

	again, err := repo.EnsureParticipant(ctx, id)
	require.NoError(t, err, "provisioning is idempotent")
	assert.Equal(t, p.Username, again.Username)

	xp, err := repo.IncrementXP(ctx, id, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, xp)

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.IncrementXP(ctx, id, 5)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := repo.GetParticipant(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 55, got.XP)
	})

	t.Run("missing profile", func(t *testing.T) {
		_, err := repo.IncrementXP(ctx, uuid.NewString(), 5)
		assert.ErrorIs(t, err, domain.ErrParticipantNotFound)

		_, err = repo.GetParticipant(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
	})
}
