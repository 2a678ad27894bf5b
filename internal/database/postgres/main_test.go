package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/CarPacks_Go/internal/database"
	"github.com/osse101/CarPacks_Go/internal/domain"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) func() {
	// Handle potential panics from testcontainers when Docker is unavailable
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("failed to start postgres container: %v\n", err)
		return nil
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return nil
	}

	pool, err := database.NewPool(ctx, connStr, 20, 30*time.Minute, time.Hour)
	if err != nil {
		fmt.Printf("failed to connect: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return nil
	}

	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("failed to apply migrations: %v\n", err)
		pool.Close()
		_ = pgContainer.Terminate(ctx)
		return nil
	}

	testPool = pool
	return func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}
}

// requireDB skips the test when no database container is available
func requireDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database container unavailable")
	}
	return testPool
}

type fixture struct {
	ParticipantID string
	Pack          domain.Pack
	Cards         []domain.Card
}

// seedFixture creates a participant, a pack and two cards, all with unique IDs
func seedFixture(t *testing.T, pool *pgxpool.Pool, pack domain.Pack) fixture {
	t.Helper()
	ctx := context.Background()
	suffix := uuid.NewString()[:8]

	participantID := uuid.NewString()
	_, err := NewProfileRepository(pool).EnsureParticipant(ctx, participantID)
	require.NoError(t, err)

	catalog := NewCatalogRepository(pool)
	if pack.ID == "" {
		pack.ID = "pack-" + suffix
	}
	if pack.Title == "" {
		pack.Title = "Starter " + suffix
	}
	require.NoError(t, catalog.UpsertPack(ctx, pack))

	year := 1989
	cards := []domain.Card{
		{ID: "card-a-" + suffix, Make: "Mazda", Model: "MX-5", Year: &year, Rarity: domain.RarityCommon},
		{ID: "card-b-" + suffix, Make: "Porsche", Model: "959", Rarity: domain.RarityLegendary},
	}
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		require.NoError(t, catalog.UpsertCard(ctx, c))
		ids = append(ids, c.ID)
	}
	require.NoError(t, catalog.ReplacePool(ctx, pack.ID, ids))
	require.NoError(t, catalog.ReplaceRarityWeights(ctx, pack.ID, []domain.RarityWeight{
		{Rarity: domain.RarityCommon, Weight: 90},
		{Rarity: domain.RarityLegendary, Weight: 10},
	}))

	return fixture{ParticipantID: participantID, Pack: pack, Cards: cards}
}
