package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarPacks_Go/internal/catalog"
	"github.com/osse101/CarPacks_Go/internal/clock"
	"github.com/osse101/CarPacks_Go/internal/config"
	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/event"
	"github.com/osse101/CarPacks_Go/internal/pack"
	"github.com/osse101/CarPacks_Go/internal/testing/memstore"
)

const (
	testParticipant = "0f8e2c1a-3b4d-4e5f-8a9b-0c1d2e3f4a5b"
	starterCatalog  = "../../configs/catalog.json"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:       "debug",
		LogFormat:      "text",
		Environment:    "test",
		ServiceName:    "car-packs",
		Version:        "test",
		StorageTimeout: time.Second,
		XPPerOpen:      5,
		CooldownMode:   pack.CooldownModeReference,
	}
}

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 12; i++ {
		name := filepath.Join(dir, "session_2026-01-"+twoDigits(i)+"_00-00-00.log")
		require.NoError(t, os.WriteFile(name, nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), LogFileExtension) {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, 9)
	assert.NotContains(t, logs, "session_2026-01-01_00-00-00.log")
	assert.Contains(t, logs, "session_2026-01-12_00-00-00.log")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func twoDigits(i int) string {
	return string([]byte{byte('0' + i/10), byte('0' + i%10)})
}

func restoreDefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestInitLogger_WritesBaseAttributes(t *testing.T) {
	restoreDefaultLogger(t)
	var buf bytes.Buffer
	initLogger(testConfig(), &buf)

	out := buf.String()
	assert.Contains(t, out, LogMsgStartingService)
	assert.Contains(t, out, "service=car-packs")
}

func TestSetupLogger_CreatesSessionFile(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := testConfig()
	cfg.LogDir = filepath.Join(t.TempDir(), "logs")

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	matches, err := filepath.Glob(filepath.Join(cfg.LogDir, "session_*.log"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestSyncCatalog_StarterFile(t *testing.T) {
	store := memstore.New()

	result, err := SyncCatalog(context.Background(), store, starterCatalog)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Packs)

	cards, err := store.GetPoolCards(context.Background(), "starter")
	require.NoError(t, err)
	assert.NotEmpty(t, cards)
}

func TestSyncCatalog_MissingFile(t *testing.T) {
	_, err := SyncCatalog(context.Background(), memstore.New(), filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, ErrMsgFailedLoadCatalog)
}

func TestSyncCatalog_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","packs":[{"id":"p","title":"P","cooldown_minutes":0,"weights":[],"pool":["ghost"]}],"cards":[]}`), 0644))

	_, err := SyncCatalog(context.Background(), memstore.New(), path)
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestNewPackService_EndToEnd(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	store.AddParticipant(testParticipant)
	_, err := SyncCatalog(ctx, store, starterCatalog)
	require.NoError(t, err)

	bus, err := InitializeEventSystem()
	require.NoError(t, err)
	var opened int
	bus.Subscribe(event.PackOpened, func(context.Context, event.Event) error {
		opened++
		return nil
	})

	clk := clock.NewMockClock(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	repos := &Repositories{Catalog: store, History: store, Holdings: store, Profiles: store}
	svc := NewPackService(testConfig(), repos, bus, clk)

	result, err := svc.OpenPack(ctx, testParticipant, "starter")
	require.NoError(t, err)
	assert.Equal(t, domain.DailyFreeMinCooldownMinutes, result.CooldownMinutes)
	assert.Equal(t, 5, store.XP(testParticipant))
	assert.Equal(t, 1, opened)

	_, err = svc.OpenPack(ctx, testParticipant, "starter")
	assert.ErrorIs(t, err, domain.ErrOnCooldown)

	clk.Set(clk.Now().Add(24 * time.Hour))
	_, err = svc.OpenPack(ctx, testParticipant, "starter")
	assert.NoError(t, err)
	assert.Len(t, store.Opens(), 2)
}

func TestWarmCatalog_SkipsWithoutCache(t *testing.T) {
	WarmCatalog(context.Background(), &Repositories{})

	store := memstore.New()
	_, err := SyncCatalog(context.Background(), store, starterCatalog)
	require.NoError(t, err)
	cached := catalog.NewCachedCatalog(store, 8, time.Minute)
	WarmCatalog(context.Background(), &Repositories{CatalogCache: cached})

	before := store.Calls(memstore.OpGetPack)
	_, err = cached.GetPack(context.Background(), "starter")
	require.NoError(t, err)
	assert.Equal(t, before, store.Calls(memstore.OpGetPack), "warmed pack served from cache")
}
