package cooldown

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/repository"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetPack(ctx context.Context, packID string) (*domain.Pack, error) {
	args := m.Called(ctx, packID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pack), args.Error(1)
}

func (m *MockCatalog) ListPacks(ctx context.Context) ([]domain.Pack, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pack), args.Error(1)
}

func (m *MockCatalog) GetRarityWeights(ctx context.Context, packID string) ([]domain.RarityWeight, error) {
	args := m.Called(ctx, packID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RarityWeight), args.Error(1)
}

func (m *MockCatalog) GetPoolCards(ctx context.Context, packID string) ([]domain.Card, error) {
	args := m.Called(ctx, packID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

// MockHistory runs WithOpenLock callbacks against itself.
type MockHistory struct {
	mock.Mock
}

func (m *MockHistory) GetLatestOpen(ctx context.Context, participantID, packID string) (*time.Time, error) {
	args := m.Called(ctx, participantID, packID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockHistory) InsertOpen(ctx context.Context, event domain.OpenEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockHistory) WithOpenLock(ctx context.Context, participantID, packID string, fn func(ctx context.Context, tx repository.HistoryTx) error) error {
	args := m.Called(ctx, participantID, packID)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m)
}
