package testhelpers

import (
	"context"
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"
	"github.com/MrMafora/Snap-Lotto-sub006/events"

	"github.com/stretchr/testify/mock"
)

// MockLotteryDrawRepository is a mock implementation of LotteryDrawRepository
type MockLotteryDrawRepository struct {
	mock.Mock
}

func (m *MockLotteryDrawRepository) Upsert(ctx context.Context, draw *entities.LotteryDraw) (*entities.LotteryDraw, error) {
	args := m.Called(ctx, draw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LotteryDraw), args.Error(1)
}

func (m *MockLotteryDrawRepository) GetByDrawNumber(ctx context.Context, game entities.GameType, drawNumber int64) (*entities.LotteryDraw, error) {
	args := m.Called(ctx, game, drawNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LotteryDraw), args.Error(1)
}

func (m *MockLotteryDrawRepository) GetLatest(ctx context.Context, game entities.GameType) (*entities.LotteryDraw, error) {
	args := m.Called(ctx, game)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LotteryDraw), args.Error(1)
}

func (m *MockLotteryDrawRepository) GetByDateRange(ctx context.Context, game entities.GameType, from, to time.Time) ([]*entities.LotteryDraw, error) {
	args := m.Called(ctx, game, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LotteryDraw), args.Error(1)
}

// MockDivisionRepository is a mock implementation of DivisionRepository
type MockDivisionRepository struct {
	mock.Mock
}

func (m *MockDivisionRepository) ReplaceForDraw(ctx context.Context, drawID int64, rows []entities.DivisionRow) error {
	args := m.Called(ctx, drawID, rows)
	return args.Error(0)
}

func (m *MockDivisionRepository) GetForDraw(ctx context.Context, drawID int64) (*entities.DivisionTable, error) {
	args := m.Called(ctx, drawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DivisionTable), args.Error(1)
}

// MockEventPublisher is a mock implementation of events.Publisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}
