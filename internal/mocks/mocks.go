package mocks

import (
	"context"

	"cafe-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CafeRepository struct {
	mock.Mock
}

func (m *CafeRepository) CreateCafe(ctx context.Context, cafe *domain.Cafe) (string, error) {
	args := m.Called(ctx, cafe)
	return args.String(0), args.Error(1)
}

func (m *CafeRepository) ListCafes(ctx context.Context) ([]domain.Cafe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cafe), args.Error(1)
}

type MenuRepository struct {
	mock.Mock
}

func (m *MenuRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}

func (m *MenuRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MenuRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

func (m *OrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type ReservationRepository struct {
	mock.Mock
}

func (m *ReservationRepository) CreateReservation(ctx context.Context, res *domain.Reservation) (string, error) {
	args := m.Called(ctx, res)
	return args.String(0), args.Error(1)
}

func (m *ReservationRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

type OrderPublisher struct {
	mock.Mock
}

func (m *OrderPublisher) PublishOrder(ctx context.Context, event domain.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MenuCache struct {
	mock.Mock
}

func (m *MenuCache) GetMenu(ctx context.Context) ([]domain.MenuItem, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Bool(1)
}

func (m *MenuCache) SetMenu(ctx context.Context, items []domain.MenuItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MenuCache) InvalidateMenu(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
