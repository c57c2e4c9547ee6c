package service

import (
	"context"

	"cafe-backend/internal/domain"
)

type CafeRepository interface {
	CreateCafe(ctx context.Context, cafe *domain.Cafe) (string, error)
	ListCafes(ctx context.Context) ([]domain.Cafe, error)
}

type MenuRepository interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) (string, error)
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (string, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
}

type ReservationRepository interface {
	CreateReservation(ctx context.Context, res *domain.Reservation) (string, error)
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
}

type MenuCache interface {
	GetMenu(ctx context.Context) ([]domain.MenuItem, bool)
	SetMenu(ctx context.Context, items []domain.MenuItem) error
	InvalidateMenu(ctx context.Context) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type CafeServiceInterface interface {
	Create(ctx context.Context, cafe *domain.Cafe) (string, error)
	List(ctx context.Context) ([]domain.Cafe, error)
}

type MenuServiceInterface interface {
	Create(ctx context.Context, item *domain.MenuItem) (string, error)
	List(ctx context.Context) ([]domain.MenuItem, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req *domain.OrderRequest) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	QRCode(ctx context.Context, orderID string) ([]byte, error)
}

type ReservationServiceInterface interface {
	Create(ctx context.Context, res *domain.Reservation) (string, error)
	List(ctx context.Context) ([]domain.Reservation, error)
}
