package service

import (
	"context"
	"log"
	"math"
	"time"

	"cafe-backend/internal/domain"
	"cafe-backend/internal/validation"
)

type CafeService struct {
	repo CafeRepository
}

func NewCafeService(repo CafeRepository) *CafeService {
	return &CafeService{repo: repo}
}

func (s *CafeService) Create(ctx context.Context, cafe *domain.Cafe) (string, error) {
	if err := validation.ValidateCafe(cafe); err != nil {
		return "", err
	}
	return s.repo.CreateCafe(ctx, cafe)
}

func (s *CafeService) List(ctx context.Context) ([]domain.Cafe, error) {
	return s.repo.ListCafes(ctx)
}

var _ CafeServiceInterface = (*CafeService)(nil)

type MenuService struct {
	repo  MenuRepository
	cache MenuCache
}

func NewMenuService(repo MenuRepository, cache MenuCache) *MenuService {
	return &MenuService{repo: repo, cache: cache}
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) (string, error) {
	if err := validation.ValidateMenuItem(item); err != nil {
		return "", err
	}
	id, err := s.repo.CreateMenuItem(ctx, item)
	if err != nil {
		return "", err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateMenu(ctx); err != nil {
			log.Printf("[cafe-api] menu cache invalidation failed: %v", err)
		}
	}
	return id, nil
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	if s.cache != nil {
		if items, ok := s.cache.GetMenu(ctx); ok {
			return items, nil
		}
	}
	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, items); err != nil {
			log.Printf("[cafe-api] menu cache write failed: %v", err)
		}
	}
	return items, nil
}

var _ MenuServiceInterface = (*MenuService)(nil)

// OrderService is the pricing engine: it turns submitted item references
// into an order record with snapshotted unit prices and a computed total.
//
// Prices are read from the store at the moment of processing. A menu item
// repriced while an order is in flight may land on either side of the
// read; there is no locking around it.
type OrderService struct {
	repo      OrderRepository
	menu      MenuRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, menu MenuRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, menu: menu, publisher: publisher, qrEncoder: qr}
}

// Create resolves, prices and persists an order, all-or-nothing. The first
// bad item reference aborts the whole order before anything is written.
func (s *OrderService) Create(ctx context.Context, req *domain.OrderRequest) (*domain.Order, error) {
	if err := validation.ValidateOrderRequest(req); err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	total := 0.0
	for _, it := range req.Items {
		menuItem, err := s.menu.GetMenuItem(ctx, it.MenuItemID)
		if err != nil {
			return nil, err
		}
		total += menuItem.Price * float64(it.Quantity)
		items = append(items, domain.OrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Price:      menuItem.Price,
		})
	}

	order := &domain.Order{
		CustomerName: req.CustomerName,
		Contact:      req.Contact,
		Items:        items,
		Note:         req.Note,
		Total:        round2(total),
		Status:       "pending",
	}

	id, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:         "order_created",
			OrderID:      order.ID,
			CustomerName: order.CustomerName,
			Total:        order.Total,
			Status:       order.Status,
			Timestamp:    time.Now(),
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			log.Printf("[cafe-api] order event publish failed for %s: %v", order.ID, err)
		}
	}

	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

// QRCode renders a pickup code for an existing order.
func (s *OrderService) QRCode(ctx context.Context, orderID string) ([]byte, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(order.ID)
}

var _ OrderServiceInterface = (*OrderService)(nil)

// round2 rounds to two decimals, half to even, applied once to the final
// total and never per line.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

type ReservationService struct {
	repo ReservationRepository
}

func NewReservationService(repo ReservationRepository) *ReservationService {
	return &ReservationService{repo: repo}
}

func (s *ReservationService) Create(ctx context.Context, res *domain.Reservation) (string, error) {
	if err := validation.ValidateReservation(res); err != nil {
		return "", err
	}
	return s.repo.CreateReservation(ctx, res)
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.repo.ListReservations(ctx)
}

var _ ReservationServiceInterface = (*ReservationService)(nil)
