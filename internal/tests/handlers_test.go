package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "cafe-backend/internal/api/http"
	"cafe-backend/internal/domain"
	"cafe-backend/internal/mocks"
	"cafe-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(cafeRepo *mocks.CafeRepository, menuRepo *mocks.MenuRepository, orderRepo *mocks.OrderRepository, resRepo *mocks.ReservationRepository) http.Handler {
	handler := httpapi.NewHandler(
		service.NewCafeService(cafeRepo),
		service.NewMenuService(menuRepo, nil),
		service.NewOrderService(orderRepo, menuRepo, nil, service.DefaultQRGenerator{BaseURL: "http://localhost:8000"}),
		service.NewReservationService(resRepo),
	)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestCreateCafeHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.CafeRepository)
		wantCode  int
	}{
		{
			name: "valid request",
			body: `{"name":"Corner Cafe","description":"Cozy","place":"Main St 1"}`,
			setupMock: func(m *mocks.CafeRepository) {
				m.On("CreateCafe", mock.Anything, mock.AnythingOfType("*domain.Cafe")).
					Return("65f1a0000000000000000001", nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.CafeRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing required name",
			body:      `{"description":"Cozy","place":"Main St 1"}`,
			setupMock: func(m *mocks.CafeRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"name":"Corner Cafe","description":"Cozy","place":"Main St 1"}`,
			setupMock: func(m *mocks.CafeRepository) {
				m.On("CreateCafe", mock.Anything, mock.AnythingOfType("*domain.Cafe")).
					Return("", domain.ErrPersistence).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cafeRepo := new(mocks.CafeRepository)
			tt.setupMock(cafeRepo)
			router := newTestRouter(cafeRepo, new(mocks.MenuRepository), new(mocks.OrderRepository), new(mocks.ReservationRepository))

			req := httptest.NewRequest("POST", "/api/cafes", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				var body map[string]string
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "65f1a0000000000000000001", body["id"])
			}
			cafeRepo.AssertExpectations(t)
		})
	}
}

func TestCreateMenuItemHandler_ValidationDetail(t *testing.T) {
	router := newTestRouter(new(mocks.CafeRepository), new(mocks.MenuRepository), new(mocks.OrderRepository), new(mocks.ReservationRepository))

	req := httptest.NewRequest("POST", "/api/menu", bytes.NewBufferString(`{"price":-2}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Detail string             `json:"detail"`
		Fields []domain.FieldError `json:"fields"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "validation failed", body.Detail)
	assert.Len(t, body.Fields, 2)
	assert.Equal(t, "name", body.Fields[0].Field)
	assert.Equal(t, "price", body.Fields[1].Field)
}

func TestCreateOrderHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(menu *mocks.MenuRepository, orders *mocks.OrderRepository)
		wantCode  int
		wantTotal float64
	}{
		{
			name: "priced and persisted",
			body: `{"customer_name":"John Doe","items":[{"menu_item_id":"65f1a0000000000000000001","quantity":2},{"menu_item_id":"65f1a0000000000000000002","quantity":1}]}`,
			setupMock: func(menu *mocks.MenuRepository, orders *mocks.OrderRepository) {
				menu.On("GetMenuItem", mock.Anything, "65f1a0000000000000000001").
					Return(&domain.MenuItem{Name: "Latte", Price: 4.50}, nil).Once()
				menu.On("GetMenuItem", mock.Anything, "65f1a0000000000000000002").
					Return(&domain.MenuItem{Name: "Muffin", Price: 3.00}, nil).Once()
				orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
					Return("65f1a000000000000000000f", nil).Once()
			},
			wantCode:  http.StatusOK,
			wantTotal: 12.00,
		},
		{
			name: "unknown menu item is 404, nothing persisted",
			body: `{"customer_name":"John Doe","items":[{"menu_item_id":"000000000000000000000000","quantity":1}]}`,
			setupMock: func(menu *mocks.MenuRepository, orders *mocks.OrderRepository) {
				menu.On("GetMenuItem", mock.Anything, "000000000000000000000000").
					Return(nil, domain.ErrNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "malformed menu item id is 400, not 404",
			body: `{"customer_name":"John Doe","items":[{"menu_item_id":"zzz","quantity":1}]}`,
			setupMock: func(menu *mocks.MenuRepository, orders *mocks.OrderRepository) {
				menu.On("GetMenuItem", mock.Anything, "zzz").
					Return(nil, domain.ErrInvalidReference).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "quantity below one fails validation",
			body:      `{"customer_name":"John Doe","items":[{"menu_item_id":"65f1a0000000000000000001","quantity":0}]}`,
			setupMock: func(menu *mocks.MenuRepository, orders *mocks.OrderRepository) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menuRepo := new(mocks.MenuRepository)
			orderRepo := new(mocks.OrderRepository)
			tt.setupMock(menuRepo, orderRepo)
			router := newTestRouter(new(mocks.CafeRepository), menuRepo, orderRepo, new(mocks.ReservationRepository))

			req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				var body map[string]interface{}
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "65f1a000000000000000000f", body["id"])
				assert.Equal(t, tt.wantTotal, body["total"])
			} else {
				orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
			}
			menuRepo.AssertExpectations(t)
		})
	}
}

func TestListOrdersHandler_IDsAreStrings(t *testing.T) {
	orderRepo := new(mocks.OrderRepository)
	orderRepo.On("ListOrders", mock.Anything).Return([]domain.Order{
		{
			ID:           "65f1a000000000000000000f",
			CustomerName: "John Doe",
			Items:        []domain.OrderItem{{MenuItemID: "65f1a0000000000000000001", Quantity: 2, Price: 4.50}},
			Total:        9.00,
			Status:       "pending",
		},
	}, nil).Once()
	router := newTestRouter(new(mocks.CafeRepository), new(mocks.MenuRepository), orderRepo, new(mocks.ReservationRepository))

	req := httptest.NewRequest("GET", "/api/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 1)
	id, ok := body[0]["id"].(string)
	assert.True(t, ok, "id must render as a string")
	assert.Equal(t, "65f1a000000000000000000f", id)
	assert.NotContains(t, body[0], "_id")
	assert.Equal(t, 9.00, body[0]["total"])
}

func TestOrderQRCodeHandler(t *testing.T) {
	orderRepo := new(mocks.OrderRepository)
	orderRepo.On("GetOrder", mock.Anything, "65f1a000000000000000000f").
		Return(&domain.Order{ID: "65f1a000000000000000000f"}, nil).Once()
	orderRepo.On("GetOrder", mock.Anything, "000000000000000000000000").
		Return(nil, domain.ErrNotFound).Once()
	router := newTestRouter(new(mocks.CafeRepository), new(mocks.MenuRepository), orderRepo, new(mocks.ReservationRepository))

	req := httptest.NewRequest("GET", "/api/orders/65f1a000000000000000000f/qrcode", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())

	req = httptest.NewRequest("GET", "/api/orders/000000000000000000000000/qrcode", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReservationHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.ReservationRepository)
		wantCode  int
	}{
		{
			name: "valid reservation",
			body: `{"name":"Jane","party_size":4,"datetime_iso":"2026-10-01T19:30:00Z"}`,
			setupMock: func(m *mocks.ReservationRepository) {
				m.On("CreateReservation", mock.Anything, mock.AnythingOfType("*domain.Reservation")).
					Return("65f1a0000000000000000003", nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "party size below one",
			body:      `{"name":"Jane","party_size":0,"datetime_iso":"2026-10-01T19:30:00Z"}`,
			setupMock: func(m *mocks.ReservationRepository) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resRepo := new(mocks.ReservationRepository)
			tt.setupMock(resRepo)
			router := newTestRouter(new(mocks.CafeRepository), new(mocks.MenuRepository), new(mocks.OrderRepository), resRepo)

			req := httptest.NewRequest("POST", "/api/reservations", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			resRepo.AssertExpectations(t)
		})
	}
}

func TestListCafesHandler(t *testing.T) {
	cafeRepo := new(mocks.CafeRepository)
	cafeRepo.On("ListCafes", mock.Anything).Return([]domain.Cafe{
		{ID: "65f1a0000000000000000004", Name: "Corner Cafe", Description: "Cozy", Place: "Main St 1"},
	}, nil).Once()
	router := newTestRouter(cafeRepo, new(mocks.MenuRepository), new(mocks.OrderRepository), new(mocks.ReservationRepository))

	req := httptest.NewRequest("GET", "/api/cafes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []map[string]interface{}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 1)
	assert.Equal(t, "65f1a0000000000000000004", body[0]["id"])
}
