package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"cafe-backend/internal/domain"
	"cafe-backend/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Cafes        service.CafeServiceInterface
	Menu         service.MenuServiceInterface
	Orders       service.OrderServiceInterface
	Reservations service.ReservationServiceInterface
}

func NewHandler(cafeSvc service.CafeServiceInterface, menuSvc service.MenuServiceInterface, orderSvc service.OrderServiceInterface, resSvc service.ReservationServiceInterface) *Handler {
	return &Handler{
		Cafes:        cafeSvc,
		Menu:         menuSvc,
		Orders:       orderSvc,
		Reservations: resSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.root).Methods("GET")
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/cafes", h.createCafe).Methods("POST")
	r.HandleFunc("/api/cafes", h.listCafes).Methods("GET")

	r.HandleFunc("/api/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu", h.listMenu).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations", h.listReservations).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the error taxonomy onto status codes: validation and
// malformed references are 400, a missing referenced menu item is 404,
// anything else is a 500 with the cause logged, never echoed.
func writeError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"detail": "validation failed",
			"fields": vErr.Fields,
		})
	case errors.Is(err, domain.ErrInvalidReference):
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid ID format"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Menu item not found"})
	default:
		log.Printf("[cafe-api] internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error"})
	}
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cafe API is running"})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "cafe-api",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) createCafe(w http.ResponseWriter, r *http.Request) {
	var cafe domain.Cafe
	if err := json.NewDecoder(r.Body).Decode(&cafe); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON format: " + err.Error()})
		return
	}
	id, err := h.Cafes.Create(r.Context(), &cafe)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handler) listCafes(w http.ResponseWriter, r *http.Request) {
	cafes, err := h.Cafes.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cafes)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON format: " + err.Error()})
		return
	}
	id, err := h.Menu.Create(r.Context(), &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON format: " + err.Error()})
		return
	}
	order, err := h.Orders.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":    order.ID,
		"total": order.Total,
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	qrCode, err := h.Orders.QRCode(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidReference) {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Order not found"})
			return
		}
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var res domain.Reservation
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON format: " + err.Error()})
		return
	}
	id, err := h.Reservations.Create(r.Context(), &res)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Reservations.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}
