package validation

import (
	"fmt"
	"time"

	"cafe-backend/internal/domain"
)

// Each Validate* call runs before anything touches the store, so a bad
// request never leaves a partial write behind. Violations are collected
// across all fields rather than failing on the first one.

type collector struct {
	fields []domain.FieldError
}

func (c *collector) add(field, message string) {
	c.fields = append(c.fields, domain.FieldError{Field: field, Message: message})
}

func (c *collector) result() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: c.fields}
}

func ValidateCafe(cafe *domain.Cafe) error {
	var c collector
	if cafe.Name == "" {
		c.add("name", "cafe name is required")
	}
	if cafe.Description == "" {
		c.add("description", "description is required")
	}
	if cafe.Place == "" {
		c.add("place", "place is required")
	}
	return c.result()
}

func ValidateMenuItem(item *domain.MenuItem) error {
	var c collector
	if item.Name == "" {
		c.add("name", "item name is required")
	}
	if item.Price < 0 {
		c.add("price", "price must not be negative")
	}
	return c.result()
}

func ValidateOrderRequest(req *domain.OrderRequest) error {
	var c collector
	if req.CustomerName == "" {
		c.add("customer_name", "customer name is required")
	}
	for i, item := range req.Items {
		if item.MenuItemID == "" {
			c.add(fmt.Sprintf("items[%d].menu_item_id", i), "menu item id is required")
		}
		if item.Quantity < 1 {
			c.add(fmt.Sprintf("items[%d].quantity", i), "quantity must be at least 1")
		}
	}
	return c.result()
}

func ValidateReservation(res *domain.Reservation) error {
	var c collector
	if res.Name == "" {
		c.add("name", "guest name is required")
	}
	if res.PartySize < 1 {
		c.add("party_size", "party size must be at least 1")
	}
	if res.DatetimeISO == "" {
		c.add("datetime_iso", "reservation date/time is required")
	} else if !isISODateTime(res.DatetimeISO) {
		c.add("datetime_iso", "must be an ISO-8601 date/time")
	}
	return c.result()
}

func isISODateTime(value string) bool {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
