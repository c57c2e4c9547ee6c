package domain

import "time"

type Cafe struct {
	ID          string `json:"id,omitempty" bson:"-"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Place       string `json:"place" bson:"place"`
	Phone       string `json:"phone,omitempty" bson:"phone,omitempty"`
	OpenHours   string `json:"open_hours,omitempty" bson:"open_hours,omitempty"`
}

type MenuItem struct {
	ID          string  `json:"id,omitempty" bson:"-"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category,omitempty" bson:"category,omitempty"`
	ImageURL    string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// OrderItem is embedded in an order, never stored on its own. Price is the
// unit price snapshotted at order creation; it stays fixed even if the
// referenced menu item is repriced later.
type OrderItem struct {
	MenuItemID string  `json:"menu_item_id" bson:"menu_item_id"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	Price      float64 `json:"price" bson:"price"`
}

// OrderRequest is the client-submitted shape: item references without
// prices. The pricing engine turns it into a full Order record.
type OrderRequest struct {
	CustomerName string      `json:"customer_name"`
	Contact      string      `json:"contact,omitempty"`
	Items        []OrderItem `json:"items"`
	Note         string      `json:"note,omitempty"`
}

type Order struct {
	ID           string      `json:"id,omitempty" bson:"-"`
	CustomerName string      `json:"customer_name" bson:"customer_name"`
	Contact      string      `json:"contact,omitempty" bson:"contact,omitempty"`
	Items        []OrderItem `json:"items" bson:"items"`
	Note         string      `json:"note,omitempty" bson:"note,omitempty"`
	Total        float64     `json:"total" bson:"total"`
	Status       string      `json:"status" bson:"status"`
}

type Reservation struct {
	ID          string `json:"id,omitempty" bson:"-"`
	Name        string `json:"name" bson:"name"`
	Contact     string `json:"contact,omitempty" bson:"contact,omitempty"`
	PartySize   int    `json:"party_size" bson:"party_size"`
	DatetimeISO string `json:"datetime_iso" bson:"datetime_iso"`
	Notes       string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}
