package models

import "github.com/shopspring/decimal"

type Product struct {
	ProductID     int64           `json:"product_id"`
	SalonID       int64           `json:"salon_id,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Category      string          `json:"category"`
	SKU           string          `json:"sku,omitempty"`
}

type Service struct {
	ServiceID       int64           `json:"service_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	Category        string          `json:"category"`
}

// UnavailabilitySlot is a recurring weekly block. Weekday 0 is Sunday.
// The backend identifies it by (weekday, start_time, end_time).
type UnavailabilitySlot struct {
	Weekday             int    `json:"weekday"`
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	SlotIntervalMinutes int    `json:"slot_interval_minutes,omitempty"`
}

type Salon struct {
	SalonID int64  `json:"salon_id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status,omitempty"`
}

type Stylist struct {
	EmployeeID int64  `json:"employee_id"`
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
}
