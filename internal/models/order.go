package models

import "github.com/shopspring/decimal"

// OrderRow is one product line of one order, as the backend emits it.
type OrderRow struct {
	OrderCode     string          `json:"order_code"`
	SalonID       int64           `json:"salon_id"`
	SalonName     string          `json:"salon_name"`
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	OrderDate     string          `json:"order_date"`
}

type OrdersPage struct {
	Orders     []OrderRow `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

type OrdersQuery struct {
	SalonID  *int64  `json:"salon_id,omitempty"`
	SalonIDs []int64 `json:"salon_ids,omitempty"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
}
