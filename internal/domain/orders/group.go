package orders

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-console/internal/models"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type LineItem struct {
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// LineTotal is price times quantity.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.PurchasePrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Order struct {
	OrderCode string          `json:"order_code"`
	SalonID   int64           `json:"salon_id"`
	SalonName string          `json:"salon_name"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	OrderDate string          `json:"order_date,omitempty"`
	Items     []LineItem      `json:"items"`

	placedAt time.Time
}

func (o Order) PlacedAt() (time.Time, bool) {
	return o.placedAt, !o.placedAt.IsZero()
}

type lineKey struct {
	productID int64
	price     string
}

// Group folds order-line rows into orders keyed by order code. Header
// fields come from the first row of each code. Lines repeating the same
// product at the same price are merged by summing quantities. Orders keep
// the order in which their code first appeared.
func Group(rows []models.OrderRow) []Order {
	index := make(map[string]int)
	out := []Order{}

	for _, r := range rows {
		i, ok := index[r.OrderCode]
		if !ok {
			i = len(out)
			index[r.OrderCode] = i
			out = append(out, Order{
				OrderCode: r.OrderCode,
				SalonID:   r.SalonID,
				SalonName: r.SalonName,
				Subtotal:  r.Subtotal,
				Tax:       r.Tax,
				Total:     r.Total,
				OrderDate: r.OrderDate,
				placedAt:  parseTimestamp(r.OrderDate),
			})
		}
		out[i].Items = append(out[i].Items, LineItem{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			Quantity:      r.Quantity,
			PurchasePrice: r.PurchasePrice,
		})
	}

	for i := range out {
		out[i].Items = mergeLines(out[i].Items)
	}
	return out
}

func mergeLines(items []LineItem) []LineItem {
	seen := make(map[lineKey]int, len(items))
	merged := make([]LineItem, 0, len(items))

	for _, it := range items {
		k := lineKey{productID: it.ProductID, price: it.PurchasePrice.String()}
		if j, ok := seen[k]; ok {
			merged[j].Quantity += it.Quantity
			continue
		}
		seen[k] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Sort orders newest first. Orders without a timestamp follow dated ones;
// among themselves they are ordered by code, descending.
func Sort(orders []Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		ta, okA := a.PlacedAt()
		tb, okB := b.PlacedAt()
		switch {
		case okA && okB:
			return ta.After(tb)
		case okA:
			return true
		case okB:
			return false
		default:
			return a.OrderCode > b.OrderCode
		}
	})
}

// SalonRef names a salon that has at least one order.
type SalonRef struct {
	SalonID   int64  `json:"salon_id"`
	SalonName string `json:"salon_name"`
}

// Salons lists the distinct salons in orders, in first-seen order.
func Salons(orders []Order) []SalonRef {
	seen := make(map[int64]struct{})
	var out []SalonRef
	for _, o := range orders {
		if _, ok := seen[o.SalonID]; ok {
			continue
		}
		seen[o.SalonID] = struct{}{}
		out = append(out, SalonRef{SalonID: o.SalonID, SalonName: o.SalonName})
	}
	return out
}
