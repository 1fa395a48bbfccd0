package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-console/internal/models"
)

func row(code string, product int64, qty int, price string, date string) models.OrderRow {
	return models.OrderRow{
		OrderCode:     code,
		SalonID:       7,
		SalonName:     "Downtown",
		ProductID:     product,
		ProductName:   "Shampoo",
		Quantity:      qty,
		PurchasePrice: decimal.RequireFromString(price),
		Subtotal:      decimal.RequireFromString("45"),
		Tax:           decimal.RequireFromString("3.6"),
		Total:         decimal.RequireFromString("48.6"),
		OrderDate:     date,
	}
}

func TestGroup(t *testing.T) {
	t.Run("Same Product And Price Collapse", func(t *testing.T) {
		orders := Group([]models.OrderRow{
			row("A1", 10, 1, "15.00", "2025-06-01T10:00:00Z"),
			row("A1", 10, 2, "15", "2025-06-01T10:00:00Z"),
		})

		require.Len(t, orders, 1)
		require.Len(t, orders[0].Items, 1)
		assert.Equal(t, 3, orders[0].Items[0].Quantity)
		assert.True(t, decimal.NewFromInt(45).Equal(orders[0].Items[0].LineTotal()))
	})

	t.Run("Different Price Stays Separate", func(t *testing.T) {
		orders := Group([]models.OrderRow{
			row("A1", 10, 1, "15", ""),
			row("A1", 10, 1, "12.5", ""),
			row("A1", 11, 1, "15", ""),
		})

		require.Len(t, orders, 1)
		assert.Len(t, orders[0].Items, 3)
	})

	t.Run("Header From First Row", func(t *testing.T) {
		first := row("B2", 10, 1, "15", "2025-06-01")
		second := row("B2", 11, 1, "5", "2025-06-02")
		second.Total = decimal.NewFromInt(999)

		orders := Group([]models.OrderRow{first, second})

		require.Len(t, orders, 1)
		assert.True(t, first.Total.Equal(orders[0].Total))
		assert.Equal(t, "2025-06-01", orders[0].OrderDate)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, Group(nil))
	})
}

func TestSort(t *testing.T) {
	orders := Group([]models.OrderRow{
		row("C-001", 1, 1, "1", ""),
		row("C-002", 1, 1, "1", "2025-05-01T09:00:00Z"),
		row("C-003", 1, 1, "1", "garbage"),
		row("C-004", 1, 1, "1", "2025-06-01 09:00:00"),
	})

	Sort(orders)

	codes := make([]string, 0, len(orders))
	for _, o := range orders {
		codes = append(codes, o.OrderCode)
	}
	assert.Equal(t, []string{"C-004", "C-002", "C-003", "C-001"}, codes)
}

func TestSalons(t *testing.T) {
	a := row("A", 1, 1, "1", "")
	b := row("B", 1, 1, "1", "")
	b.SalonID, b.SalonName = 8, "Uptown"
	c := row("C", 1, 1, "1", "")

	got := Salons(Group([]models.OrderRow{a, b, c}))

	assert.Equal(t, []SalonRef{{SalonID: 7, SalonName: "Downtown"}, {SalonID: 8, SalonName: "Uptown"}}, got)
}
