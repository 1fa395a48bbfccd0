package orders

import (
	"context"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-console/internal/domain/orders"
	"github.com/BruksfildServices01/salon-console/internal/logger"
	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/state"
)

const PageSize = 10

type Source interface {
	ViewOrders(ctx context.Context, token string, q models.OrdersQuery) (*models.OrdersPage, error)
}

type History struct {
	Orders           []orders.Order    `json:"orders"`
	Pagination       models.Pagination `json:"pagination"`
	SalonsWithOrders []orders.SalonRef `json:"salons_with_orders"`
}

type LoadHistory struct {
	src Source
	acc state.Accumulator
	log *zap.Logger
}

func NewLoadHistory(src Source, acc state.Accumulator, log *zap.Logger) *LoadHistory {
	if acc == nil {
		acc = state.NewMemoryAccumulator()
	}
	return &LoadHistory{src: src, acc: acc, log: logger.OrNop(log)}
}

// Execute loads one page of order rows, groups and sorts them, and records
// the salons seen so far for scope. The salon list only ever grows, so
// filtering by one salon does not hide the others.
func (uc *LoadHistory) Execute(ctx context.Context, token, scope string, salonID *int64, page int) (*History, error) {
	if page < 1 {
		page = 1
	}

	resp, err := uc.src.ViewOrders(ctx, token, models.OrdersQuery{
		SalonID: salonID,
		Limit:   PageSize,
		Offset:  (page - 1) * PageSize,
	})
	if err != nil {
		uc.log.Warn("order history fetch failed", zap.Int("page", page), zap.Error(err))
		return nil, err
	}

	grouped := orders.Group(resp.Orders)
	orders.Sort(grouped)

	return &History{
		Orders:           grouped,
		Pagination:       resp.Pagination,
		SalonsWithOrders: uc.accumulate(ctx, scope, orders.Salons(grouped)),
	}, nil
}

func (uc *LoadHistory) accumulate(ctx context.Context, scope string, seen []orders.SalonRef) []orders.SalonRef {
	for _, s := range seen {
		if _, err := uc.acc.Add(ctx, scope, strconv.FormatInt(s.SalonID, 10), s.SalonName); err != nil {
			uc.log.Warn("salon accumulator unavailable", zap.Error(err))
			return seen
		}
	}

	entries, err := uc.acc.Entries(ctx, scope)
	if err != nil {
		uc.log.Warn("salon accumulator unavailable", zap.Error(err))
		return seen
	}

	out := make([]orders.SalonRef, 0, len(entries))
	for k, name := range entries {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, orders.SalonRef{SalonID: id, SalonName: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SalonName != out[j].SalonName {
			return out[i].SalonName < out[j].SalonName
		}
		return out[i].SalonID < out[j].SalonID
	})
	return out
}
