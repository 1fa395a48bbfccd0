package backend

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/remote"
)

const DateKeyLayout = "01-02-2006"

func (a *API) StylistSalon(ctx context.Context, token string) (*models.Salon, error) {
	var salon models.Salon
	if err := a.get(ctx, token, "/user/stylist/getSalon", nil, "salon", &salon); err != nil {
		return nil, err
	}
	return &salon, nil
}

// WeeklySchedule fetches the per-date schedule for [start, end], both
// inclusive.
func (a *API) WeeklySchedule(ctx context.Context, token string, start, end time.Time) (models.Schedule, error) {
	q := url.Values{}
	q.Set("start_date", start.Format(DateKeyLayout))
	q.Set("end_date", end.Format(DateKeyLayout))

	schedule := models.Schedule{}
	if err := a.get(ctx, token, "/user/stylist/weeklySchedule", q, "schedule", &schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (a *API) ListUnavailability(ctx context.Context, token string) ([]models.UnavailabilitySlot, error) {
	var slots []models.UnavailabilitySlot
	if err := a.get(ctx, token, "/unavailability", nil, "unavailability", &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (a *API) CreateUnavailability(ctx context.Context, token string, slot models.UnavailabilitySlot) error {
	return a.send(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   "/unavailability",
		Body:   slot,
		Token:  token,
	}, "", nil)
}

// DeleteUnavailability identifies the block by its field values; the
// backend has no surrogate id for it.
func (a *API) DeleteUnavailability(ctx context.Context, token string, slot models.UnavailabilitySlot) error {
	return a.send(ctx, remote.Request{
		Method: http.MethodDelete,
		Path:   "/unavailability",
		Body:   slot,
		Token:  token,
	}, "", nil)
}
