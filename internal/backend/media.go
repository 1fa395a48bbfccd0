package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/remote"
)

func (a *API) SalonGallery(ctx context.Context, token string, salonID, employeeID int64, limit, offset int) (*models.GalleryPage, error) {
	q := url.Values{}
	q.Set("salon_id", strconv.FormatInt(salonID, 10))
	q.Set("employee_id", strconv.FormatInt(employeeID, 10))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var page models.GalleryPage
	if err := a.get(ctx, token, "/file/get-salon-gallery", q, "", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *API) ViewOrders(ctx context.Context, token string, query models.OrdersQuery) (*models.OrdersPage, error) {
	var page models.OrdersPage
	err := a.send(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   "/products/customer/view-orders",
		Body:   query,
		Token:  token,
	}, "", &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Analytics payloads are passed through untouched.
type Analytics map[string]any

func (a *API) Demographics(ctx context.Context, token string) (Analytics, error) {
	out := Analytics{}
	if err := a.get(ctx, token, "/admin/analytics/demographics", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) UserEngagement(ctx context.Context, token string) (Analytics, error) {
	out := Analytics{}
	if err := a.get(ctx, token, "/admin/analytics/user-engagement", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}
