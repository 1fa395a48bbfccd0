package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/remote"
)

// --------------------------------------------------
// Salons / stylists
// --------------------------------------------------

func (a *API) ListStylists(ctx context.Context, token string, salonID int64) ([]models.Stylist, error) {
	var stylists []models.Stylist
	path := fmt.Sprintf("/salons/%d/stylists", salonID)
	if err := a.get(ctx, token, path, nil, "stylists", &stylists); err != nil {
		return nil, err
	}
	return stylists, nil
}

func (a *API) BrowseSalons(ctx context.Context, token, status string) ([]models.Salon, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var salons []models.Salon
	if err := a.get(ctx, token, "/salons/browse", q, "salons", &salons); err != nil {
		return nil, err
	}
	return salons, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (a *API) MyServices(ctx context.Context, token string) ([]models.Service, error) {
	var services []models.Service
	if err := a.get(ctx, token, "/salons/stylist/myServices", nil, "services", &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (a *API) CreateService(ctx context.Context, token string, svc models.Service) error {
	return a.send(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   "/salons/stylist/createService",
		Body:   svc,
		Token:  token,
	}, "", nil)
}

func (a *API) UpdateService(ctx context.Context, token string, id int64, svc models.Service) error {
	return a.send(ctx, remote.Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/salons/stylist/updateService/%d", id),
		Body:   svc,
		Token:  token,
	}, "", nil)
}

func (a *API) RemoveService(ctx context.Context, token string, id int64) error {
	return a.send(ctx, remote.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/salons/stylist/removeService/%d", id),
		Token:  token,
	}, "", nil)
}

// --------------------------------------------------
// Products
// --------------------------------------------------

func (a *API) ListSalonProducts(ctx context.Context, token string, salonID int64) ([]models.Product, error) {
	var products []models.Product
	path := fmt.Sprintf("/products/%d", salonID)
	if err := a.get(ctx, token, path, nil, "products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (a *API) CreateProduct(ctx context.Context, token string, p models.Product) error {
	return a.send(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   "/products",
		Body:   p,
		Token:  token,
	}, "", nil)
}

func (a *API) UpdateProduct(ctx context.Context, token string, id int64, p models.Product) error {
	return a.send(ctx, remote.Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/products/%d", id),
		Body:   p,
		Token:  token,
	}, "", nil)
}

func (a *API) DeleteProduct(ctx context.Context, token string, id int64) error {
	return a.send(ctx, remote.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/products/%d", id),
		Token:  token,
	}, "", nil)
}
