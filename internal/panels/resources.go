package panels

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-console/internal/models"
)

// Backend is the subset of the salon API the panels use.
type Backend interface {
	ListSalonProducts(ctx context.Context, token string, salonID int64) ([]models.Product, error)
	CreateProduct(ctx context.Context, token string, p models.Product) error
	UpdateProduct(ctx context.Context, token string, id int64, p models.Product) error
	DeleteProduct(ctx context.Context, token string, id int64) error

	MyServices(ctx context.Context, token string) ([]models.Service, error)
	CreateService(ctx context.Context, token string, svc models.Service) error
	UpdateService(ctx context.Context, token string, id int64, svc models.Service) error
	RemoveService(ctx context.Context, token string, id int64) error

	ListUnavailability(ctx context.Context, token string) ([]models.UnavailabilitySlot, error)
	CreateUnavailability(ctx context.Context, token string, slot models.UnavailabilitySlot) error
	DeleteUnavailability(ctx context.Context, token string, slot models.UnavailabilitySlot) error
}

type (
	ProductPanel        = Panel[models.Product, ProductForm, int64]
	ServicePanel        = Panel[models.Service, ServiceForm, int64]
	UnavailabilityPanel = Panel[models.UnavailabilitySlot, UnavailabilityForm, SlotKey]
)

func idKey(id int64) string { return strconv.FormatInt(id, 10) }

// ==========================
// Products
// ==========================

type ProductForm struct {
	// SalonID defaults to the actor's salon.
	SalonID       int64           `json:"salon_id" validate:"gte=0"`
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" validate:"gt=0"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
	Category      string          `json:"category"`
	SKU           string          `json:"sku"`
}

func (f ProductForm) model(salonID int64) models.Product {
	if f.SalonID != 0 {
		salonID = f.SalonID
	}
	return models.Product{
		SalonID:       salonID,
		Name:          f.Name,
		Description:   f.Description,
		Price:         f.Price,
		StockQuantity: f.StockQuantity,
		Category:      f.Category,
		SKU:           f.SKU,
	}
}

type productStore struct{ api Backend }

func (s productStore) List(ctx context.Context, a Actor) ([]models.Product, error) {
	return s.api.ListSalonProducts(ctx, a.Token, a.SalonID)
}

func (s productStore) Create(ctx context.Context, a Actor, f ProductForm) error {
	return s.api.CreateProduct(ctx, a.Token, f.model(a.SalonID))
}

func (s productStore) Update(ctx context.Context, a Actor, id int64, f ProductForm) error {
	p := f.model(a.SalonID)
	p.ProductID = id
	return s.api.UpdateProduct(ctx, a.Token, id, p)
}

func (s productStore) Delete(ctx context.Context, a Actor, id int64) error {
	return s.api.DeleteProduct(ctx, a.Token, id)
}

func NewProductPanel(api Backend, auditor Auditor, log *zap.Logger) *ProductPanel {
	return New[models.Product, ProductForm, int64]("product", productStore{api}, idKey, auditor, log)
}

// ==========================
// Services
// ==========================

type ServiceForm struct {
	Name            string          `json:"name" validate:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" validate:"gt=0"`
	DurationMinutes int             `json:"duration_minutes" validate:"gte=0"`
	Category        string          `json:"category"`
}

func (f ServiceForm) model() models.Service {
	return models.Service{
		Name:            f.Name,
		Description:     f.Description,
		Price:           f.Price,
		DurationMinutes: f.DurationMinutes,
		Category:        f.Category,
	}
}

type serviceStore struct{ api Backend }

func (s serviceStore) List(ctx context.Context, a Actor) ([]models.Service, error) {
	return s.api.MyServices(ctx, a.Token)
}

func (s serviceStore) Create(ctx context.Context, a Actor, f ServiceForm) error {
	return s.api.CreateService(ctx, a.Token, f.model())
}

func (s serviceStore) Update(ctx context.Context, a Actor, id int64, f ServiceForm) error {
	svc := f.model()
	svc.ServiceID = id
	return s.api.UpdateService(ctx, a.Token, id, svc)
}

func (s serviceStore) Delete(ctx context.Context, a Actor, id int64) error {
	return s.api.RemoveService(ctx, a.Token, id)
}

func NewServicePanel(api Backend, auditor Auditor, log *zap.Logger) *ServicePanel {
	return New[models.Service, ServiceForm, int64]("service", serviceStore{api}, idKey, auditor, log)
}

// ==========================
// Unavailability
// ==========================

// SlotKey is how the backend identifies a recurring block. Two blocks with
// the same key cannot be told apart.
type SlotKey struct {
	Weekday   int    `json:"weekday" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"required,clock"`
}

func (k SlotKey) String() string {
	return fmt.Sprintf("%d|%s|%s", k.Weekday, k.StartTime, k.EndTime)
}

type UnavailabilityForm struct {
	Weekday             int    `json:"weekday" validate:"min=0,max=6"`
	StartTime           string `json:"start_time" validate:"required,clock"`
	EndTime             string `json:"end_time" validate:"required,clock"`
	SlotIntervalMinutes int    `json:"slot_interval_minutes" validate:"gte=0"`
}

type unavailabilityStore struct{ api Backend }

func (s unavailabilityStore) List(ctx context.Context, a Actor) ([]models.UnavailabilitySlot, error) {
	return s.api.ListUnavailability(ctx, a.Token)
}

func (s unavailabilityStore) Create(ctx context.Context, a Actor, f UnavailabilityForm) error {
	return s.api.CreateUnavailability(ctx, a.Token, models.UnavailabilitySlot{
		Weekday:             f.Weekday,
		StartTime:           f.StartTime,
		EndTime:             f.EndTime,
		SlotIntervalMinutes: f.SlotIntervalMinutes,
	})
}

func (unavailabilityStore) Update(context.Context, Actor, SlotKey, UnavailabilityForm) error {
	return ErrUnsupported
}

func (s unavailabilityStore) Delete(ctx context.Context, a Actor, k SlotKey) error {
	return s.api.DeleteUnavailability(ctx, a.Token, models.UnavailabilitySlot{
		Weekday:   k.Weekday,
		StartTime: k.StartTime,
		EndTime:   k.EndTime,
	})
}

func NewUnavailabilityPanel(api Backend, auditor Auditor, log *zap.Logger) *UnavailabilityPanel {
	return New[models.UnavailabilitySlot, UnavailabilityForm, SlotKey](
		"unavailability", unavailabilityStore{api}, SlotKey.String, auditor, log,
	)
}
