package gallery

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-console/internal/domain/gallery"
	"github.com/BruksfildServices01/salon-console/internal/logger"
	"github.com/BruksfildServices01/salon-console/internal/media"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

type Source interface {
	SalonGallery(ctx context.Context, token string, salonID, employeeID int64, limit, offset int) (*models.GalleryPage, error)
}

type Page struct {
	SalonID    int64             `json:"salon_id"`
	EmployeeID int64             `json:"employee_id"`
	Pairs      []gallery.Pair    `json:"pairs"`
	Pagination models.Pagination `json:"pagination"`
}

type LoadPage struct {
	src      Source
	resolver media.Resolver
	log      *zap.Logger
}

func NewLoadPage(src Source, resolver media.Resolver, log *zap.Logger) *LoadPage {
	if resolver == nil {
		resolver = media.PassThrough{}
	}
	return &LoadPage{src: src, resolver: resolver, log: logger.OrNop(log)}
}

// Execute fetches one page of before/after photos for a stylist and pairs
// them. Pagination is the backend's, untouched.
func (uc *LoadPage) Execute(ctx context.Context, token string, salonID, employeeID int64, page int) (*Page, error) {
	resp, err := uc.src.SalonGallery(ctx, token, salonID, employeeID, gallery.PageSize, gallery.Offset(page))
	if err != nil {
		uc.log.Warn("gallery fetch failed",
			zap.Int64("salon_id", salonID),
			zap.Int64("employee_id", employeeID),
			zap.Int("page", page),
			zap.Error(err),
		)
		return nil, err
	}

	before := uc.resolve(ctx, resp.Before)
	after := uc.resolve(ctx, resp.After)

	pairs := gallery.Zip(before, after)
	gallery.SortByDateDesc(pairs)

	return &Page{
		SalonID:    salonID,
		EmployeeID: employeeID,
		Pairs:      pairs,
		Pagination: resp.Pagination,
	}, nil
}

func (uc *LoadPage) resolve(ctx context.Context, photos []models.GalleryPhoto) []models.GalleryPhoto {
	out := make([]models.GalleryPhoto, len(photos))
	for i, p := range photos {
		p.PhotoURL = uc.resolver.Resolve(ctx, p.PhotoURL)
		out[i] = p
	}
	return out
}
