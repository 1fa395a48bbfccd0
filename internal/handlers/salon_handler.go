package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/httpresp"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

type StylistLister interface {
	ListStylists(ctx context.Context, token string, salonID int64) ([]models.Stylist, error)
}

type SalonHandler struct {
	api StylistLister
}

func NewSalonHandler(api StylistLister) *SalonHandler {
	return &SalonHandler{api: api}
}

func (h *SalonHandler) Stylists(c *gin.Context) {
	salonID, err := PathID(c)
	if err != nil {
		badParam(c, err)
		return
	}

	stylists, err := h.api.ListStylists(c.Request.Context(), actorFrom(c).Token, salonID)
	if err != nil {
		httperr.FromRemote(c, err)
		return
	}
	httpresp.List(c, stylists)
}
