package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/panels"
)

// ProductHandler lists products of the salon in the path; mutations go to
// the caller's salon unless the form names one.
type ProductHandler struct {
	*PanelHandler[models.Product, panels.ProductForm, int64]
}

func NewProductHandler(panel *panels.ProductPanel) *ProductHandler {
	return &ProductHandler{NewPanelHandler(panel, PathID)}
}

func (h *ProductHandler) ListForSalon(c *gin.Context) {
	salonID, err := PathID(c)
	if err != nil {
		badParam(c, err)
		return
	}

	actor := actorFrom(c)
	actor.SalonID = salonID

	st, err := h.panel.List(c.Request.Context(), actor)
	writePanelList(c, st, err)
}
