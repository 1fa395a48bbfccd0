package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/httperr"
	ucGallery "github.com/BruksfildServices01/salon-console/internal/usecase/gallery"
)

type GalleryHandler struct {
	loadPage *ucGallery.LoadPage
}

func NewGalleryHandler(loadPage *ucGallery.LoadPage) *GalleryHandler {
	return &GalleryHandler{loadPage: loadPage}
}

// Get serves one page of before/after pairs for a stylist. salon_id
// defaults to the caller's salon.
func (h *GalleryHandler) Get(c *gin.Context) {
	actor := actorFrom(c)

	salonID, err := queryInt64(c, "salon_id", actor.SalonID)
	if err != nil {
		badParam(c, err)
		return
	}
	employeeID, err := queryInt64(c, "employee_id", 0)
	if err != nil || employeeID == 0 {
		httperr.BadRequest(c, "invalid_employee_id", "employee_id is required")
		return
	}

	page, err := h.loadPage.Execute(c.Request.Context(), actor.Token, salonID, employeeID, queryPage(c))
	if err != nil {
		httperr.FromRemote(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
