package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/httperr"
	ucDashboard "github.com/BruksfildServices01/salon-console/internal/usecase/dashboard"
)

type AdminHandler struct {
	loadDashboard *ucDashboard.LoadAdmin
}

func NewAdminHandler(loadDashboard *ucDashboard.LoadAdmin) *AdminHandler {
	return &AdminHandler{loadDashboard: loadDashboard}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.loadDashboard.Execute(c.Request.Context(), actorFrom(c).Token)
	if err != nil {
		httperr.FromRemote(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}
