package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/httperr"
	ucOrders "github.com/BruksfildServices01/salon-console/internal/usecase/orders"
)

type OrdersHandler struct {
	loadHistory *ucOrders.LoadHistory
}

func NewOrdersHandler(loadHistory *ucOrders.LoadHistory) *OrdersHandler {
	return &OrdersHandler{loadHistory: loadHistory}
}

func (h *OrdersHandler) List(c *gin.Context) {
	actor := actorFrom(c)

	var salonID *int64
	if c.Query("salon_id") != "" {
		id, err := queryInt64(c, "salon_id", 0)
		if err != nil {
			badParam(c, err)
			return
		}
		salonID = &id
	}

	history, err := h.loadHistory.Execute(c.Request.Context(), actor.Token, actor.ID, salonID, queryPage(c))
	if err != nil {
		httperr.FromRemote(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
