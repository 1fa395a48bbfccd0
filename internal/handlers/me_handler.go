package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-console/internal/logger"
	"github.com/BruksfildServices01/salon-console/internal/middleware"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

type SalonResolver interface {
	StylistSalon(ctx context.Context, token string) (*models.Salon, error)
}

type MeHandler struct {
	salons SalonResolver
	log    *zap.Logger
}

func NewMeHandler(salons SalonResolver, log *zap.Logger) *MeHandler {
	return &MeHandler{salons: salons, log: logger.OrNop(log)}
}

// GetMe echoes the caller's identity and, for stylists, their salon. A
// failed salon lookup is reported but does not fail the request.
func (h *MeHandler) GetMe(c *gin.Context) {
	actor := actorFrom(c)
	role := c.GetString(middleware.ContextUserRole)

	resp := gin.H{
		"user": gin.H{
			"id":       actor.ID,
			"role":     role,
			"salon_id": actor.SalonID,
		},
	}

	if role == middleware.RoleStylist {
		salon, err := h.salons.StylistSalon(c.Request.Context(), actor.Token)
		if err != nil {
			h.log.Warn("salon lookup failed", zap.String("user_id", actor.ID), zap.Error(err))
			resp["salon_error"] = "salon unavailable"
		} else {
			resp["salon"] = salon
		}
	}

	c.JSON(http.StatusOK, resp)
}
