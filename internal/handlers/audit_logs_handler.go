package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/infra/repository"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogLister interface {
	List(ctx context.Context, f repository.AuditFilter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	repo AuditLogLister
}

// NewAuditLogsHandler takes a nil repo when no database is configured;
// List then answers 503.
func NewAuditLogsHandler(repo AuditLogLister) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	if h.repo == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "audit_unavailable", "audit log is not configured")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Filters (always scoped to the caller's salon)
	// --------------------------------------------------

	f := repository.AuditFilter{
		SalonID: actorFrom(c).SalonID,
		Action:  c.Query("action"),
		Entity:  c.Query("entity"),
		Limit:   limit,
		Offset:  (page - 1) * limit,
	}

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		f.To = &to
	}

	logs, total, err := h.repo.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "could not list audit logs")
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
