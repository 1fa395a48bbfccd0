package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-console/internal/dto"
	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/middleware"
	"github.com/BruksfildServices01/salon-console/internal/workspace"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	registry *workspace.Registry
}

func NewScheduleHandler(registry *workspace.Registry) *ScheduleHandler {
	return &ScheduleHandler{registry: registry}
}

type navigateResponse struct {
	Moved bool `json:"moved"`
	workspace.Snapshot
}

type viewRequest struct {
	View schedule.View `json:"view"`
}

// workspaceFor keys state on the login session, so cached pages are only
// served back to the token that loaded them.
func (h *ScheduleHandler) workspaceFor(c *gin.Context) *workspace.Workspace {
	return h.registry.Get(c.GetString(middleware.ContextSession))
}

// Get is the page load: today's day view, freshly fetched.
func (h *ScheduleHandler) Get(c *gin.Context) {
	snap := h.workspaceFor(c).Open(c.Request.Context(), c.GetString(middleware.ContextToken))
	c.JSON(http.StatusOK, snap)
}

func (h *ScheduleHandler) SetView(c *gin.Context) {
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.View.Valid() {
		httperr.BadRequest(c, "invalid_view", `view must be "day" or "week"`)
		return
	}

	snap := h.workspaceFor(c).SwitchView(c.Request.Context(), c.GetString(middleware.ContextToken), req.View)
	c.JSON(http.StatusOK, snap)
}

func (h *ScheduleHandler) Next(c *gin.Context) {
	h.navigate(c, workspace.Next)
}

func (h *ScheduleHandler) Previous(c *gin.Context) {
	h.navigate(c, workspace.Previous)
}

// navigate never fails: a rejected step answers with moved=false and the
// unchanged page.
func (h *ScheduleHandler) navigate(c *gin.Context, dir workspace.Direction) {
	w := h.workspaceFor(c)
	if !w.Loaded() {
		w.Refresh(c.Request.Context(), c.GetString(middleware.ContextToken))
	}

	snap, moved := w.Navigate(dir)
	c.JSON(http.StatusOK, navigateResponse{Moved: moved, Snapshot: snap})
}

func (h *ScheduleHandler) Cancelled(c *gin.Context) {
	w := h.workspaceFor(c)
	var snap workspace.Snapshot
	if w.Loaded() {
		snap = w.Snapshot()
	} else {
		snap = w.Refresh(c.Request.Context(), c.GetString(middleware.ContextToken))
	}

	resp := gin.H{
		"view":         snap.View,
		"appointments": dto.AppointmentList(snap.Cancelled),
		"total":        len(snap.Cancelled),
	}
	if snap.Error != "" {
		resp["error"] = snap.Error
	}
	c.JSON(http.StatusOK, resp)
}
