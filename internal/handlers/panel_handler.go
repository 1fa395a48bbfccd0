package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/panels"
)

type panelFailure[T any] struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	State   panels.State[T]   `json:"state"`
}

// writePanelError maps a panel failure to a status and echoes the panel
// state so the modal can show the message.
func writePanelError[T any](c *gin.Context, state panels.State[T], err error) {
	var ve *panels.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, panelFailure[T]{
			Code: "validation_failed", Message: ve.Error(), Fields: ve.Fields, State: state,
		})
	case errors.Is(err, panels.ErrDuplicateKey):
		c.JSON(http.StatusConflict, panelFailure[T]{
			Code: "duplicate_key", Message: err.Error(), State: state,
		})
	case errors.Is(err, panels.ErrNotConfirmed):
		httperr.Write(c, http.StatusPreconditionRequired, "confirmation_required",
			"send "+HeaderConfirm+": true to confirm")
	case errors.Is(err, panels.ErrUnsupported):
		httperr.Write(c, http.StatusMethodNotAllowed, "unsupported", err.Error())
	default:
		httperr.FromRemote(c, err)
	}
}

func writePanelList[T any](c *gin.Context, state panels.State[T], err error) {
	status := http.StatusOK
	if err != nil {
		status, _, _ = httperr.Classify(err)
	}
	c.JSON(status, state)
}

// ======================================================
// GENERIC PANEL HANDLER
// ======================================================

type PanelHandler[T, F any, ID comparable] struct {
	panel   *panels.Panel[T, F, ID]
	parseID func(c *gin.Context) (ID, error)
}

func NewPanelHandler[T, F any, ID comparable](
	panel *panels.Panel[T, F, ID],
	parseID func(c *gin.Context) (ID, error),
) *PanelHandler[T, F, ID] {
	return &PanelHandler[T, F, ID]{panel: panel, parseID: parseID}
}

func (h *PanelHandler[T, F, ID]) List(c *gin.Context) {
	st, err := h.panel.List(c.Request.Context(), actorFrom(c))
	writePanelList(c, st, err)
}

func (h *PanelHandler[T, F, ID]) Create(c *gin.Context) {
	var form F
	if err := c.ShouldBindJSON(&form); err != nil {
		httperr.BadRequest(c, "invalid_body", "request body is not valid JSON")
		return
	}

	st, err := h.panel.Create(c.Request.Context(), actorFrom(c), form)
	if err != nil {
		writePanelError(c, st, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

func (h *PanelHandler[T, F, ID]) Update(c *gin.Context) {
	id, err := h.parseID(c)
	if err != nil {
		badParam(c, err)
		return
	}

	var form F
	if err := c.ShouldBindJSON(&form); err != nil {
		httperr.BadRequest(c, "invalid_body", "request body is not valid JSON")
		return
	}

	st, err := h.panel.Update(c.Request.Context(), actorFrom(c), id, form)
	if err != nil {
		writePanelError(c, st, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *PanelHandler[T, F, ID]) Delete(c *gin.Context) {
	id, err := h.parseID(c)
	if err != nil {
		badParam(c, err)
		return
	}

	st, err := h.panel.Delete(c.Request.Context(), actorFrom(c), id, confirmFrom(c))
	if err != nil {
		writePanelError(c, st, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func PathID(c *gin.Context) (int64, error) {
	return parseIDParam(c, "id")
}

// SlotFromBody reads the (weekday, start_time, end_time) triple that
// identifies a recurring block.
func SlotFromBody(c *gin.Context) (panels.SlotKey, error) {
	var key panels.SlotKey
	if err := c.ShouldBindJSON(&key); err != nil {
		return key, httperr.ErrBusiness("invalid_body")
	}
	if err := panels.Validate(key); err != nil {
		return key, httperr.Business("invalid_slot", err.Error())
	}
	return key, nil
}
