package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/httperr"
	"github.com/BruksfildServices01/salon-console/internal/middleware"
	"github.com/BruksfildServices01/salon-console/internal/panels"
)

const HeaderConfirm = "X-Confirm"

func actorFrom(c *gin.Context) panels.Actor {
	return panels.Actor{
		Token:   c.GetString(middleware.ContextToken),
		ID:      c.GetString(middleware.ContextUserID),
		SalonID: c.GetInt64(middleware.ContextSalonID),
	}
}

// confirmFrom treats "X-Confirm: true" as the user's answer to the
// confirmation prompt.
func confirmFrom(c *gin.Context) panels.Confirmer {
	answer := strings.EqualFold(c.GetHeader(HeaderConfirm), "true")
	return panels.ConfirmFunc(func(context.Context, string) bool {
		return answer
	})
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, httperr.ErrBusiness("invalid_" + name)
	}
	return id, nil
}

// queryInt64 reads an optional positive integer; def is used when absent.
func queryInt64(c *gin.Context, name string, def int64) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, httperr.ErrBusiness("invalid_" + name)
	}
	return v, nil
}

func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// badParam answers 400 with the business code carried by err, if any.
func badParam(c *gin.Context, err error) {
	code, message := "invalid_request", "invalid request parameter"
	if be, ok := httperr.AsBusiness(err); ok {
		code = be.Code
		if be.Message != "" {
			message = be.Message
		}
	}
	httperr.BadRequest(c, code, message)
}
