package http

import (
	"fmt"
	"time"

	"daily-timesheet/internal/timesheet"

	"github.com/gin-gonic/gin"
)

// processChangeDateReq binds the body and resolves the date in the configured zone.
func (h *handler) processChangeDateReq(c *gin.Context) (time.Time, error) {
	var req changeDateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return time.Time{}, err
	}
	if err := req.validate(); err != nil {
		return time.Time{}, err
	}

	date, err := h.dateMath.ParseDate(req.Date, h.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", timesheet.ErrInvalidDate, err)
	}
	return date, nil
}
