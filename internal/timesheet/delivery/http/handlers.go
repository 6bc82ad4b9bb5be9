package http

import (
	"net/http"

	"daily-timesheet/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetView godoc
// @Summary     Get the timesheet view
// @Description Returns the last rendered meetings and tasks tables for the selected date.
// @Tags        Timesheet
// @Produce     json
// @Success     200 {object} viewResp
// @Router      /api/v1/timesheet [GET]
func (h *handler) GetView(c *gin.Context) {
	response.OK(c, h.newViewResp(h.board.Snapshot(), h.ctrl.State()))
}

// ChangeDate godoc
// @Summary     Select a date
// @Description Reloads the timesheet for a date: YYYY-MM-DD or a relative word such as "today" or "yesterday".
// @Tags        Timesheet
// @Accept      json
// @Produce     json
// @Param       body body changeDateReq true "Date"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request - invalid date"
// @Failure     401 {object} response.Resp "Unauthorized - signed out"
// @Failure     409 {object} response.Resp "Conflict - not active or superseded"
// @Failure     502 {object} response.Resp "Bad Gateway - calendar fetch failed"
// @Router      /api/v1/timesheet/date [PUT]
func (h *handler) ChangeDate(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processChangeDateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.ctrl.DateChanged(ctx, date); err != nil {
		h.l.Errorf(ctx, "ctrl.DateChanged: %v", err)
		status := h.mapError(err)
		if status == http.StatusInternalServerError {
			response.InternalError(c, err)
			return
		}
		response.ErrorWithStatus(c, status, err, nil)
		return
	}

	response.OK(c, h.newViewResp(h.board.Snapshot(), h.ctrl.State()))
}
