package http

import (
	"context"
	"time"

	"daily-timesheet/internal/session"
	"daily-timesheet/internal/timesheet/controller"
	"daily-timesheet/pkg/datemath"
	"daily-timesheet/pkg/log"

	"github.com/gin-gonic/gin"
)

// Controller is the part of the timesheet controller the HTTP layer drives.
type Controller interface {
	DateChanged(ctx context.Context, date time.Time) error
	State() controller.State
}

// Handler is the public interface for the timesheet HTTP delivery layer.
type Handler interface {
	GetView(c *gin.Context)
	ChangeDate(c *gin.Context)
	Login(c *gin.Context)
	Callback(c *gin.Context)
	Logout(c *gin.Context)
	Status(c *gin.Context)
}

var _ Handler = (*handler)(nil)

type handler struct {
	l        log.Logger
	ctrl     Controller
	board    *Board
	session  session.Provider
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new HTTP handler for the timesheet domain.
func New(l log.Logger, ctrl Controller, board *Board, sess session.Provider, dateMath *datemath.Parser) *handler {
	return &handler{
		l:        l,
		ctrl:     ctrl,
		board:    board,
		session:  sess,
		dateMath: dateMath,
		now:      time.Now,
	}
}
