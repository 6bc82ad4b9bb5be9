package http

import (
	"daily-timesheet/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the timesheet routes under rg (/api/v1/timesheet).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", mw.RateLimit(), h.GetView)
	rg.PUT("/date", mw.RateLimit(), h.ChangeDate)
}

// RegisterAuthRoutes maps the sign-in routes under rg (/auth).
func RegisterAuthRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/login", mw.RateLimit(), h.Login)
	rg.GET("/callback", mw.RateLimit(), h.Callback)
	rg.POST("/logout", mw.RateLimit(), h.Logout)
	rg.GET("/status", h.Status)
}
