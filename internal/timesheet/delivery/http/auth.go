package http

import (
	"net/http"

	"daily-timesheet/internal/session"
	"daily-timesheet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	stateCookie       = "oauth_state"
	stateCookieMaxAge = 600 // seconds
)

// authCodeURLer is implemented by sessions that sign in through a consent page.
type authCodeURLer interface {
	AuthCodeURL(state string) string
}

// Login godoc
// @Summary     Start Google sign-in
// @Description Redirects to the Google consent page.
// @Tags        Auth
// @Success     302
// @Failure     409 {object} response.Resp "Conflict - static credentials"
// @Router      /auth/login [GET]
func (h *handler) Login(c *gin.Context) {
	oauth, ok := h.session.(authCodeURLer)
	if !ok {
		response.ErrorWithStatus(c, h.mapError(session.ErrStaticSession), session.ErrStaticSession, nil)
		return
	}

	state := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, stateCookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, oauth.AuthCodeURL(state))
}

// Callback godoc
// @Summary     Finish Google sign-in
// @Description Exchanges the authorization code and activates the timesheet.
// @Tags        Auth
// @Produce     json
// @Param       state query string true "OAuth state"
// @Param       code  query string true "Authorization code"
// @Success     200 {object} authStatusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /auth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	expected, err := c.Cookie(stateCookie)
	if err != nil || expected == "" || c.Query("state") != expected {
		response.Error(c, errInvalidState, nil)
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	if err := h.session.SignIn(ctx, c.Query("code")); err != nil {
		h.l.Errorf(ctx, "session.SignIn: %v", err)
		response.ErrorWithStatus(c, h.mapError(err), err, nil)
		return
	}

	response.OK(c, authStatusResp{Authenticated: h.session.IsAuthenticated()})
}

// Logout godoc
// @Summary     Sign out
// @Description Forgets the Google token and clears the timesheet.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} authStatusResp
// @Failure     409 {object} response.Resp "Conflict - static credentials"
// @Router      /auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.session.SignOut(ctx); err != nil {
		h.l.Errorf(ctx, "session.SignOut: %v", err)
		response.ErrorWithStatus(c, h.mapError(err), err, nil)
		return
	}

	response.OK(c, authStatusResp{Authenticated: false})
}

// Status godoc
// @Summary     Sign-in status
// @Tags        Auth
// @Produce     json
// @Success     200 {object} authStatusResp
// @Router      /auth/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, authStatusResp{Authenticated: h.session.IsAuthenticated()})
}
