package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/xid"

	"github.com/bp-predictor/bp-ui/auth"
	"github.com/bp-predictor/bp-ui/util"
)

const (
	sessionName = "session"
	tokenCookie = "session_token"
)

func ValidSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !currentSession(c).LoggedIn {
			nextURL := c.Request().URL
			if nextURL != nil && c.Request().Method == http.MethodGet {
				return c.Redirect(http.StatusTemporaryRedirect, fmt.Sprintf("/login?next=%s", url.QueryEscape(nextURL.String())))
			} else {
				// the browser must follow with a GET, not re-post the form to /login
				return c.Redirect(http.StatusSeeOther, "/login")
			}
		}
		return next(c)
	}
}

// currentSession rebuilds the login state from the session cookie.
// Anything missing or mismatched counts as logged out.
func currentSession(c echo.Context) auth.Session {
	sess, _ := session.Get(sessionName, c)
	if sess == nil {
		return auth.Session{}
	}
	cookie, err := c.Cookie(tokenCookie)
	if err != nil {
		return auth.Session{}
	}
	token, _ := sess.Values["session_token"].(string)
	username, _ := sess.Values["username"].(string)
	if token == "" || username == "" || token != cookie.Value {
		return auth.Session{}
	}
	return auth.Session{LoggedIn: true, Username: username}
}

// currentUser to get username of logged in user
func currentUser(c echo.Context) string {
	return currentSession(c).Username
}

// saveSession writes state back into the session cookie.
// Each login gets a fresh token; a logged out state clears both cookies.
func saveSession(c echo.Context, state auth.Session) error {
	sess, _ := session.Get(sessionName, c)
	if sess == nil {
		return errors.New("session middleware is not configured")
	}

	if state.LoggedIn {
		token := xid.New().String()
		sess.Values["username"] = state.Username
		sess.Values["session_token"] = token
		c.SetCookie(&http.Cookie{Name: tokenCookie, Value: token, Path: "/", HttpOnly: true, Secure: util.SecureCookie, SameSite: http.SameSiteLaxMode})
	} else {
		sess.Values["username"] = ""
		sess.Values["session_token"] = ""
		c.SetCookie(&http.Cookie{Name: tokenCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true, Secure: util.SecureCookie})
	}
	return sess.Save(c.Request(), c.Response())
}
