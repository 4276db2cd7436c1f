package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/bp-predictor/bp-ui/auth"
)

type jsonHTTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func loginPageData(mode string) map[string]interface{} {
	if mode != "signup" {
		mode = "login"
	}
	return map[string]interface{}{
		"mode":     mode,
		"next":     "",
		"username": "",
		"error":    "",
		"warning":  "",
		"success":  "",
	}
}

// LoginPage handler
func LoginPage() echo.HandlerFunc {
	return func(c echo.Context) error {
		if currentSession(c).LoggedIn {
			return c.Redirect(http.StatusTemporaryRedirect, "/")
		}
		data := loginPageData(c.QueryParam("mode"))
		data["next"] = c.QueryParam("next")
		return c.Render(http.StatusOK, "login.html", data)
	}
}

// Login for signing in handler
func Login(gate *auth.Gate) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := c.FormValue("username")
		password := c.FormValue("password")
		nextURL := c.FormValue("next")

		data := loginPageData("login")
		data["username"] = username
		data["next"] = nextURL

		state := currentSession(c)
		err := gate.Login(&state, username, password)
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			log.Warnf("Login attempt for unknown user %s", username)
			data["error"] = "User not found. Please sign up first."
			return c.Render(http.StatusUnauthorized, "login.html", data)
		case errors.Is(err, auth.ErrIncorrectPassword):
			log.Warnf("Incorrect password for user %s", username)
			data["error"] = "Incorrect password."
			return c.Render(http.StatusUnauthorized, "login.html", data)
		case err != nil:
			log.Error("Cannot log in: ", err)
			data["error"] = "Cannot log in right now. Please try again."
			return c.Render(http.StatusInternalServerError, "login.html", data)
		}

		if err := saveSession(c, state); err != nil {
			log.Error("Cannot save session: ", err)
			data["error"] = "Cannot log in right now. Please try again."
			return c.Render(http.StatusInternalServerError, "login.html", data)
		}

		log.Infof("Logged in successfully user %s", username)
		return c.Redirect(http.StatusSeeOther, safeNextURL(nextURL))
	}
}

// Signup for creating an account handler
func Signup(gate *auth.Gate) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := c.FormValue("username")
		password := c.FormValue("password")

		data := loginPageData("signup")
		data["username"] = username

		if username == "" {
			data["warning"] = "Please enter a username."
			return c.Render(http.StatusBadRequest, "login.html", data)
		}

		err := gate.Signup(username, password)
		if errors.Is(err, auth.ErrUserExists) {
			data["warning"] = "Username already exists. Try logging in."
			return c.Render(http.StatusConflict, "login.html", data)
		}
		if errors.Is(err, auth.ErrInvalidUsername) {
			data["warning"] = "Usernames cannot contain slashes or be \".\" or \"..\"."
			return c.Render(http.StatusBadRequest, "login.html", data)
		}
		if err != nil {
			log.Error("Cannot create user: ", err)
			data["error"] = "Cannot create the account right now. Please try again."
			return c.Render(http.StatusInternalServerError, "login.html", data)
		}

		data = loginPageData("login")
		data["username"] = username
		data["success"] = "Account created successfully! Please log in now."
		return c.Render(http.StatusOK, "login.html", data)
	}
}

// Logout to log a user out
func Logout(gate *auth.Gate) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := currentSession(c)
		gate.Logout(&state)
		if err := saveSession(c, state); err != nil {
			log.Error("Cannot clear session: ", err)
		}
		return c.Redirect(http.StatusTemporaryRedirect, "/login")
	}
}

// safeNextURL only follows local redirects
func safeNextURL(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/login") {
		return "/"
	}
	return next
}
