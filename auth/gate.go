// Package auth decides who may reach the prediction form.
//
// A Session has two states. The zero value is logged out; Login moves it to
// logged in and Logout moves it back. The Gate never keeps sessions itself:
// callers own them and pass them in for each transition.
package auth

import (
	"errors"
	"fmt"

	"github.com/labstack/gommon/log"

	"github.com/bp-predictor/bp-ui/model"
	"github.com/bp-predictor/bp-ui/store"
	"github.com/bp-predictor/bp-ui/util"
)

var (
	ErrUserExists        = errors.New("username already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInvalidUsername   = errors.New("invalid username")
)

// Session is the login state of one browser
type Session struct {
	LoggedIn bool
	Username string
}

// Logout resets the session to logged out
func (s *Session) Logout() {
	s.LoggedIn = false
	s.Username = ""
}

// Gate checks credentials against a user store
type Gate struct {
	users  store.IStore
	hasher util.Hasher
}

func NewGate(users store.IStore, hasher util.Hasher) *Gate {
	return &Gate{users: users, hasher: hasher}
}

// Signup registers username. An existing username is rejected whatever the password.
func (g *Gate) Signup(username, password string) error {
	if _, err := g.users.GetUserByName(username); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("cannot look up user %s: %w", username, err)
	}

	hash, err := g.hasher.Hash(password)
	if err != nil {
		return err
	}

	err = g.users.SaveUser(model.User{Username: username, PasswordHash: hash})
	if errors.Is(err, store.ErrAlreadyExists) {
		return ErrUserExists
	}
	if errors.Is(err, store.ErrInvalidUsername) {
		return ErrInvalidUsername
	}
	if err != nil {
		return fmt.Errorf("cannot save user %s: %w", username, err)
	}

	log.Infof("Created user %s", username)
	return nil
}

// Login moves sess to logged in when the credentials match. On failure sess is untouched.
func (g *Gate) Login(sess *Session, username, password string) error {
	user, err := g.users.GetUserByName(username)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("cannot look up user %s: %w", username, err)
	}

	match, err := g.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		return err
	}
	if !match {
		return ErrIncorrectPassword
	}

	sess.LoggedIn = true
	sess.Username = username
	return nil
}

// Logout moves sess to logged out from any state
func (g *Gate) Logout(sess *Session) {
	if sess.LoggedIn {
		log.Infof("User %s logged out", sess.Username)
	}
	sess.Logout()
}

// Seed creates the default account unless it already exists
func (g *Gate) Seed(username, password string) error {
	err := g.Signup(username, password)
	if errors.Is(err, ErrUserExists) {
		return nil
	}
	return err
}
