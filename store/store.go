package store

import (
	"errors"

	"github.com/bp-predictor/bp-ui/model"
)

var (
	// ErrNotFound is returned when no user has the requested username
	ErrNotFound = errors.New("user not found in store")
	// ErrAlreadyExists is returned when saving a username that is taken
	ErrAlreadyExists = errors.New("user already exists in store")
	// ErrInvalidUsername is returned when the backend cannot store a username as given
	ErrInvalidUsername = errors.New("username cannot be stored")
)

// IStore is the user table the auth gate reads and writes.
// Users are only ever inserted; there is no update or delete.
type IStore interface {
	Init() error
	GetUsers() ([]model.User, error)
	GetUserByName(username string) (model.User, error)
	SaveUser(user model.User) error
}
