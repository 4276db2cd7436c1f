// Package memdb keeps users in process memory. Everything is lost on restart.
package memdb

import (
	"sort"
	"sync"

	"github.com/bp-predictor/bp-ui/model"
	"github.com/bp-predictor/bp-ui/store"
)

type MemDB struct {
	mu    sync.RWMutex
	users map[string]model.User
}

// New returns an empty in-memory store
func New() *MemDB {
	return &MemDB{users: make(map[string]model.User)}
}

func (o *MemDB) Init() error {
	return nil
}

// GetUsers returns all users sorted by username
func (o *MemDB) GetUsers() ([]model.User, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	users := make([]model.User, 0, len(o.users))
	for _, u := range o.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (o *MemDB) GetUserByName(username string) (model.User, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	user, ok := o.users[username]
	if !ok {
		return model.User{}, store.ErrNotFound
	}
	return user, nil
}

func (o *MemDB) SaveUser(user model.User) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.users[user.Username]; ok {
		return store.ErrAlreadyExists
	}
	o.users[user.Username] = user
	return nil
}
