package jsondb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/sdomino/scribble"

	"github.com/bp-predictor/bp-ui/model"
	"github.com/bp-predictor/bp-ui/store"
)

const userCollection = "users"

// JsonDB stores one json file per user under dbPath/users
type JsonDB struct {
	conn   *scribble.Driver
	dbPath string
	// serializes the exists-check and write in SaveUser
	mu sync.Mutex
}

// New returns a new pointer JsonDB
func New(dbPath string) (*JsonDB, error) {
	conn, err := scribble.New(dbPath, nil)
	if err != nil {
		return nil, err
	}
	ans := JsonDB{
		conn:   conn,
		dbPath: dbPath,
	}
	return &ans, nil
}

func (o *JsonDB) Init() error {
	var userPath string = path.Join(o.dbPath, userCollection)

	// create directories if they do not exist
	if _, err := os.Stat(userPath); os.IsNotExist(err) {
		if err := os.MkdirAll(userPath, os.ModePerm); err != nil {
			return fmt.Errorf("cannot create users directory: %w", err)
		}
	}
	return nil
}

// GetUsers func to get all users from the database
func (o *JsonDB) GetUsers() ([]model.User, error) {
	var users []model.User
	results, err := o.conn.ReadAll(userCollection)
	if err != nil {
		return users, err
	}
	for _, i := range results {
		user := model.User{}

		if err := json.Unmarshal([]byte(i), &user); err != nil {
			return users, fmt.Errorf("cannot decode user json structure: %v", err)
		}
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

// validName reports whether username is safe to use as a file name inside the users collection
func validName(username string) bool {
	if username == "" || username == "." || username == ".." {
		return false
	}
	return !strings.ContainsAny(username, `/\`)
}

// GetUserByName func to get single user from the database
func (o *JsonDB) GetUserByName(username string) (model.User, error) {
	user := model.User{}
	if !validName(username) {
		return user, store.ErrNotFound
	}

	if err := o.conn.Read(userCollection, username, &user); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return user, store.ErrNotFound
		}
		return user, err
	}

	return user, nil
}

// SaveUser func to save a new user in the database
func (o *JsonDB) SaveUser(user model.User) error {
	if !validName(user.Username) {
		return fmt.Errorf("%w: %q", store.ErrInvalidUsername, user.Username)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	_, err := o.GetUserByName(user.Username)
	if err == nil {
		return store.ErrAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return o.conn.Write(userCollection, user.Username, user)
}
