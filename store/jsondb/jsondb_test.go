package jsondb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bp-predictor/bp-ui/model"
	"github.com/bp-predictor/bp-ui/store"
)

func newTestDB(t *testing.T) *JsonDB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "db"))
	require.NoError(t, err)
	require.NoError(t, db.Init())
	return db
}

func TestJsonDB_SaveAndGet(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetUserByName("admin")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, db.SaveUser(model.User{Username: "admin", PasswordHash: "digest"}))

	u, err := db.GetUserByName("admin")
	require.NoError(t, err)
	assert.Equal(t, model.User{Username: "admin", PasswordHash: "digest"}, u)

	_, err = os.Stat(filepath.Join(db.dbPath, "users", "admin.json"))
	assert.NoError(t, err)
}

func TestJsonDB_RejectsPathUsernames(t *testing.T) {
	root := t.TempDir()
	db, err := New(filepath.Join(root, "a", "db"))
	require.NoError(t, err)
	require.NoError(t, db.Init())

	for _, name := range []string{"", ".", "..", "../../escaped", "a/b", `..\escaped`, "/abs"} {
		err := db.SaveUser(model.User{Username: name, PasswordHash: "x"})
		assert.ErrorIs(t, err, store.ErrInvalidUsername, "username %q", name)

		_, err = db.GetUserByName(name)
		assert.ErrorIs(t, err, store.ErrNotFound, "username %q", name)
	}

	for _, p := range []string{
		filepath.Join(root, "escaped.json"),
		filepath.Join(root, "a", "escaped.json"),
		filepath.Join(root, "a", "db", "escaped.json"),
	} {
		_, err := os.Stat(p)
		assert.True(t, os.IsNotExist(err), "%s must not be written", p)
	}

	users, err := db.GetUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestJsonDB_EmptyUsernameNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetUserByName("")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestJsonDB_TrailingSpaceIsDistinct(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.SaveUser(model.User{Username: "admin", PasswordHash: "a"}))

	_, err := db.GetUserByName("admin ")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestJsonDB_DuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.SaveUser(model.User{Username: "admin", PasswordHash: "first"}))

	err := db.SaveUser(model.User{Username: "admin", PasswordHash: "second"})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	u, err := db.GetUserByName("admin")
	require.NoError(t, err)
	assert.Equal(t, "first", u.PasswordHash)
}

func TestJsonDB_SurvivesReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	db, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, db.Init())
	require.NoError(t, db.SaveUser(model.User{Username: "bob", PasswordHash: "x"}))
	require.NoError(t, db.SaveUser(model.User{Username: "alice", PasswordHash: "y"}))

	reopened, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, reopened.Init())

	users, err := reopened.GetUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}
