package memdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bp-predictor/bp-ui/model"
	"github.com/bp-predictor/bp-ui/store"
)

func TestMemDB(t *testing.T) {
	db := New()
	require.NoError(t, db.Init())

	_, err := db.GetUserByName("admin")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, db.SaveUser(model.User{Username: "zoe", PasswordHash: "h1"}))
	require.NoError(t, db.SaveUser(model.User{Username: "admin", PasswordHash: "h2"}))
	assert.ErrorIs(t, db.SaveUser(model.User{Username: "admin", PasswordHash: "h3"}), store.ErrAlreadyExists)

	u, err := db.GetUserByName("admin")
	require.NoError(t, err)
	assert.Equal(t, "h2", u.PasswordHash)

	users, err := db.GetUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "zoe", users[1].Username)
}

func TestMemDB_ExactUsernameMatch(t *testing.T) {
	db := New()
	require.NoError(t, db.SaveUser(model.User{Username: "Admin"}))

	_, err := db.GetUserByName("admin")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
