package mysqldb

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bp-predictor/bp-ui/model"
	"github.com/bp-predictor/bp-ui/store"
)

const (
	qCountTables = `(?s)^SELECT\s+COUNT\(DISTINCT\s+` + "`table_name`" + `\)\s+FROM\s+` + "`information_schema`.`columns`" + `.*$`
	qSelectUser  = `(?s)^SELECT\s+username,\s*password_hash\s+FROM\s+users\s+WHERE\s+username\s*=\s*\?;$`
	qSelectUsers = `(?s)^SELECT\s+username,\s*password_hash\s+FROM\s+users\s+ORDER\s+BY\s+username;$`
	qInsertUser  = `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*password_hash\)\s*VALUES\s*\(\?,\s*\?\);$`
	qCreateTable = `(?s)^CREATE\s+TABLE\s+IF\s+NOT\s+EXISTS\s+` + "`users`" + `.*$`
)

func newDBWithMock(t *testing.T) (*MySQLDB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewWithConn(conn, "bp_predictor"), mock, conn
}

// usernames compare byte for byte, so "admin " is a different user from "admin"
func TestSchemaUsernameIsBinary(t *testing.T) {
	assert.Contains(t, schema, "`username` VARBINARY(255) NOT NULL")
}

func TestInit_CreatesSchema(t *testing.T) {
	db, mock, conn := newDBWithMock(t)
	defer conn.Close()

	mock.ExpectQuery(qCountTables).
		WithArgs("bp_predictor", "users").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(qCreateTable).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, db.Init())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInit_TableExists(t *testing.T) {
	db, mock, conn := newDBWithMock(t)
	defer conn.Close()

	mock.ExpectQuery(qCountTables).
		WithArgs("bp_predictor", "users").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	require.NoError(t, db.Init())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInit_SchemaError(t *testing.T) {
	db, mock, conn := newDBWithMock(t)
	defer conn.Close()

	mock.ExpectQuery(qCountTables).
		WithArgs("bp_predictor", "users").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(qCreateTable).WillReturnError(errors.New("access denied"))

	err := db.Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestGetUserByName_Found(t *testing.T) {
	db, mock, conn := newDBWithMock(t)
	defer conn.Close()

	mock.ExpectQuery(qSelectUser).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"username", "password_hash"}).AddRow("admin", "digest"))

	u, err := db.GetUserByName("admin")
	require.NoError(t, err)
	assert.Equal(t, model.User{Username: "admin", PasswordHash: "digest"}, u)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByName_NotFound(t *testing.T) {
	db, mock, conn := newDBWithMock(t)
	defer conn.Close()

	mock.ExpectQuery(qSelectUser).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"username", "password_hash"}))

	_, err := db.GetUserByName("ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetUsers(t *testing.T) {
	db, mock, conn := newDBWithMock(t)
	defer conn.Close()

	mock.ExpectQuery(qSelectUsers).
		WillReturnRows(sqlmock.NewRows([]string{"username", "password_hash"}).
			AddRow("admin", "a").
			AddRow("bob", "b"))

	users, err := db.GetUsers()
	require.NoError(t, err)
	assert.Equal(t, []model.User{{Username: "admin", PasswordHash: "a"}, {Username: "bob", PasswordHash: "b"}}, users)
}

func TestSaveUser(t *testing.T) {
	db, mock, conn := newDBWithMock(t)
	defer conn.Close()

	mock.ExpectExec(qInsertUser).
		WithArgs("alice", "digest").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, db.SaveUser(model.User{Username: "alice", PasswordHash: "digest"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveUser_Duplicate(t *testing.T) {
	db, mock, conn := newDBWithMock(t)
	defer conn.Close()

	mock.ExpectExec(qInsertUser).
		WithArgs("admin", "digest").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'admin' for key 'PRIMARY'"})

	err := db.SaveUser(model.User{Username: "admin", PasswordHash: "digest"})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestSaveUser_DBError(t *testing.T) {
	db, mock, conn := newDBWithMock(t)
	defer conn.Close()

	mock.ExpectExec(qInsertUser).
		WithArgs("admin", "digest").
		WillReturnError(errors.New("db down"))

	err := db.SaveUser(model.User{Username: "admin", PasswordHash: "digest"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, store.ErrAlreadyExists))
}
