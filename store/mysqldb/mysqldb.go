// Package mysqldb provides a MySQL storage backend for the user table
package mysqldb

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/labstack/gommon/log"

	"github.com/bp-predictor/bp-ui/model"
	"github.com/bp-predictor/bp-ui/store"
)

//go:embed schema.sql
var schema string

// duplicate entry for a unique key
const errDuplicateEntry = 1062

// MySQLDB - Representation of MySQL database backend
type MySQLDB struct {
	conn   *sql.DB
	schema string
	dbName string
}

// New returns pointer to MySQL database
func New(uname string, pwd string, host string, port int, database string, tls string) (*MySQLDB, error) {
	// Set connection config
	config := mysql.NewConfig()
	config.User = uname
	config.Passwd = pwd
	config.Net = "tcp"
	config.Addr = fmt.Sprintf("%s:%d", host, port)
	config.DBName = database
	config.ParseTime = true
	config.TLSConfig = tls

	// Open connection pool
	conn, err := sql.Open("mysql", config.FormatDSN())
	if err != nil {
		return nil, err
	}
	conn.SetConnMaxLifetime(time.Minute * 3)
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(10)

	// Test the connection
	if err := conn.Ping(); err != nil {
		return nil, err
	}

	return NewWithConn(conn, database), nil
}

// NewWithConn wraps an already opened connection pool
func NewWithConn(conn *sql.DB, database string) *MySQLDB {
	return &MySQLDB{
		conn:   conn,
		schema: schema,
		dbName: database,
	}
}

// Init creates the users table when it is missing
func (o *MySQLDB) Init() error {
	var tableCount int
	err := o.conn.QueryRow(
		"SELECT COUNT(DISTINCT `table_name`) FROM `information_schema`.`columns` WHERE `table_schema` = ? AND `table_name` = ?",
		o.dbName,
		"users",
	).Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return nil
	}

	log.Infof("Initializing database %s", o.dbName)
	if _, err := o.conn.Exec(o.schema); err != nil {
		return fmt.Errorf("cannot create schema: %w", err)
	}
	return nil
}

// GetUsers func to query all users
func (o *MySQLDB) GetUsers() ([]model.User, error) {
	rows, err := o.conn.Query("SELECT username, password_hash FROM users ORDER BY username;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user := model.User{}
		if err := rows.Scan(&user.Username, &user.PasswordHash); err != nil {
			return users, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetUserByName func to query a single user
func (o *MySQLDB) GetUserByName(username string) (model.User, error) {
	user := model.User{}
	row := o.conn.QueryRow("SELECT username, password_hash FROM users WHERE username = ?;", username)
	err := row.Scan(
		&user.Username,
		&user.PasswordHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return user, store.ErrNotFound
	}
	return user, err
}

// SaveUser func to insert a new user
func (o *MySQLDB) SaveUser(user model.User) error {
	_, err := o.conn.Exec(
		"INSERT INTO users (username, password_hash) VALUES (?, ?);",
		user.Username,
		user.PasswordHash,
	)
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
		return store.ErrAlreadyExists
	}
	return err
}
