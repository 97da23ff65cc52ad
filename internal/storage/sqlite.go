package storage

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// record is a single key/value pair in the store.
type record struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// SQLite is a Store backed by a local SQLite database.
type SQLite struct {
	db *gorm.DB
}

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) (*SQLite, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(record{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	// Replace driver errors with a general error in all callbacks
	for name, register := range map[string]func(string, func(*gorm.DB)) error{
		"finance_tracker:after_query":  db.Callback().Query().After("*").Register,
		"finance_tracker:after_create": db.Callback().Create().After("*").Register,
		"finance_tracker:after_update": db.Callback().Update().After("*").Register,
		"finance_tracker:after_delete": db.Callback().Delete().After("*").Register,
	} {
		err = register(name, generalCallback)
		if err != nil {
			return nil, err
		}
	}

	return &SQLite{db: db}, nil
}

// generalCallback handles unspecified database errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil || errors.Is(db.Error, gorm.ErrRecordNotFound) {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrUnavailable
	}
}

// Get reads the value for a key.
func (s *SQLite) Get(key string) (string, bool, error) {
	var r record

	err := s.db.First(&r, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return r.Value, true, nil
}

// Set writes the value for a key, overwriting any previous value.
func (s *SQLite) Set(key, value string) error {
	return s.db.
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&record{Key: key, Value: value}).
		Error
}

// Ping verifies that the database can be accessed.
func (s *SQLite) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
