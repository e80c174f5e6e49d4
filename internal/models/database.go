package models

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// ContextKey is the type for keys the backend sets on the request context.
type ContextKey string

// ContextUser is the context key for the owner identity of the request.
// It is resolved by the router's identity middleware; the stores never
// read it themselves and take the owner as an explicit parameter.
const ContextUser ContextKey = "pocketledger-user"

func init() {
	// Amounts are numbers in the API, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(Category{}, Transaction{})
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	for _, register := range []func(*gorm.DB) error{
		func(db *gorm.DB) error {
			return db.Callback().Query().After("*").Register("pocketledger:after_query_general", generalCallback)
		},
		func(db *gorm.DB) error {
			return db.Callback().Create().After("*").Register("pocketledger:after_create_general", generalCallback)
		},
		func(db *gorm.DB) error {
			return db.Callback().Update().After("*").Register("pocketledger:after_update_general", generalCallback)
		},
		func(db *gorm.DB) error {
			return db.Callback().Delete().After("*").Register("pocketledger:after_delete_general", generalCallback)
		},
	} {
		if err := register(db); err != nil {
			return err
		}
	}

	DB = db

	return nil
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// general logs an unexpected database error and replaces it with ErrGeneral.
func general(err error) error {
	if errors.Is(err, ErrGeneral) {
		return err
	}

	log.Error().Msgf("%T: %v", err, err.Error())
	return ErrGeneral
}

// first returns the resource with the given ID that is owned by userID.
//
// A missing row and a row owned by someone else both return notFound so that
// callers cannot distinguish the two cases.
func first[R Category | Transaction](id uint64, userID string, notFound error) (R, error) {
	var resource R

	err := DB.Where("id = ? AND user_id = ?", id, userID).First(&resource).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resource, notFound
		}
		return resource, general(err)
	}

	return resource, nil
}
