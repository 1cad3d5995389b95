package main

import (
	"errors"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/apex/log"
	uuid "github.com/satori/go.uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type positionStore interface {
	createPosition(position *Position) error
	getPosition(id uuid.UUID) (*Position, error)
	getPositions() ([]Position, error)
	prunePositions(before time.Time) (int64, error)
	Close() error
}

type gormStore struct {
	db *gorm.DB
}

func openStore() (*gormStore, error) {
	dbname, ok := os.LookupEnv("PGDATABASE")
	if !ok {
		dbname = "test"
	}
	connStr := strings.Join([]string{"dbname", dbname}, "=")

	database, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Silent),
		QueryFields: true,
	})
	if err != nil {
		log.WithError(err).WithField("connStr", connStr).Error("failed to connect database")
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}

	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool.
	sqlDB.SetMaxIdleConns(10)
	// SetMaxOpenConns sets the maximum number of open connections to the database.
	sqlDB.SetMaxOpenConns(100)
	// SetConnMaxLifetime sets the maximum amount of time a connection may be reused.
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := database.AutoMigrate(&Position{}); err != nil {
		return nil, err
	}

	return &gormStore{db: database}, nil
}

func (store *gormStore) createPosition(position *Position) error {
	position.PositionID = uuid.NewV4()
	return store.db.Create(position).Error
}

func (store *gormStore) getPosition(id uuid.UUID) (*Position, error) {
	var position Position
	if err := store.db.Where("position_id = ?", id).First(&position).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

func (store *gormStore) getPositions() ([]Position, error) {
	var positions []Position
	if err := store.db.Order("id").Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

func (store *gormStore) prunePositions(before time.Time) (int64, error) {
	result := store.db.Unscoped().Where("created_at < ?", before).Delete(&Position{})
	return result.RowsAffected, result.Error
}

// Close close.
func (store *gormStore) Close() error {
	sqlDB, err := store.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func idleError(message string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if errors.Is(err, http.ErrServerClosed) {
		return
	}
	e := err
	for errors.Unwrap(e) != nil {
		e = errors.Unwrap(e)
	}
	if e.Error() == "sql: database is closed" {
		time.Sleep(1 * time.Second)
		return
	}
	log.WithField("type", reflect.TypeOf(err)).WithError(err).Error(message)
}
