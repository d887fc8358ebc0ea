package services

import (
	"fmt"
	"os"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type SqliteService struct {
	appContext.DefaultService
	db *gorm.DB

	database string
}

const defaultSqliteDatabase = "name_api.db"

func NewSqliteService(database string) *SqliteService {
	return &SqliteService{database: database}
}

// Id returns Service ID
func (ds SqliteService) Id() string {
	return DATABASE_SVC
}

// Db Access to raw SqliteService db
func (ds SqliteService) Db() *gorm.DB {
	return ds.db
}

// Configure the service
func (ds *SqliteService) Configure(ctx *appContext.Context) error {
	if ds.database == "" {
		ds.database = os.Getenv("DB_DATABASE")
	}
	if ds.database == "" {
		ds.database = defaultSqliteDatabase
	}

	return ds.DefaultService.Configure(ctx)
}

// Start the service and open connection to the database
// Migrate any tables that have changed since last runtime
func (ds *SqliteService) Start() error {
	return ds.Open()
}

// Open connects and migrates. Foreign keys are switched on for every
// connection so the cascades declared on the models are enforced.
func (ds *SqliteService) Open() (err error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite", ds.database)

	ds.db, err = gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dsn,
	}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return err
	}

	sqlDB, err := ds.db.DB()
	if err != nil {
		return err
	}
	// single writer
	sqlDB.SetMaxOpenConns(1)

	err = ds.db.AutoMigrate(Models()...)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.WithField("database", ds.database).Info("Database connected and migrated successfully")
	return nil
}

func (ds *SqliteService) Shutdown() {
	if ds.db == nil {
		return
	}
	sqlDB, err := ds.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func (ds *SqliteService) HandleError(err error) error {
	return translateError("sqlite", err)
}
