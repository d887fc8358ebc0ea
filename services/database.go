package services

import (
	"errors"

	"github.com/lac-hong-legacy/name_api/model"
	"github.com/lac-hong-legacy/name_api/services/repositories"
	"github.com/lac-hong-legacy/name_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DatabaseService is implemented by the SQLite and Postgres services. Only one
// of them is registered, under DATABASE_SVC.
type DatabaseService interface {
	Db() *gorm.DB
	HandleError(err error) error
}

const DATABASE_SVC = "database_svc"

func Models() []interface{} {
	return []interface{}{
		&model.LocalizationRequest{},
		&model.NameVariant{},
		&model.UserFavorite{},
		&model.RateLimitRecord{},
	}
}

// translateError maps a persistence failure onto the application error
// taxonomy. AppErrors pass through unchanged.
func translateError(driver string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := shared.GetAppError(err); ok {
		return err
	}

	var appErr *shared.AppError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		appErr = shared.NewNotFoundError(err, "Record not found")
	case repositories.IsUniqueViolation(err):
		appErr = shared.NewConflictError(err, "Record already exists")
	case repositories.IsForeignKeyViolation(err):
		appErr = shared.NewNotFoundError(err, "Referenced record not found")
	case errors.Is(err, gorm.ErrInvalidTransaction):
		appErr = shared.NewStoreError(err, "Database transaction failed")
	default:
		appErr = shared.NewStoreError(err, "Database operation failed")
	}

	logEntry := log.WithFields(log.Fields{
		"driver":      driver,
		"status_code": appErr.StatusCode,
		"error_type":  appErr.Code,
		"error":       err.Error(),
	})

	if appErr.StatusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return appErr
}
