package repositories

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/lac-hong-legacy/name_api/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "repositories.db")
	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_time_format=sqlite", path),
	}, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.LocalizationRequest{},
		&model.NameVariant{},
		&model.UserFavorite{},
		&model.RateLimitRecord{},
	))
	return db
}

func seedRequest(t *testing.T, repo *LocalizationRepository, name string, userID *string) *model.LocalizationRequest {
	t.Helper()

	request := &model.LocalizationRequest{
		OriginalName:     name,
		TargetLanguage:   "japanese",
		GenderPreference: "neutral",
		OutputFormat:     "both",
		Tone:             "casual",
		UserID:           userID,
	}
	require.NoError(t, repo.CreateRequest(t.Context(), request))

	variants := make([]model.NameVariant, 0, 3)
	for _, kind := range []string{"short", "medium", "long"} {
		variants = append(variants, model.NameVariant{
			RequestID:       request.ID,
			VariantType:     kind,
			NativeScript:    "アレ",
			Romanization:    "Are",
			Meaning:         "test",
			Pronunciation:   "ah-reh",
			CulturalNotes:   "test",
			ConfidenceScore: 0.9,
		})
	}
	require.NoError(t, repo.CreateVariants(t.Context(), variants))
	request.Variants = variants
	return request
}
