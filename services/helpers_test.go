package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/shared"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *SqliteService {
	t.Helper()

	db := NewSqliteService(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, db.Open())
	t.Cleanup(db.Shutdown)
	return db
}

func closeDatabase(t *testing.T, db *SqliteService) {
	t.Helper()

	sqlDB, err := db.Db().DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

// fakeClock is advanced manually by tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func strPtr(s string) *string {
	return &s
}

func emmaRequest() dto.CreateLocalizationRequest {
	return dto.CreateLocalizationRequest{
		OriginalName:     "Emma",
		TargetLanguage:   shared.LanguageChinese,
		GenderPreference: shared.GenderFemale,
		OutputFormat:     shared.FormatBoth,
		Tone:             shared.ToneModern,
	}
}

func createLocalization(t *testing.T, svc *LocalizationService, req dto.CreateLocalizationRequest) *dto.LocalizationResponse {
	t.Helper()

	res, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}
