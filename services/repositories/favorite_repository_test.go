package repositories

import (
	"testing"
	"time"

	"github.com/lac-hong-legacy/name_api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_UniquePerUserAndVariant(t *testing.T) {
	db := openTestDB(t)
	requests := NewLocalizationRepository(db)
	repo := NewFavoriteRepository(db)
	request := seedRequest(t, requests, "Liam", nil)

	fav := model.UserFavorite{UserID: "u1", RequestID: request.ID, VariantID: request.Variants[1].ID}
	first := fav
	require.NoError(t, repo.Create(t.Context(), &first))

	exists, err := repo.Exists(t.Context(), "u1", request.ID, request.Variants[1].ID)
	require.NoError(t, err)
	assert.True(t, exists)

	dup := fav
	err = repo.Create(t.Context(), &dup)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	other := fav
	other.UserID = "u2"
	assert.NoError(t, repo.Create(t.Context(), &other))
}

func TestFavoriteRepository_DeleteForUser(t *testing.T) {
	db := openTestDB(t)
	requests := NewLocalizationRepository(db)
	repo := NewFavoriteRepository(db)
	request := seedRequest(t, requests, "Emma", nil)

	fav := &model.UserFavorite{UserID: "u1", RequestID: request.ID, VariantID: request.Variants[0].ID}
	require.NoError(t, repo.Create(t.Context(), fav))

	removed, err := repo.DeleteForUser(t.Context(), "u2", fav.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = repo.DeleteForUser(t.Context(), "u1", fav.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = repo.Get(t.Context(), fav.ID)
	assert.True(t, IsRecordNotFound(err))
}

func TestFavoriteRepository_ListByUserNewestFirst(t *testing.T) {
	db := openTestDB(t)
	requests := NewLocalizationRepository(db)
	repo := NewFavoriteRepository(db)
	request := seedRequest(t, requests, "Alex", nil)

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i, variant := range request.Variants {
		require.NoError(t, repo.Create(t.Context(), &model.UserFavorite{
			UserID:    "u1",
			RequestID: request.ID,
			VariantID: variant.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	list, err := repo.ListByUser(t.Context(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, request.Variants[2].ID, list[0].VariantID)
	assert.Equal(t, request.Variants[0].ID, list[2].VariantID)

	none, err := repo.ListByUser(t.Context(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}
