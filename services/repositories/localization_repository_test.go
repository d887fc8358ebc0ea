package repositories

import (
	"testing"
	"time"

	"github.com/lac-hong-legacy/name_api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizationRepository_GetRequestPreloadsVariantsInOrder(t *testing.T) {
	repo := NewLocalizationRepository(openTestDB(t))
	created := seedRequest(t, repo, "Alex", nil)

	got, err := repo.GetRequest(t.Context(), created.ID)
	require.NoError(t, err)
	require.Len(t, got.Variants, 3)
	for i, kind := range []string{"short", "medium", "long"} {
		assert.Equal(t, kind, got.Variants[i].VariantType)
		assert.Equal(t, created.ID, got.Variants[i].RequestID)
	}

	_, err = repo.GetRequest(t.Context(), "missing")
	assert.True(t, IsRecordNotFound(err))
}

func TestLocalizationRepository_ListRecent(t *testing.T) {
	repo := NewLocalizationRepository(openTestDB(t))

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"First", "Second", "Third"} {
		request := &model.LocalizationRequest{
			OriginalName:     name,
			TargetLanguage:   "chinese",
			GenderPreference: "any",
			OutputFormat:     "native",
			Tone:             "formal",
			CreatedAt:        base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.CreateRequest(t.Context(), request))
	}

	recent, err := repo.ListRecent(t.Context(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Third", recent[0].OriginalName)
	assert.Equal(t, "Second", recent[1].OriginalName)
}

func TestLocalizationRepository_GetRequestsByIDs(t *testing.T) {
	repo := NewLocalizationRepository(openTestDB(t))
	a := seedRequest(t, repo, "Alpha", nil)
	b := seedRequest(t, repo, "Beta", nil)

	found, err := repo.GetRequestsByIDs(t.Context(), []string{a.ID, b.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Len(t, found[b.ID].Variants, 3)

	empty, err := repo.GetRequestsByIDs(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLocalizationRepository_VariantRequiresRequest(t *testing.T) {
	repo := NewLocalizationRepository(openTestDB(t))

	err := repo.CreateVariants(t.Context(), []model.NameVariant{{
		RequestID:     "missing",
		VariantType:   "short",
		NativeScript:  "x",
		Romanization:  "x",
		Meaning:       "x",
		Pronunciation: "x",
		CulturalNotes: "x",
	}})
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
}

func TestLocalizationRepository_DeleteCascades(t *testing.T) {
	db := openTestDB(t)
	repo := NewLocalizationRepository(db)
	favorites := NewFavoriteRepository(db)

	request := seedRequest(t, repo, "Sofia", nil)
	require.NoError(t, favorites.Create(t.Context(), &model.UserFavorite{
		UserID:    "u1",
		RequestID: request.ID,
		VariantID: request.Variants[0].ID,
	}))

	deleted, err := repo.DeleteVariant(t.Context(), request.Variants[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	list, err := favorites.ListByUser(t.Context(), "u1")
	require.NoError(t, err)
	assert.Empty(t, list)

	deleted, err = repo.DeleteRequest(t.Context(), request.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var remaining int64
	require.NoError(t, db.Model(&model.NameVariant{}).Count(&remaining).Error)
	assert.Zero(t, remaining)

	deleted, err = repo.DeleteRequest(t.Context(), request.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
