package repositories

import (
	"context"

	"github.com/lac-hong-legacy/name_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct {
	BaseRepository
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *FavoriteRepository) Create(ctx context.Context, favorite *model.UserFavorite) error {
	if favorite.ID == "" {
		favorite.ID = newID()
	}
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = Now()
	}

	return ds.conn(ctx).Omit(clause.Associations).Create(favorite).Error
}

func (ds *FavoriteRepository) Exists(ctx context.Context, userID, requestID, variantID string) (bool, error) {
	var count int64
	err := ds.conn(ctx).Model(&model.UserFavorite{}).
		Where("user_id = ? AND request_id = ? AND variant_id = ?", userID, requestID, variantID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ds *FavoriteRepository) Get(ctx context.Context, id string) (*model.UserFavorite, error) {
	var favorite model.UserFavorite
	if err := ds.conn(ctx).Where("id = ?", id).First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

// DeleteForUser only deletes when both the id and the owner match.
func (ds *FavoriteRepository) DeleteForUser(ctx context.Context, userID, favoriteID string) (bool, error) {
	result := ds.conn(ctx).
		Where("id = ? AND user_id = ?", favoriteID, userID).
		Delete(&model.UserFavorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (ds *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]model.UserFavorite, error) {
	var favorites []model.UserFavorite
	err := ds.conn(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
