package repositories

import (
	"context"
	"errors"

	"github.com/lac-hong-legacy/name_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LocalizationRepository struct {
	BaseRepository
}

func NewLocalizationRepository(db *gorm.DB) *LocalizationRepository {
	return &LocalizationRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func orderedVariants(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, id ASC")
}

func (ds *LocalizationRepository) CreateRequest(ctx context.Context, request *model.LocalizationRequest) error {
	if request.ID == "" {
		request.ID = newID()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = Now()
	}

	return ds.conn(ctx).Omit(clause.Associations).Create(request).Error
}

func (ds *LocalizationRepository) CreateVariants(ctx context.Context, variants []model.NameVariant) error {
	if len(variants) == 0 {
		return nil
	}

	now := Now()
	for i := range variants {
		if variants[i].ID == "" {
			variants[i].ID = newID()
		}
		if variants[i].CreatedAt.IsZero() {
			variants[i].CreatedAt = now
		}
	}

	return ds.conn(ctx).Create(&variants).Error
}

// GetRequest returns gorm.ErrRecordNotFound when the request does not exist.
func (ds *LocalizationRepository) GetRequest(ctx context.Context, id string) (*model.LocalizationRequest, error) {
	var request model.LocalizationRequest
	err := ds.conn(ctx).
		Preload("Variants", orderedVariants).
		Where("id = ?", id).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (ds *LocalizationRepository) RequestExists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := ds.conn(ctx).Model(&model.LocalizationRequest{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetRequestsByIDs loads the requests with their variants in one batch.
// The result is keyed by id; callers own the ordering.
func (ds *LocalizationRepository) GetRequestsByIDs(ctx context.Context, ids []string) (map[string]model.LocalizationRequest, error) {
	result := make(map[string]model.LocalizationRequest, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var requests []model.LocalizationRequest
	err := ds.conn(ctx).
		Preload("Variants", orderedVariants).
		Where("id IN ?", ids).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	for _, request := range requests {
		result[request.ID] = request
	}
	return result, nil
}

func (ds *LocalizationRepository) ListRecent(ctx context.Context, limit int) ([]model.LocalizationRequest, error) {
	var requests []model.LocalizationRequest
	err := ds.conn(ctx).
		Preload("Variants", orderedVariants).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (ds *LocalizationRepository) GetVariant(ctx context.Context, id string) (*model.NameVariant, error) {
	var variant model.NameVariant
	if err := ds.conn(ctx).Where("id = ?", id).First(&variant).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

// DeleteRequest removes a request; its variants and any favorites referencing
// them go with it through the foreign key cascade.
func (ds *LocalizationRepository) DeleteRequest(ctx context.Context, id string) (bool, error) {
	result := ds.conn(ctx).Where("id = ?", id).Delete(&model.LocalizationRequest{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (ds *LocalizationRepository) DeleteVariant(ctx context.Context, id string) (bool, error) {
	result := ds.conn(ctx).Where("id = ?", id).Delete(&model.NameVariant{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
