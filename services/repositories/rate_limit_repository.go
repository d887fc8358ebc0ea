package repositories

import (
	"context"
	"time"

	"github.com/lac-hong-legacy/name_api/model"
	"gorm.io/gorm"
)

type RateLimitRepository struct {
	BaseRepository
}

func NewRateLimitRepository(db *gorm.DB) *RateLimitRepository {
	return &RateLimitRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// FindInWindow returns the records for ip whose window started at or after
// since, most recently touched first. A nil userID does not filter by user.
func (s *RateLimitRepository) FindInWindow(ctx context.Context, ip string, userID *string, since time.Time) ([]model.RateLimitRecord, error) {
	query := s.conn(ctx).
		Where("ip_address = ? AND window_start >= ?", ip, since)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var records []model.RateLimitRecord
	if err := query.Order("created_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *RateLimitRepository) Create(ctx context.Context, record *model.RateLimitRecord) error {
	if record.ID == "" {
		record.ID = newID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = Now()
	}
	return s.conn(ctx).Create(record).Error
}

// Increment bumps the counter and refreshes created_at. window_start is left
// untouched since it anchors the original window.
func (s *RateLimitRepository) Increment(ctx context.Context, id string, touchedAt time.Time) error {
	return s.conn(ctx).Model(&model.RateLimitRecord{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"request_count": gorm.Expr("request_count + ?", 1),
			"created_at":    touchedAt,
		}).Error
}

func (s *RateLimitRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.conn(ctx).Model(&model.RateLimitRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
