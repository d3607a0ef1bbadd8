package history

import (
	"context"
	"time"

	"medipulse/models"

	"gorm.io/gorm"
)

// GormStore persists history records through GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Append(ctx context.Context, rec *models.HistoryRecord) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *GormStore) List(ctx context.Context, username string, limit int) ([]models.HistoryRecord, error) {
	records := make([]models.HistoryRecord, 0)

	q := s.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormStore) Clear(ctx context.Context, username string) error {
	return s.db.WithContext(ctx).
		Where("username = ?", username).
		Delete(&models.HistoryRecord{}).Error
}

func (s *GormStore) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.HistoryRecord{})
	return result.RowsAffected, result.Error
}
