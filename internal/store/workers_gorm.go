package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gigworkers/gigworkers_be/internal/models"
)

type GormWorkerStore struct {
	DB *gorm.DB
}

func NewGormWorkerStore(db *gorm.DB) *GormWorkerStore {
	return &GormWorkerStore{DB: db}
}

func (s *GormWorkerStore) ListAll(ctx context.Context) ([]models.WorkerProfile, error) {
	var profiles []models.WorkerProfile
	if err := s.DB.WithContext(ctx).
		Order("created_at ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *GormWorkerStore) GetByID(ctx context.Context, id uuid.UUID) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := s.DB.WithContext(ctx).First(&profile, "user_id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *GormWorkerStore) Create(ctx context.Context, profile *models.WorkerProfile) error {
	return s.DB.WithContext(ctx).Create(profile).Error
}

func (s *GormWorkerStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	result := s.DB.WithContext(ctx).
		Model(&models.WorkerProfile{}).
		Where("user_id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormWorkerStore) IncrementLikes(ctx context.Context, id uuid.UUID) error {
	result := s.DB.WithContext(ctx).
		Model(&models.WorkerProfile{}).
		Where("user_id = ?", id).
		Update("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormWorkerStore) AppendReview(ctx context.Context, id uuid.UUID, text string) error {
	result := s.DB.WithContext(ctx).
		Model(&models.WorkerProfile{}).
		Where("user_id = ?", id).
		Update("reviews", gorm.Expr(`jsonb_build_array(?::text) || COALESCE(reviews, '[]'::jsonb)`, text))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
