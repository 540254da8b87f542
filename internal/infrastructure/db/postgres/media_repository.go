package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/medcore/healthcare-api/internal/core/domain"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, media *domain.MediaFile) (*domain.MediaFile, error) {
	if err := r.db.WithContext(ctx).Create(media).Error; err != nil {
		return nil, fmt.Errorf("insert media file: %w", err)
	}
	return media, nil
}

func (r *MediaRepository) FindByID(ctx context.Context, id uint) (*domain.MediaFile, error) {
	var media domain.MediaFile
	if err := r.db.WithContext(ctx).First(&media, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMediaNotFound
		}
		return nil, fmt.Errorf("find media file: %w", err)
	}
	return &media, nil
}

func (r *MediaRepository) ListByPatient(ctx context.Context, patientID uint) ([]domain.MediaFile, error) {
	var files []domain.MediaFile
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("uploaded_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("list media files: %w", err)
	}
	return files, nil
}
