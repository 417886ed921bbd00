package postgres

import (
	"context"
	"errors"
	"fmt"

	"glowAdvisor/domain"

	"gorm.io/gorm"
)

type ConsultationRepository struct {
	DB *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) *ConsultationRepository {
	return &ConsultationRepository{
		DB: db,
	}
}

func (r *ConsultationRepository) Save(ctx context.Context, consultation *domain.Consultation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(consultation).Error; err != nil {
		return fmt.Errorf("failed to save consultation: %w", err)
	}

	return nil
}

func (r *ConsultationRepository) FindByID(ctx context.Context, id string) (domain.Consultation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Consultation{}, fmt.Errorf("context error: %w", err)
	}

	var consultation domain.Consultation

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Consultation{}, errors.New("consultation not found")
		}
		return domain.Consultation{}, fmt.Errorf("failed to find consultation: %w", err)
	}

	return consultation, nil
}

func (r *ConsultationRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Consultation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var consultations []domain.Consultation
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find consultations: %w", err)
	}

	return consultations, nil
}
