package partnership

import (
	"context"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"

	"gorm.io/gorm"
)

type (
	PartnershipRepository interface {
		CreatePartnership(ctx context.Context, partnership *entities.Partnership) error
		ListPartnerships(ctx context.Context, q domain.PartnershipListQuery) ([]*entities.Partnership, error)
	}

	partnershipRepository struct {
		db *gorm.DB
	}
)

func NewPartnershipRepository(db *gorm.DB) PartnershipRepository {
	return &partnershipRepository{db: db}
}

func (r *partnershipRepository) CreatePartnership(ctx context.Context, partnership *entities.Partnership) error {
	return r.db.WithContext(ctx).Create(partnership).Error
}

func (r *partnershipRepository) ListPartnerships(ctx context.Context, q domain.PartnershipListQuery) ([]*entities.Partnership, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Partnership{})
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}

	var partnerships []*entities.Partnership
	if err := tx.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&partnerships).Error; err != nil {
		return nil, err
	}
	return partnerships, nil
}
