package claim

import (
	"context"
	"errors"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"

	"gorm.io/gorm"
)

type (
	ClaimRepository interface {
		CreateClaim(ctx context.Context, claim *entities.Claim) error
		GetClaimByID(ctx context.Context, id uint) (*entities.Claim, error)
		ListClaims(ctx context.Context, q domain.ClaimListQuery) ([]*entities.Claim, error)
		UpdateClaim(ctx context.Context, id uint, updates map[string]interface{}, expectStatus *string) (int64, error)
		DeleteClaim(ctx context.Context, id uint) error
	}

	claimRepository struct {
		db *gorm.DB
	}
)

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

// CreateClaim inserts the claim and flips the donation available->claimed
// in one transaction. The conditional update is the gate: when two claims
// race, exactly one sees an affected row and the other backs out.
func (r *claimRepository) CreateClaim(ctx context.Context, claim *entities.Claim) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Donation{}).
			Where("id = ? AND status = ?", claim.DonationID, domain.DonationStatusAvailable).
			Update("status", domain.DonationStatusClaimed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&entities.Donation{}).
				Where("id = ?", claim.DonationID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrDonationNotFound
			}
			return domain.ErrDonationNotAvailable
		}
		return tx.Create(claim).Error
	})
}

func (r *claimRepository) GetClaimByID(ctx context.Context, id uint) (*entities.Claim, error) {
	var claim entities.Claim
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&claim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) ListClaims(ctx context.Context, q domain.ClaimListQuery) ([]*entities.Claim, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Claim{})

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.RecipientID > 0 {
		tx = tx.Where("recipient_id = ?", q.RecipientID)
	}

	var claims []*entities.Claim
	if err := tx.
		Order("claimed_at DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *claimRepository) UpdateClaim(ctx context.Context, id uint, updates map[string]interface{}, expectStatus *string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Claim{}).Where("id = ?", id)
	if expectStatus != nil {
		tx = tx.Where("status = ?", *expectStatus)
	}

	res := tx.Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *claimRepository) DeleteClaim(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Claim{}, id).Error
}
