package donation

import (
	"context"
	"errors"
	"fmt"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"

	"gorm.io/gorm"
)

// sortColumns maps API sort field names to their database columns.
var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"distance":   "distance",
	"expiryDate": "expiry_date",
}

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id uint) (*entities.Donation, error)
		ListDonations(ctx context.Context, q domain.DonationListQuery) ([]*entities.Donation, error)
		ListDonorDonations(ctx context.Context, donorID uint, status string, limit, offset int) ([]*entities.Donation, error)
		UpdateDonation(ctx context.Context, id uint, updates map[string]interface{}, expectStatus *string) (int64, error)
		DeleteDonation(ctx context.Context, id uint) error
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id uint) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&donation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) ListDonations(ctx context.Context, q domain.DonationListQuery) ([]*entities.Donation, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Donation{})

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where(
			"title ILIKE ? OR description ILIKE ? OR pickup_location ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.AICategory != "" {
		tx = tx.Where("ai_category = ?", q.AICategory)
	}
	if q.FoodType != "" {
		tx = tx.Where("food_type = ?", q.FoodType)
	}

	column, ok := sortColumns[q.Sort]
	if !ok {
		column = "created_at"
	}

	var donations []*entities.Donation
	if err := tx.
		Order(fmt.Sprintf("%s %s", column, q.Order)).
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) ListDonorDonations(ctx context.Context, donorID uint, status string, limit, offset int) ([]*entities.Donation, error) {
	tx := r.db.WithContext(ctx).Where("donor_id = ?", donorID)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	var donations []*entities.Donation
	if err := tx.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// UpdateDonation applies a partial update. When expectStatus is set the
// WHERE clause carries the current status so a status change and its gate
// are a single atomic statement; callers check the affected-row count.
func (r *donationRepository) UpdateDonation(ctx context.Context, id uint, updates map[string]interface{}, expectStatus *string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Donation{}).Where("id = ?", id)
	if expectStatus != nil {
		tx = tx.Where("status = ?", *expectStatus)
	}

	res := tx.Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *donationRepository) DeleteDonation(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Donation{}, id).Error
}
