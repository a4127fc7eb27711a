package delivery

import (
	"context"
	"errors"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"

	"gorm.io/gorm"
)

type (
	DeliveryRepository interface {
		CreateDelivery(ctx context.Context, delivery *entities.Delivery) error
		GetDeliveryByID(ctx context.Context, id uint) (*entities.Delivery, error)
		ListDeliveries(ctx context.Context, q domain.DeliveryListQuery) ([]*entities.Delivery, error)
		UpdateDelivery(ctx context.Context, id uint, updates map[string]interface{}, expectStatus *string) (int64, error)
		DeleteDelivery(ctx context.Context, id uint) error
	}

	deliveryRepository struct {
		db *gorm.DB
	}
)

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) CreateDelivery(ctx context.Context, delivery *entities.Delivery) error {
	return r.db.WithContext(ctx).Create(delivery).Error
}

func (r *deliveryRepository) GetDeliveryByID(ctx context.Context, id uint) (*entities.Delivery, error) {
	var delivery entities.Delivery
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&delivery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDeliveryNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

func (r *deliveryRepository) ListDeliveries(ctx context.Context, q domain.DeliveryListQuery) ([]*entities.Delivery, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Delivery{})

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.DriverID > 0 {
		tx = tx.Where("driver_id = ?", q.DriverID)
	}
	if q.DonationID > 0 {
		tx = tx.Where("donation_id = ?", q.DonationID)
	}
	if q.ClaimID > 0 {
		tx = tx.Where("claim_id = ?", q.ClaimID)
	}

	var deliveries []*entities.Delivery
	if err := tx.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (r *deliveryRepository) UpdateDelivery(ctx context.Context, id uint, updates map[string]interface{}, expectStatus *string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Delivery{}).Where("id = ?", id)
	if expectStatus != nil {
		tx = tx.Where("status = ?", *expectStatus)
	}

	res := tx.Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *deliveryRepository) DeleteDelivery(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Delivery{}, id).Error
}
