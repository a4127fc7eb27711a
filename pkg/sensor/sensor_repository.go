package sensor

import (
	"context"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"

	"gorm.io/gorm"
)

type (
	SensorRepository interface {
		CreateReading(ctx context.Context, reading *entities.SensorReading) error
		ListReadings(ctx context.Context, q domain.SensorListQuery) ([]*entities.SensorReading, error)
	}

	sensorRepository struct {
		db *gorm.DB
	}
)

func NewSensorRepository(db *gorm.DB) SensorRepository {
	return &sensorRepository{db: db}
}

func (r *sensorRepository) CreateReading(ctx context.Context, reading *entities.SensorReading) error {
	return r.db.WithContext(ctx).Create(reading).Error
}

func (r *sensorRepository) ListReadings(ctx context.Context, q domain.SensorListQuery) ([]*entities.SensorReading, error) {
	tx := r.db.WithContext(ctx).Model(&entities.SensorReading{})
	if q.DeliveryID > 0 {
		tx = tx.Where("delivery_id = ?", q.DeliveryID)
	}

	var readings []*entities.SensorReading
	if err := tx.
		Order("recorded_at DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}
