package sensor

import (
	"context"
	"time"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"
	"SmartServe-Backend/internal/utils"
)

type (
	SensorService interface {
		CreateReading(ctx context.Context, req domain.CreateSensorReadingRequest) (*entities.SensorReading, error)
		ListReadings(ctx context.Context, q domain.SensorListQuery) ([]*entities.SensorReading, error)
	}

	sensorService struct {
		sensorRepository SensorRepository
	}
)

func NewSensorService(sensorRepository SensorRepository) SensorService {
	return &sensorService{sensorRepository: sensorRepository}
}

func (s *sensorService) CreateReading(ctx context.Context, req domain.CreateSensorReadingRequest) (*entities.SensorReading, error) {
	deliveryID, ok := utils.ToInt(req.DeliveryID)
	if !ok {
		return nil, domain.InvalidIntField("deliveryId")
	}
	if reqErr := domain.ValidateSensorStatus(*req.Status); reqErr != nil {
		return nil, reqErr
	}

	reading := &entities.SensorReading{
		DeliveryID: uint(deliveryID),
		Status:     *req.Status,
		RecordedAt: time.Now(),
	}

	for _, f := range []struct {
		raw   any
		field string
		dst   **float64
	}{
		{req.PhLevel, "phLevel", &reading.PhLevel},
		{req.GasPpm, "gasPpm", &reading.GasPpm},
		{req.TemperatureCelsius, "temperatureCelsius", &reading.TemperatureCelsius},
		{req.BioSafetyPercent, "bioSafetyPercent", &reading.BioSafetyPercent},
	} {
		if f.raw == nil {
			continue
		}
		value, ok := utils.ToFloat(f.raw)
		if !ok {
			return nil, domain.BadRequest("INVALID_"+domain.UpperSnake(f.field), f.field+" must be a number")
		}
		*f.dst = &value
	}

	if err := s.sensorRepository.CreateReading(ctx, reading); err != nil {
		return nil, err
	}
	return reading, nil
}

func (s *sensorService) ListReadings(ctx context.Context, q domain.SensorListQuery) ([]*entities.SensorReading, error) {
	return s.sensorRepository.ListReadings(ctx, q)
}
