package sensor

import (
	"context"
	"testing"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSensorRepository struct {
	readings []*entities.SensorReading
}

func (f *fakeSensorRepository) CreateReading(_ context.Context, reading *entities.SensorReading) error {
	reading.ID = uint(len(f.readings) + 1)
	f.readings = append(f.readings, reading)
	return nil
}

func (f *fakeSensorRepository) ListReadings(_ context.Context, q domain.SensorListQuery) ([]*entities.SensorReading, error) {
	var out []*entities.SensorReading
	for _, r := range f.readings {
		if q.DeliveryID > 0 && r.DeliveryID != uint(q.DeliveryID) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func TestCreateReading(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSensorRepository{}
	svc := NewSensorService(repo)

	t.Run("stamps recordedAt and coerces floats", func(t *testing.T) {
		created, err := svc.CreateReading(ctx, domain.CreateSensorReadingRequest{
			DeliveryID:         "3",
			PhLevel:            "6.8",
			TemperatureCelsius: 4.2,
			Status:             strPtr("normal"),
		})
		require.NoError(t, err)
		assert.Equal(t, uint(3), created.DeliveryID)
		assert.False(t, created.RecordedAt.IsZero())
		require.NotNil(t, created.PhLevel)
		assert.Equal(t, 6.8, *created.PhLevel)
		require.NotNil(t, created.TemperatureCelsius)
		assert.Equal(t, 4.2, *created.TemperatureCelsius)
		assert.Nil(t, created.GasPpm)
	})

	t.Run("bad delivery id", func(t *testing.T) {
		_, err := svc.CreateReading(ctx, domain.CreateSensorReadingRequest{
			DeliveryID: "three",
			Status:     strPtr("normal"),
		})
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "INVALID_DELIVERY_ID", reqErr.Code)
	})

	t.Run("bad measurement", func(t *testing.T) {
		_, err := svc.CreateReading(ctx, domain.CreateSensorReadingRequest{
			DeliveryID: 3,
			GasPpm:     "high",
			Status:     strPtr("warning"),
		})
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "INVALID_GAS_PPM", reqErr.Code)
	})

	t.Run("bad status", func(t *testing.T) {
		_, err := svc.CreateReading(ctx, domain.CreateSensorReadingRequest{
			DeliveryID: 3,
			Status:     strPtr("spicy"),
		})
		var reqErr *domain.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "INVALID_STATUS", reqErr.Code)
	})
}

func TestListReadingsFilter(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSensorRepository{}
	svc := NewSensorService(repo)

	for _, deliveryID := range []any{1, 1, 2} {
		_, err := svc.CreateReading(ctx, domain.CreateSensorReadingRequest{
			DeliveryID: deliveryID,
			Status:     strPtr("normal"),
		})
		require.NoError(t, err)
	}

	list, err := svc.ListReadings(ctx, domain.SensorListQuery{DeliveryID: 1})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = svc.ListReadings(ctx, domain.SensorListQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
