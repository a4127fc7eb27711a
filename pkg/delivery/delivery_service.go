package delivery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"
	"SmartServe-Backend/internal/utils"

	"github.com/google/uuid"
)

type (
	DeliveryService interface {
		CreateDelivery(ctx context.Context, req domain.CreateDeliveryRequest) (*entities.Delivery, error)
		GetDeliveryByID(ctx context.Context, id uint) (*entities.Delivery, error)
		ListDeliveries(ctx context.Context, q domain.DeliveryListQuery) ([]*entities.Delivery, error)
		ListDriverDeliveries(ctx context.Context, driverID uint, status string, limit, offset int) ([]*entities.Delivery, error)
		UpdateDelivery(ctx context.Context, id uint, body map[string]any) (*entities.Delivery, error)
		DeleteDelivery(ctx context.Context, id uint) (*entities.Delivery, error)
	}

	deliveryService struct {
		deliveryRepository DeliveryRepository
	}
)

func NewDeliveryService(deliveryRepository DeliveryRepository) DeliveryService {
	return &deliveryService{deliveryRepository: deliveryRepository}
}

func (s *deliveryService) CreateDelivery(ctx context.Context, req domain.CreateDeliveryRequest) (*entities.Delivery, error) {
	donationID, ok := utils.ToInt(req.DonationID)
	if !ok {
		return nil, domain.InvalidIntField("donationId")
	}
	claimID, ok := utils.ToInt(req.ClaimID)
	if !ok {
		return nil, domain.InvalidIntField("claimId")
	}
	driverID, ok := utils.ToInt(req.DriverID)
	if !ok {
		return nil, domain.InvalidIntField("driverId")
	}

	delivery := &entities.Delivery{
		DonationID:      uint(donationID),
		ClaimID:         uint(claimID),
		DriverID:        uint(driverID),
		TrackingCode:    newTrackingCode(),
		PickupAddress:   *req.PickupAddress,
		DeliveryAddress: *req.DeliveryAddress,
		PickupTime:      req.PickupTime,
		DeliveryTime:    req.DeliveryTime,
		Status:          domain.DeliveryStatusPickupPending,
	}
	if req.DistanceKm != nil {
		distance, ok := utils.ToFloat(req.DistanceKm)
		if !ok {
			return nil, domain.BadRequest("INVALID_DISTANCE_KM", "distanceKm must be a number")
		}
		delivery.DistanceKm = &distance
	}

	if err := s.deliveryRepository.CreateDelivery(ctx, delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

func (s *deliveryService) GetDeliveryByID(ctx context.Context, id uint) (*entities.Delivery, error) {
	return s.deliveryRepository.GetDeliveryByID(ctx, id)
}

func (s *deliveryService) ListDeliveries(ctx context.Context, q domain.DeliveryListQuery) ([]*entities.Delivery, error) {
	return s.deliveryRepository.ListDeliveries(ctx, q)
}

func (s *deliveryService) ListDriverDeliveries(ctx context.Context, driverID uint, status string, limit, offset int) ([]*entities.Delivery, error) {
	return s.deliveryRepository.ListDeliveries(ctx, domain.DeliveryListQuery{
		Status:   status,
		DriverID: int(driverID),
		Limit:    limit,
		Offset:   offset,
	})
}

func (s *deliveryService) UpdateDelivery(ctx context.Context, id uint, body map[string]any) (*entities.Delivery, error) {
	current, err := s.deliveryRepository.GetDeliveryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	var expectStatus *string

	if v, ok := body["status"]; ok {
		status, valid := v.(string)
		if !valid {
			return nil, domain.ValidateDeliveryStatus("")
		}
		if reqErr := domain.ValidateDeliveryStatus(status); reqErr != nil {
			return nil, reqErr
		}
		if reqErr := domain.ValidateDeliveryTransition(current.Status, status); reqErr != nil {
			return nil, reqErr
		}
		if status != current.Status {
			expectStatus = &current.Status
			updates["status"] = status
		}
	}
	if v, ok := body["pickupTime"]; ok {
		value, reqErr := nullableString(v, "pickupTime")
		if reqErr != nil {
			return nil, reqErr
		}
		updates["pickup_time"] = value
	}
	if v, ok := body["deliveryTime"]; ok {
		value, reqErr := nullableString(v, "deliveryTime")
		if reqErr != nil {
			return nil, reqErr
		}
		updates["delivery_time"] = value
	}
	if v, ok := body["pickupAddress"]; ok {
		address, valid := v.(string)
		if !valid || strings.TrimSpace(address) == "" {
			return nil, domain.BadRequest("INVALID_PICKUP_ADDRESS", "pickupAddress must be a non-empty string")
		}
		updates["pickup_address"] = strings.TrimSpace(address)
	}
	if v, ok := body["deliveryAddress"]; ok {
		address, valid := v.(string)
		if !valid || strings.TrimSpace(address) == "" {
			return nil, domain.BadRequest("INVALID_DELIVERY_ADDRESS", "deliveryAddress must be a non-empty string")
		}
		updates["delivery_address"] = strings.TrimSpace(address)
	}
	if v, ok := body["distanceKm"]; ok {
		if v == nil {
			updates["distance_km"] = nil
		} else {
			distance, valid := utils.ToFloat(v)
			if !valid {
				return nil, domain.BadRequest("INVALID_DISTANCE_KM", "distanceKm must be a number")
			}
			updates["distance_km"] = distance
		}
	}
	if v, ok := body["driverId"]; ok {
		driverID, valid := utils.ToInt(v)
		if !valid {
			return nil, domain.InvalidIntField("driverId")
		}
		updates["driver_id"] = driverID
	}

	updates["updated_at"] = time.Now()

	rows, err := s.deliveryRepository.UpdateDelivery(ctx, id, updates, expectStatus)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		if expectStatus != nil {
			return nil, domain.BadRequest("INVALID_STATUS_TRANSITION",
				fmt.Sprintf("Cannot change status from %s to %s", *expectStatus, updates["status"]))
		}
		return nil, domain.ErrDeliveryNotFound
	}

	return s.deliveryRepository.GetDeliveryByID(ctx, id)
}

func (s *deliveryService) DeleteDelivery(ctx context.Context, id uint) (*entities.Delivery, error) {
	delivery, err := s.deliveryRepository.GetDeliveryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.deliveryRepository.DeleteDelivery(ctx, id); err != nil {
		return nil, err
	}
	return delivery, nil
}

// newTrackingCode issues the public identifier handed to drivers and
// recipients for delivery tracking.
func newTrackingCode() string {
	return "TRK-" + strings.ToUpper(uuid.NewString()[:8])
}

func nullableString(v any, field string) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	value, ok := v.(string)
	if !ok {
		return nil, domain.BadRequest("INVALID_"+domain.UpperSnake(field), field+" must be a string or null")
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	return trimmed, nil
}
