package donation

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"
	"SmartServe-Backend/internal/utils"
	"SmartServe-Backend/internal/utils/storage"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest) (*entities.Donation, error)
		GetDonationByID(ctx context.Context, id uint) (*entities.Donation, error)
		ListDonations(ctx context.Context, q domain.DonationListQuery) ([]*entities.Donation, error)
		ListDonorDonations(ctx context.Context, donorID uint, status string, limit, offset int) ([]*entities.Donation, error)
		UpdateDonation(ctx context.Context, id uint, body map[string]any) (*entities.Donation, error)
		DeleteDonation(ctx context.Context, id uint) (*entities.Donation, error)
		AttachImage(ctx context.Context, id uint, file *multipart.FileHeader) (*entities.Donation, error)
	}

	donationService struct {
		donationRepository DonationRepository
		s3                 storage.AwsS3
	}
)

func NewDonationService(donationRepository DonationRepository, s3 storage.AwsS3) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		s3:                 s3,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest) (*entities.Donation, error) {
	donorID, ok := utils.ToInt(req.DonorID)
	if !ok {
		return nil, domain.InvalidIntField("donorId")
	}

	if req.Quantity == nil {
		return nil, domain.MissingField("quantity")
	}
	quantity, ok := utils.ToInt(req.Quantity)
	if !ok || quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	donation := &entities.Donation{
		DonorID:        uint(donorID),
		FoodType:       *req.FoodType,
		Title:          *req.Title,
		Quantity:       quantity,
		Unit:           *req.Unit,
		ExpiryDate:     *req.ExpiryDate,
		PickupLocation: *req.PickupLocation,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		AICategory:     req.AICategory,
		Status:         domain.DonationStatusAvailable,
	}
	if req.IsRecurring != nil {
		donation.IsRecurring = *req.IsRecurring
	}
	if req.AIConfidence != nil {
		confidence, ok := utils.ToFloat(req.AIConfidence)
		if !ok {
			return nil, domain.BadRequest("INVALID_AI_CONFIDENCE", "aiConfidence must be a valid number")
		}
		donation.AIConfidence = &confidence
	}
	if req.Distance != nil {
		distance, ok := utils.ToFloat(req.Distance)
		if !ok {
			return nil, domain.BadRequest("INVALID_DISTANCE", "distance must be a valid number")
		}
		donation.Distance = &distance
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}
	return donation, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id uint) (*entities.Donation, error) {
	return s.donationRepository.GetDonationByID(ctx, id)
}

func (s *donationService) ListDonations(ctx context.Context, q domain.DonationListQuery) ([]*entities.Donation, error) {
	return s.donationRepository.ListDonations(ctx, q)
}

func (s *donationService) ListDonorDonations(ctx context.Context, donorID uint, status string, limit, offset int) ([]*entities.Donation, error) {
	return s.donationRepository.ListDonorDonations(ctx, donorID, status, limit, offset)
}

// UpdateDonation applies partial-update semantics: absent keys leave the
// column unchanged, explicit null clears nullable optional fields. Every
// present field is validated before any write happens.
func (s *donationService) UpdateDonation(ctx context.Context, id uint, body map[string]any) (*entities.Donation, error) {
	current, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	var expectStatus *string

	if v, ok := body["foodType"]; ok {
		foodType, valid := trimmedString(v)
		if valid {
			valid = contains(domain.DonationFoodTypes, foodType)
		}
		if !valid {
			return nil, domain.BadRequest("INVALID_FOOD_TYPE", "foodType must be one of: "+strings.Join(domain.DonationFoodTypes, ", "))
		}
		updates["food_type"] = foodType
	}
	if v, ok := body["title"]; ok {
		if title, valid := trimmedString(v); valid && title != "" {
			updates["title"] = title
		}
	}
	if v, ok := body["quantity"]; ok {
		quantity, valid := utils.ToInt(v)
		if !valid || quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		updates["quantity"] = quantity
	}
	if v, ok := body["unit"]; ok {
		unit, valid := trimmedString(v)
		if valid {
			valid = contains(domain.DonationUnits, unit)
		}
		if !valid {
			return nil, domain.BadRequest("INVALID_UNIT", "unit must be one of: "+strings.Join(domain.DonationUnits, ", "))
		}
		updates["unit"] = unit
	}
	if v, ok := body["expiryDate"]; ok {
		if expiry, valid := trimmedString(v); valid && expiry != "" {
			updates["expiry_date"] = expiry
		}
	}
	if v, ok := body["pickupLocation"]; ok {
		if location, valid := trimmedString(v); valid && location != "" {
			updates["pickup_location"] = location
		}
	}
	if v, ok := body["description"]; ok {
		updates["description"] = nullableString(v)
	}
	if v, ok := body["imageUrl"]; ok {
		updates["image_url"] = nullableString(v)
	}
	if v, ok := body["aiCategory"]; ok {
		updates["ai_category"] = nullableString(v)
	}
	if v, ok := body["aiConfidence"]; ok {
		if v == nil {
			updates["ai_confidence"] = nil
		} else {
			confidence, valid := utils.ToFloat(v)
			if !valid {
				return nil, domain.BadRequest("INVALID_AI_CONFIDENCE", "aiConfidence must be a valid number")
			}
			updates["ai_confidence"] = confidence
		}
	}
	if v, ok := body["distance"]; ok {
		if v == nil {
			updates["distance"] = nil
		} else {
			distance, valid := utils.ToFloat(v)
			if !valid {
				return nil, domain.BadRequest("INVALID_DISTANCE", "distance must be a valid number")
			}
			updates["distance"] = distance
		}
	}
	if v, ok := body["isRecurring"]; ok {
		recurring, valid := v.(bool)
		if !valid {
			return nil, domain.BadRequest("INVALID_IS_RECURRING", "isRecurring must be a boolean")
		}
		updates["is_recurring"] = recurring
	}
	if v, ok := body["status"]; ok {
		status, valid := trimmedString(v)
		if !valid {
			return nil, domain.ValidateDonationStatus("")
		}
		if reqErr := domain.ValidateDonationStatus(status); reqErr != nil {
			return nil, reqErr
		}
		if reqErr := domain.ValidateDonationTransition(current.Status, status); reqErr != nil {
			return nil, reqErr
		}
		if status != current.Status {
			expectStatus = &current.Status
			updates["status"] = status
		}
	}

	updates["updated_at"] = time.Now()

	rows, err := s.donationRepository.UpdateDonation(ctx, id, updates, expectStatus)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		if expectStatus != nil {
			// The status moved between our read and the gated write.
			return nil, domain.BadRequest("INVALID_STATUS_TRANSITION",
				fmt.Sprintf("Cannot change status from %s to %s", *expectStatus, updates["status"]))
		}
		return nil, domain.ErrDonationNotFound
	}

	return s.donationRepository.GetDonationByID(ctx, id)
}

func (s *donationService) DeleteDonation(ctx context.Context, id uint) (*entities.Donation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.donationRepository.DeleteDonation(ctx, id); err != nil {
		return nil, err
	}
	return donation, nil
}

func (s *donationService) AttachImage(ctx context.Context, id uint, file *multipart.FileHeader) (*entities.Donation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("donation-%d", donation.ID),
		file,
		"donations",
		storage.AllowImage...,
	)
	if err != nil {
		if err == storage.ErrFileTypeNotAllowed {
			return nil, domain.BadRequest("INVALID_FILE_TYPE", "File type not allowed")
		}
		return nil, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)
	updates := map[string]interface{}{
		"image_url":  imageURL,
		"updated_at": time.Now(),
	}
	if _, err := s.donationRepository.UpdateDonation(ctx, id, updates, nil); err != nil {
		return nil, err
	}

	donation.ImageURL = &imageURL
	return donation, nil
}

// trimmedString reports whether the decoded JSON value is a string and
// returns it trimmed.
func trimmedString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// nullableString maps an optional text field to its stored value:
// explicit null and empty-after-trim both clear the column.
func nullableString(v any) interface{} {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return trimmed
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
