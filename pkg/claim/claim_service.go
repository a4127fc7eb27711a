package claim

import (
	"context"
	"fmt"
	"time"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"
	"SmartServe-Backend/internal/utils"
)

type (
	ClaimService interface {
		CreateClaim(ctx context.Context, req domain.CreateClaimRequest) (*entities.Claim, error)
		ListClaims(ctx context.Context, q domain.ClaimListQuery) ([]*entities.Claim, error)
		ListRecipientClaims(ctx context.Context, recipientID uint, status string, limit, offset int) ([]*entities.Claim, error)
		UpdateClaim(ctx context.Context, id uint, body map[string]any) (*entities.Claim, error)
		DeleteClaim(ctx context.Context, id uint) (*entities.Claim, error)
	}

	claimService struct {
		claimRepository ClaimRepository
	}
)

func NewClaimService(claimRepository ClaimRepository) ClaimService {
	return &claimService{claimRepository: claimRepository}
}

func (s *claimService) CreateClaim(ctx context.Context, req domain.CreateClaimRequest) (*entities.Claim, error) {
	donationID, ok := utils.ToInt(req.DonationID)
	if !ok {
		return nil, domain.InvalidIntField("donationId")
	}
	recipientID, ok := utils.ToInt(req.RecipientID)
	if !ok {
		return nil, domain.InvalidIntField("recipientId")
	}

	claim := &entities.Claim{
		DonationID:  uint(donationID),
		RecipientID: uint(recipientID),
		Status:      domain.ClaimStatusPending,
		ClaimedAt:   time.Now(),
	}
	if err := s.claimRepository.CreateClaim(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}

func (s *claimService) ListClaims(ctx context.Context, q domain.ClaimListQuery) ([]*entities.Claim, error) {
	return s.claimRepository.ListClaims(ctx, q)
}

func (s *claimService) ListRecipientClaims(ctx context.Context, recipientID uint, status string, limit, offset int) ([]*entities.Claim, error) {
	return s.claimRepository.ListClaims(ctx, domain.ClaimListQuery{
		Status:      status,
		RecipientID: int(recipientID),
		Limit:       limit,
		Offset:      offset,
	})
}

func (s *claimService) UpdateClaim(ctx context.Context, id uint, body map[string]any) (*entities.Claim, error) {
	current, err := s.claimRepository.GetClaimByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	var expectStatus *string

	if v, ok := body["status"]; ok {
		status, valid := v.(string)
		if !valid {
			return nil, domain.ValidateClaimStatus("")
		}
		if reqErr := domain.ValidateClaimStatus(status); reqErr != nil {
			return nil, reqErr
		}
		if reqErr := domain.ValidateClaimTransition(current.Status, status); reqErr != nil {
			return nil, reqErr
		}
		if status != current.Status {
			expectStatus = &current.Status
			updates["status"] = status
		}
	}
	if v, ok := body["donationId"]; ok {
		donationID, valid := utils.ToInt(v)
		if !valid {
			return nil, domain.InvalidIntField("donationId")
		}
		updates["donation_id"] = donationID
	}
	if v, ok := body["recipientId"]; ok {
		recipientID, valid := utils.ToInt(v)
		if !valid {
			return nil, domain.InvalidIntField("recipientId")
		}
		updates["recipient_id"] = recipientID
	}

	if len(updates) == 0 {
		return current, nil
	}

	rows, err := s.claimRepository.UpdateClaim(ctx, id, updates, expectStatus)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		if expectStatus != nil {
			return nil, domain.BadRequest("INVALID_STATUS_TRANSITION",
				fmt.Sprintf("Cannot change status from %s to %s", *expectStatus, updates["status"]))
		}
		return nil, domain.ErrClaimNotFound
	}

	return s.claimRepository.GetClaimByID(ctx, id)
}

func (s *claimService) DeleteClaim(ctx context.Context, id uint) (*entities.Claim, error) {
	claim, err := s.claimRepository.GetClaimByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.claimRepository.DeleteClaim(ctx, id); err != nil {
		return nil, err
	}
	return claim, nil
}
