package partnership

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"
	"SmartServe-Backend/internal/utils/mailing"

	"github.com/gofiber/fiber/v2/log"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type (
	PartnershipService interface {
		CreatePartnership(ctx context.Context, req domain.CreatePartnershipRequest) (*entities.Partnership, error)
		ListPartnerships(ctx context.Context, q domain.PartnershipListQuery) ([]*entities.Partnership, error)
	}

	partnershipService struct {
		partnershipRepository PartnershipRepository
	}
)

func NewPartnershipService(partnershipRepository PartnershipRepository) PartnershipService {
	return &partnershipService{partnershipRepository: partnershipRepository}
}

func (s *partnershipService) CreatePartnership(ctx context.Context, req domain.CreatePartnershipRequest) (*entities.Partnership, error) {
	req.Normalize()

	for _, f := range []struct {
		field string
		value *string
	}{
		{"organizationName", req.OrganizationName},
		{"contactName", req.ContactName},
		{"email", req.Email},
		{"city", req.City},
		{"partnershipType", req.PartnershipType},
	} {
		if f.value == nil || *f.value == "" {
			return nil, domain.MissingField(f.field)
		}
	}
	if !emailPattern.MatchString(*req.Email) {
		return nil, domain.ErrInvalidEmailFormat
	}

	partnership := &entities.Partnership{
		OrganizationName: *req.OrganizationName,
		ContactName:      *req.ContactName,
		Email:            strings.ToLower(*req.Email),
		Phone:            req.Phone,
		City:             *req.City,
		PartnershipType:  *req.PartnershipType,
		Message:          req.Message,
		Status:           "pending",
	}
	if err := s.partnershipRepository.CreatePartnership(ctx, partnership); err != nil {
		return nil, err
	}

	// Acknowledgment mail is best effort; a mailer outage must not fail
	// the submission.
	go func(p entities.Partnership) {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>We received the partnership application for %s and will review it shortly.</p>",
			p.ContactName, p.OrganizationName,
		)
		if err := mailing.SendMail(p.Email, "Partnership application received", body); err != nil {
			log.Errorf("partnership acknowledgment mail to %s failed: %v", p.Email, err)
		}
	}(*partnership)

	return partnership, nil
}

func (s *partnershipService) ListPartnerships(ctx context.Context, q domain.PartnershipListQuery) ([]*entities.Partnership, error) {
	return s.partnershipRepository.ListPartnerships(ctx, q)
}
