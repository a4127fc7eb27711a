package domain

var (
	ErrInvalidEmailFormat = BadRequest("INVALID_EMAIL_FORMAT", "Invalid email format")

	PartnershipStatuses = []string{"pending", "approved", "rejected"}
)

type (
	CreatePartnershipRequest struct {
		OrganizationName *string `json:"organizationName"`
		ContactName      *string `json:"contactName"`
		Email            *string `json:"email"`
		Phone            *string `json:"phone"`
		City             *string `json:"city"`
		PartnershipType  *string `json:"partnershipType"`
		Message          *string `json:"message"`
	}

	PartnershipListQuery struct {
		Status string
		Limit  int
		Offset int
	}
)

func (r *CreatePartnershipRequest) Normalize() {
	r.OrganizationName = trimPtr(r.OrganizationName)
	r.ContactName = trimPtr(r.ContactName)
	r.Email = trimPtr(r.Email)
	r.Phone = trimPtr(r.Phone)
	r.City = trimPtr(r.City)
	r.PartnershipType = trimPtr(r.PartnershipType)
	r.Message = trimPtr(r.Message)
}
