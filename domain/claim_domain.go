package domain

var (
	MessageClaimDeleted = "Claim deleted successfully"

	ErrClaimNotFound = NotFound("CLAIM_NOT_FOUND", "Claim not found")
)

type (
	CreateClaimRequest struct {
		DonationID  any `json:"donationId" validate:"required"`
		RecipientID any `json:"recipientId" validate:"required"`
	}

	ClaimListQuery struct {
		Status      string
		RecipientID int
		Limit       int
		Offset      int
	}
)
