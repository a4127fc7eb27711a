package domain

var (
	ErrNotificationNotFound = NotFound("NOTIFICATION_NOT_FOUND", "Notification not found")

	NotificationTypes = []string{"new_donation", "claim_accepted", "delivery_update", "alert"}
)

type (
	CreateNotificationRequest struct {
		UserID  any     `json:"userId" validate:"required"`
		Title   *string `json:"title" validate:"required"`
		Message *string `json:"message" validate:"required"`
		Type    *string `json:"type" validate:"required,oneof=new_donation claim_accepted delivery_update alert"`
	}

	NotificationListQuery struct {
		IsRead *bool
		Limit  int
		Offset int
	}
)

func (r *CreateNotificationRequest) Normalize() {
	r.Title = trimPtr(r.Title)
	r.Message = trimPtr(r.Message)
	r.Type = trimPtr(r.Type)
}
