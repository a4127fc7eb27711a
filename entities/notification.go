package entities

type Notification struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  uint   `json:"userId"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"` // new_donation, claim_accepted, delivery_update, alert
	IsRead  bool   `gorm:"default:false" json:"isRead"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
