package entities

type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `json:"name"`
	Email        string  `gorm:"uniqueIndex" json:"email"`
	Password     string  `json:"-"`
	Role         string  `json:"role"` // donor, ngo, shelter, logistics, volunteer, admin
	Organization *string `json:"organization,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Location     *string `json:"location,omitempty"`

	Timestamp
}
