package models

import "time"

// ClientProfile extends an Account with client contact details. The unique
// index on AccountID enforces at most one profile per account and is what
// makes the get-or-create repair safe under concurrent requests.
type ClientProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AccountID uint      `gorm:"not null;uniqueIndex" json:"account_id"`
	Account   *Account  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"account,omitempty"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ClientProfile) TableName() string {
	return "client_profiles"
}

// RealtorProfile extends an Account with licensing details. License numbers
// are globally unique.
type RealtorProfile struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AccountID       uint      `gorm:"not null;uniqueIndex" json:"account_id"`
	Account         *Account  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"account,omitempty"`
	LicenseNumber   string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"license_number"`
	Phone           string    `gorm:"type:varchar(20);not null" json:"phone"`
	ExperienceYears int       `gorm:"not null;default:0" json:"experience_years"`
	Bio             string    `gorm:"type:text" json:"bio,omitempty"`
	PhotoPath       string    `gorm:"type:varchar(255)" json:"photo_path,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RealtorProfile) TableName() string {
	return "realtor_profiles"
}
