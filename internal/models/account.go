package models

import (
	"strings"
	"time"
)

// Account is the authenticated identity record shared by clients and realtors.
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(150);not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"type:varchar(254);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(128);not null" json:"-"`
	FirstName    string    `gorm:"type:varchar(30)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(150)" json:"last_name"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Account) TableName() string {
	return "accounts"
}

func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
