package models

import "time"

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `json:"-"` // bcrypt hash, empty for Google-only accounts
	GoogleID  string    `gorm:"index" json:"-"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	Orders    []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
