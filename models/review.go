package models

import "time"

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"not null;uniqueIndex:idx_user_bag" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BagID      uint      `gorm:"not null;uniqueIndex:idx_user_bag" json:"bag_id"`
	Bag        Bag       `gorm:"foreignKey:BagID" json:"bag,omitempty"`
	Rating     int       `gorm:"not null" json:"rating"` // 1..5
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
