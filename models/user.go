package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	IsVIP     bool      `json:"is_vip" gorm:"column:is_vip;default:false"`
	IsAdmin   bool      `json:"is_admin" gorm:"default:false"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Deleting a user removes their posts at the store level.
	Posts []Post `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}
