package models

import (
	"time"
)

type Post struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Title      string    `json:"title" gorm:"size:100;not null"`
	Body       string    `json:"body" gorm:"type:text"`
	Image      string    `json:"image" gorm:"type:text"`
	OwnerID    uint      `json:"owner_id" gorm:"not null;index"`
	Owner      User      `json:"-" gorm:"foreignKey:OwnerID"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Date       DateOnly  `json:"date" gorm:"type:date"`
	Time       TimeOfDay `json:"time" gorm:"type:time"`
	IsFree     bool      `json:"is_free"`
	CategoryID *uint     `json:"category_id"`
	Category   *Category `json:"-" gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
