package model

import "time"

type Client struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Email       string         `gorm:"size:255" json:"email"`
	Phone       string         `gorm:"size:50" json:"phone"`
	Notes       string         `gorm:"type:text" json:"notes"`
	ContactInfo map[string]any `gorm:"serializer:json" json:"contact_info"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedBy   *string        `gorm:"size:36" json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
