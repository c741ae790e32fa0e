package model

import "time"

// User exists for created_by/updated_by attribution. The server resolves
// a single default user at startup; there is no auth layer.
type User struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Email       string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	GoogleID    *string        `gorm:"size:255" json:"google_id"`
	Preferences map[string]any `gorm:"serializer:json" json:"preferences"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
