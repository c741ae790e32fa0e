package model

import "time"

// Category is a work-type classification, same shape as Column plus an
// optional icon.
type Category struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Slug      string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	ColorCode string    `gorm:"size:7;not null" json:"color_code"`
	IconEmoji string    `gorm:"size:10" json:"icon_emoji"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
