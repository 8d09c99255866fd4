package models

import "time"

// DisplayKey represents the display_keys table
// Used for authenticating wall-mounted dashboard panels that poll the
// read-only room feed
type DisplayKey struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Label     string     `gorm:"size:100;not null" json:"label"`
	KeyHash   string     `gorm:"size:255;not null;uniqueIndex" json:"-"`
	CreatedAt time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
}

// TableName specifies the table name for DisplayKey model
func (DisplayKey) TableName() string {
	return "display_keys"
}

// DisplayKeyResponse is used when returning display keys to the client
// Includes the plain-text key (only shown once during generation)
type DisplayKeyResponse struct {
	ID        uint       `json:"id"`
	Label     string     `json:"label"`
	Key       string     `json:"key,omitempty"` // Plain-text key, only populated during generation
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at"`
	IsActive  bool       `json:"is_active"`
}
