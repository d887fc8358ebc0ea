package model

import "time"

// RateLimitRecord is one counting window for an (ip, user) pair. Records are
// aggregated on read and never replaced in place.
type RateLimitRecord struct {
	ID           string    `json:"id" gorm:"primaryKey;type:text;not null"`
	IPAddress    string    `json:"ip_address" gorm:"not null;size:64;index:idx_rate_limit_lookup,priority:1"`
	UserID       *string   `json:"user_id,omitempty" gorm:"size:255;index:idx_rate_limit_lookup,priority:2"`
	RequestCount int       `json:"request_count" gorm:"not null;default:0"`
	WindowStart  time.Time `json:"window_start" gorm:"not null;index:idx_rate_limit_lookup,priority:3"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null"`
}
