package db_models

import "time"

// CacheEntry is a key/value row used when no Redis is configured, so chat
// sessions outlive a restart. A nil ExpiresAt never expires.
type CacheEntry struct {
	CacheKey  string     `gorm:"primaryKey;size:256"`
	Value     string     `gorm:"type:text;not null"`
	ExpiresAt *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
