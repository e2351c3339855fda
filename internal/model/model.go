package model

import "time"

// WebhookEvent records a processed gateway notification so redelivered
// events can be acknowledged without reprocessing.
type WebhookEvent struct {
	EventID     string `gorm:"primaryKey;size:128;uniqueIndex;not null"`
	Provider    string `gorm:"size:32;index;not null"`
	EventType   string `gorm:"size:64;index"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}
