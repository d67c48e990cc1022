package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// ChatExchange is one user message and the reply produced for it. Rows are
// never updated; a session clear deletes them in bulk.
type ChatExchange struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	SessionToken string     `gorm:"size:100;not null;index"`
	AccountID    *uuid.UUID `gorm:"type:uuid;index"`
	UserMessage  string     `gorm:"type:text;not null"`
	BotResponse  string     `gorm:"type:text;not null"`
	IsError      bool       `gorm:"not null;default:false"`
	Timestamp    time.Time  `gorm:"not null;index"`
	ResponseTime *float64
	Metadata     datatypes.JSON
}

// ExchangeMetadata is stored in ChatExchange.Metadata.
type ExchangeMetadata struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	Outcome  string `json:"outcome"`
}
