package db_models

import "github.com/google/uuid"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	DefaultPreferredLanguage = "vi"
)

type Account struct {
	BaseModel
	Name         string       `gorm:"size:150"`
	Email        string       `gorm:"size:254;unique;not null"`
	PasswordHash string       `gorm:"not null"`
	Role         string       `gorm:"size:20;not null;default:user"`
	Profile      *UserProfile `gorm:"constraint:OnDelete:CASCADE"`
}

type UserProfile struct {
	BaseModel
	AccountID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PreferredLanguage string    `gorm:"size:10;not null;default:vi"`
	TravelPreferences string    `gorm:"type:text"`
}
