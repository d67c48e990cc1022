package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelbot/internal/infra"
	"travelbot/internal/models/db_models"
)

type AccountRepository interface {
	// InsertWithProfile stores the account and its profile atomically.
	InsertWithProfile(ctx context.Context, account *db_models.Account, profile *db_models.UserProfile) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindProfileByAccountId(ctx context.Context, accountID uuid.UUID) (*db_models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile *db_models.UserProfile) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertWithProfile(ctx context.Context, account *db_models.Account, profile *db_models.UserProfile) (err error) {
	tx := infra.StartTransaction(a.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() { err = infra.ReleaseTransaction(tx, err) }()

	if err = tx.Omit("Profile").Create(account).Error; err != nil {
		return err
	}

	profile.AccountID = account.ID
	if err = tx.Create(profile).Error; err != nil {
		return err
	}
	account.Profile = profile
	return nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).Preload("Profile").First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindProfileByAccountId(ctx context.Context, accountID uuid.UUID) (*db_models.UserProfile, error) {
	var profile db_models.UserProfile
	err := a.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (a *accountRepository) UpdateProfile(ctx context.Context, profile *db_models.UserProfile) error {
	return a.db.WithContext(ctx).
		Model(profile).
		Select("PreferredLanguage", "TravelPreferences", "UpdatedAt").
		Updates(profile).Error
}
