package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"travelbot/internal/models/db_models"
	"travelbot/internal/models/request_models"
	"travelbot/internal/models/response_models"
	"travelbot/internal/repositories"
	"travelbot/pkg/utils"
)

const minPasswordLength = 6

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	if len(request.Password) < minPasswordLength {
		return nil, utils.ErrPasswordTooShort
	}

	email := normalizeEmail(request.Email)
	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		a.logger.Error("find account by email", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		a.logger.Error("hash password", zap.Error(err))
		return nil, utils.ErrInternal
	}

	account := &db_models.Account{
		Name:         strings.TrimSpace(request.DisplayName),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
	}
	profile := &db_models.UserProfile{PreferredLanguage: db_models.DefaultPreferredLanguage}

	if err := a.accountRepo.InsertWithProfile(ctx, account, profile); err != nil {
		a.logger.Error("insert account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info("account created", zap.String("account_id", account.ID.String()))
	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		a.logger.Error("find account by email", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	// Unknown email and wrong password are indistinguishable to the caller.
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, account.Role)
	if err != nil {
		a.logger.Error("sign token", zap.Error(err))
		return nil, utils.ErrInternal
	}

	a.logger.Debug("login completed", zap.Duration("took", time.Since(startTime)))

	return &response_models.AccountLoginResponse{
		Token:     token,
		ExpiresIn: int64(utils.TokenLifetime.Seconds()),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		a.logger.Error("find account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return toProfileResponse(account), nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		a.logger.Error("find account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if account == nil || account.Profile == nil {
		return nil, utils.ErrAccountNotFound
	}

	profile := account.Profile
	if request.PreferredLanguage != nil {
		profile.PreferredLanguage = *request.PreferredLanguage
	}
	if request.TravelPreferences != nil {
		profile.TravelPreferences = strings.TrimSpace(*request.TravelPreferences)
	}

	if err := a.accountRepo.UpdateProfile(ctx, profile); err != nil {
		a.logger.Error("update profile", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return toProfileResponse(account), nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}
}

func toProfileResponse(account *db_models.Account) *response_models.ProfileResponse {
	resp := &response_models.ProfileResponse{
		Account:           toAccountResponse(account),
		PreferredLanguage: db_models.DefaultPreferredLanguage,
	}
	if account.Profile != nil {
		resp.PreferredLanguage = account.Profile.PreferredLanguage
		resp.TravelPreferences = account.Profile.TravelPreferences
	}
	return resp
}
