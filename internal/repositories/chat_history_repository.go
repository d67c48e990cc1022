package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelbot/internal/models/db_models"
)

type ChatHistoryRepository interface {
	Create(ctx context.Context, exchange *db_models.ChatExchange) error
	// ListBySession returns a session transcript, oldest first.
	ListBySession(ctx context.Context, sessionToken string, offset, limit int) ([]db_models.ChatExchange, error)
	CountBySession(ctx context.Context, sessionToken string) (int64, error)
	// ListByAccount returns an account's exchanges, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID, offset, limit int) ([]db_models.ChatExchange, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	DeleteBySession(ctx context.Context, sessionToken string) (int64, error)
}

type chatHistoryRepository struct {
	db *gorm.DB
}

func NewChatHistoryRepository(db *gorm.DB) ChatHistoryRepository {
	return &chatHistoryRepository{db: db}
}

func (r *chatHistoryRepository) Create(ctx context.Context, exchange *db_models.ChatExchange) error {
	return r.db.WithContext(ctx).Create(exchange).Error
}

func (r *chatHistoryRepository) ListBySession(ctx context.Context, sessionToken string, offset, limit int) ([]db_models.ChatExchange, error) {
	var exchanges []db_models.ChatExchange
	err := r.db.WithContext(ctx).
		Where("session_token = ?", sessionToken).
		Order("timestamp ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&exchanges).Error
	return exchanges, err
}

func (r *chatHistoryRepository) CountBySession(ctx context.Context, sessionToken string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.ChatExchange{}).
		Where("session_token = ?", sessionToken).
		Count(&total).Error
	return total, err
}

func (r *chatHistoryRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, offset, limit int) ([]db_models.ChatExchange, error) {
	var exchanges []db_models.ChatExchange
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("timestamp DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&exchanges).Error
	return exchanges, err
}

func (r *chatHistoryRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.ChatExchange{}).
		Where("account_id = ?", accountID).
		Count(&total).Error
	return total, err
}

func (r *chatHistoryRepository) DeleteBySession(ctx context.Context, sessionToken string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("session_token = ?", sessionToken).
		Delete(&db_models.ChatExchange{})
	return result.RowsAffected, result.Error
}
