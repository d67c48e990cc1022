package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"travelbot/internal/config"
	"travelbot/internal/models/db_models"
	"travelbot/internal/models/response_models"
	"travelbot/internal/repositories"
	"travelbot/pkg/utils"
)

type HistoryServiceInterface interface {
	// ListBySession returns a session transcript, oldest first.
	ListBySession(ctx context.Context, sessionToken string, page, perPage int) (*response_models.HistoryPage, error)
	// ListByAccount returns everything an account has sent, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, perPage int) (*response_models.HistoryPage, error)
	Clear(ctx context.Context, sessionToken string) (int64, error)
}

type HistoryService struct {
	historyRepo repositories.ChatHistoryRepository
	maxPerPage  int
	logger      *zap.Logger
}

func NewHistoryService(historyRepo repositories.ChatHistoryRepository, cfg *config.Config, logger *zap.Logger) HistoryServiceInterface {
	return &HistoryService{
		historyRepo: historyRepo,
		maxPerPage:  cfg.MaxChatHistory,
		logger:      logger,
	}
}

func (h *HistoryService) ListBySession(ctx context.Context, sessionToken string, page, perPage int) (*response_models.HistoryPage, error) {
	total, err := h.historyRepo.CountBySession(ctx, sessionToken)
	if err != nil {
		h.logger.Error("count session history", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	p := paginate(total, page, perPage, h.maxPerPage)
	exchanges, err := h.historyRepo.ListBySession(ctx, sessionToken, p.offset, p.perPage)
	if err != nil {
		h.logger.Error("list session history", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return p.page(exchanges, false), nil
}

func (h *HistoryService) ListByAccount(ctx context.Context, accountID uuid.UUID, page, perPage int) (*response_models.HistoryPage, error) {
	total, err := h.historyRepo.CountByAccount(ctx, accountID)
	if err != nil {
		h.logger.Error("count account history", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	p := paginate(total, page, perPage, h.maxPerPage)
	exchanges, err := h.historyRepo.ListByAccount(ctx, accountID, p.offset, p.perPage)
	if err != nil {
		h.logger.Error("list account history", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return p.page(exchanges, true), nil
}

func (h *HistoryService) Clear(ctx context.Context, sessionToken string) (int64, error) {
	if sessionToken == "" {
		return 0, nil
	}

	deleted, err := h.historyRepo.DeleteBySession(ctx, sessionToken)
	if err != nil {
		h.logger.Error("clear session history", zap.Error(err))
		return 0, utils.ErrDatabaseError
	}
	return deleted, nil
}

type pagination struct {
	total    int64
	number   int
	numPages int
	perPage  int
	offset   int
}

// paginate clamps the requested page into range: below 1 gives the first
// page, past the end gives the last.
func paginate(total int64, page, perPage, maxPerPage int) pagination {
	if perPage < 1 {
		perPage = maxPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	numPages := int((total + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		numPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > numPages {
		page = numPages
	}

	return pagination{
		total:    total,
		number:   page,
		numPages: numPages,
		perPage:  perPage,
		offset:   (page - 1) * perPage,
	}
}

func (p pagination) page(exchanges []db_models.ChatExchange, withSession bool) *response_models.HistoryPage {
	items := make([]response_models.HistoryItem, 0, len(exchanges))
	for _, e := range exchanges {
		item := response_models.HistoryItem{
			UserMessage:  e.UserMessage,
			BotResponse:  e.BotResponse,
			Timestamp:    utils.FormatHistoryVN(e.Timestamp),
			ResponseTime: e.ResponseTime,
			IsError:      e.IsError,
		}
		if withSession {
			item.SessionID = e.SessionToken
		}
		items = append(items, item)
	}

	return &response_models.HistoryPage{
		History:     items,
		Total:       p.total,
		Page:        p.number,
		NumPages:    p.numPages,
		HasNext:     p.number < p.numPages,
		HasPrevious: p.number > 1,
	}
}
