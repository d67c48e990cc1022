package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelbot/internal/config"
	"travelbot/internal/models/request_models"
	"travelbot/internal/models/response_models"
	"travelbot/internal/services"
	"travelbot/pkg/middleware"
	"travelbot/pkg/utils"
)

const SessionCookie = "travel_sid"

type ChatController struct {
	chatService    services.ChatServiceInterface
	historyService services.HistoryServiceInterface
	sessionService services.SessionServiceInterface
	cfg            *config.Config
	logger         *zap.Logger
}

func NewChatController(
	chatService services.ChatServiceInterface,
	historyService services.HistoryServiceInterface,
	sessionService services.SessionServiceInterface,
	cfg *config.Config,
	logger *zap.Logger,
) *ChatController {
	return &ChatController{
		chatService:    chatService,
		historyService: historyService,
		sessionService: sessionService,
		cfg:            cfg,
		logger:         logger,
	}
}

func (cc *ChatController) sessionID(c *gin.Context) string {
	sid, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return sid
}

func (cc *ChatController) setSessionCookie(c *gin.Context, sid string) {
	if sid == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, sid, int(cc.cfg.SessionTTL.Seconds()), "/", "", !cc.cfg.IsDevelopment(), true)
}

// Chat godoc
// @Summary Ask the travel assistant
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat message"
// @Success 200 {object} response_models.ChatReply
// @Failure 400 {object} response_models.ChatRejection
// @Failure 429 {object} response_models.ChatRejection
// @Failure 500 {object} response_models.ChatRejection
// @Router /chat [post]
func (cc *ChatController) Chat(c *gin.Context) {
	accountID, _ := middleware.AccountID(c)
	input := services.ChatInput{
		ClientKey: c.ClientIP(),
		SessionID: cc.sessionID(c),
		AccountID: accountID,
	}

	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		cc.logger.Warn("unreadable chat request", zap.String("trace_id", c.GetString("trace_id")), zap.Error(err))
		result, failErr := cc.chatService.RecordFailure(c.Request.Context(), input, err)
		cc.setSessionCookie(c, result.SessionID)
		if errors.Is(failErr, utils.ErrRateLimitExceeded) {
			c.JSON(http.StatusTooManyRequests, response_models.ChatRejection{Reply: result.Reply, Error: "rate_limit_exceeded"})
			return
		}
		c.JSON(http.StatusInternalServerError, response_models.ChatRejection{Reply: result.Reply, Error: "internal_error"})
		return
	}
	input.Message = req.Message
	if input.Message == nil {
		input.Message = ""
	}

	result, err := cc.chatService.Handle(c.Request.Context(), input)
	cc.setSessionCookie(c, result.SessionID)

	var vErr *utils.ValidationError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response_models.ChatReply{Reply: result.Reply, ResponseTime: result.ResponseTime})
	case errors.Is(err, utils.ErrRateLimitExceeded):
		c.JSON(http.StatusTooManyRequests, response_models.ChatRejection{Reply: result.Reply, Error: "rate_limit_exceeded"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, response_models.ChatRejection{Reply: vErr.Message, Error: "validation_failed", Reason: vErr.Reason})
	default:
		c.JSON(http.StatusInternalServerError, response_models.ChatRejection{Reply: utils.MsgInternalError, Error: "internal_error"})
	}
}

// History godoc
// @Summary Transcript of the current chat session, oldest first
// @Tags Chat
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} response_models.HistoryPage
// @Router /chat/history [get]
func (cc *ChatController) History(c *gin.Context) {
	page, perPage := pageParams(c)

	token, found, err := cc.sessionService.LookupSessionToken(c.Request.Context(), cc.sessionID(c))
	if err != nil {
		cc.logger.Warn("session lookup failed", zap.Error(err))
	}
	if !found {
		c.JSON(http.StatusOK, &response_models.HistoryPage{History: []response_models.HistoryItem{}, Page: 1, NumPages: 1})
		return
	}

	history, err := cc.historyService.ListBySession(c.Request.Context(), token, page, perPage)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// ClearHistory godoc
// @Summary Delete every exchange of the current chat session
// @Tags Chat
// @Produce json
// @Success 200 {object} response_models.ClearHistoryResponse
// @Router /chat/history [delete]
func (cc *ChatController) ClearHistory(c *gin.Context) {
	token, _, err := cc.sessionService.LookupSessionToken(c.Request.Context(), cc.sessionID(c))
	if err != nil {
		cc.logger.Warn("session lookup failed", zap.Error(err))
	}

	deleted, err := cc.historyService.Clear(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response_models.ClearHistoryResponse{Success: false, Message: utils.MsgInternalError})
		return
	}

	c.JSON(http.StatusOK, response_models.ClearHistoryResponse{
		Success: true,
		Message: "Đã xóa lịch sử trò chuyện.",
		Deleted: deleted,
	})
}
