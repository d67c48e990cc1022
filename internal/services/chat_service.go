package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"travelbot/internal/config"
	"travelbot/internal/models/db_models"
	"travelbot/internal/repositories"
	"travelbot/pkg/llm"
	"travelbot/pkg/utils"
)

const (
	MsgRateLimited = "Bạn đã gửi quá nhiều yêu cầu. Vui lòng thử lại sau ít phút."
	MsgFallback    = "Xin lỗi, trợ lý du lịch đang tạm thời không phản hồi được. Vui lòng thử lại sau."

	unknownMessage = "Unknown"
)

type ChatInput struct {
	ClientKey string
	// SessionID is the client-held session id; empty for a new client.
	SessionID string
	AccountID *uuid.UUID
	Message   any
}

type ChatResult struct {
	Reply        string
	ResponseTime float64
	SessionID    string
}

type ChatServiceInterface interface {
	Handle(ctx context.Context, in ChatInput) (ChatResult, error)
	// RecordFailure logs an error exchange for a request that failed before
	// reaching the pipeline, e.g. an unreadable body. It counts against the
	// client's rate limit like any other chat request.
	RecordFailure(ctx context.Context, in ChatInput, cause error) (ChatResult, error)
}

type ChatService struct {
	limiter     RateLimiterInterface
	validator   InputValidatorInterface
	sessions    SessionServiceInterface
	contexts    ContextBuilderInterface
	completer   llm.ChatCompleter
	historyRepo repositories.ChatHistoryRepository
	logger      *zap.Logger

	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
	now         func() time.Time
}

func NewChatService(
	limiter RateLimiterInterface,
	validator InputValidatorInterface,
	sessions SessionServiceInterface,
	contexts ContextBuilderInterface,
	completer llm.ChatCompleter,
	historyRepo repositories.ChatHistoryRepository,
	cfg *config.Config,
	logger *zap.Logger,
) ChatServiceInterface {
	return &ChatService{
		limiter:     limiter,
		validator:   validator,
		sessions:    sessions,
		contexts:    contexts,
		completer:   completer,
		historyRepo: historyRepo,
		logger:      logger,
		model:       cfg.ActiveModel(),
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.AITimeout,
		now:         time.Now,
	}
}

func (s *ChatService) Handle(ctx context.Context, in ChatInput) (result ChatResult, err error) {
	result.SessionID = in.SessionID
	message := unknownMessage
	var session Session

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("chat pipeline panic", zap.Any("panic", r), zap.Stack("stack"))
			if session.Token == "" {
				session = s.fallbackSession(ctx, in.SessionID)
			}
			s.logRecordErr(s.recordError(ctx, session.Token, in.AccountID, message, fmt.Sprintf("panic: %v", r)))
			result = ChatResult{Reply: utils.MsgInternalError, SessionID: session.ID}
			err = utils.ErrInternal
		}
	}()

	if !s.limiter.Admit(ctx, in.ClientKey) {
		return ChatResult{Reply: MsgRateLimited, SessionID: in.SessionID}, utils.ErrRateLimitExceeded
	}

	message, err = s.validator.Validate(in.Message)
	if err != nil {
		var vErr *utils.ValidationError
		if errors.As(err, &vErr) {
			result.Reply = vErr.Message
		}
		return result, err
	}

	session, err = s.sessions.GetOrCreateSessionToken(ctx, in.SessionID)
	if err != nil {
		s.logger.Error("failed to resolve session", zap.Error(err))
		return s.recordFailure(ctx, in, err), utils.ErrInternal
	}
	result.SessionID = session.ID

	start := s.now()

	travelContext, ctxErr := s.contexts.BuildContext(ctx)
	if ctxErr != nil {
		s.logger.Warn("continuing without travel context", zap.Error(ctxErr))
		travelContext = ""
	}

	outcome := db_models.OutcomeOK
	reply, callErr := s.invokeModel(ctx, buildPrompt(travelContext, message))
	if callErr != nil {
		s.logger.Warn("model call failed, using fallback reply",
			zap.String("provider", s.completer.Name()), zap.Error(callErr))
		reply = MsgFallback
		outcome = db_models.OutcomeFallback
	}

	elapsed := roundSeconds(s.now().Sub(start))

	exchange := &db_models.ChatExchange{
		SessionToken: session.Token,
		AccountID:    in.AccountID,
		UserMessage:  message,
		BotResponse:  reply,
		Timestamp:    s.now(),
		ResponseTime: &elapsed,
		Metadata:     s.metadata(outcome),
	}
	s.logRecordErr(s.record(ctx, exchange))

	result.Reply = reply
	result.ResponseTime = elapsed
	return result, nil
}

func (s *ChatService) RecordFailure(ctx context.Context, in ChatInput, cause error) (ChatResult, error) {
	if !s.limiter.Admit(ctx, in.ClientKey) {
		return ChatResult{Reply: MsgRateLimited, SessionID: in.SessionID}, utils.ErrRateLimitExceeded
	}
	return s.recordFailure(ctx, in, cause), utils.ErrInternal
}

func (s *ChatService) recordFailure(ctx context.Context, in ChatInput, cause error) ChatResult {
	session := s.fallbackSession(ctx, in.SessionID)
	s.logRecordErr(s.recordError(ctx, session.Token, in.AccountID, unknownMessage, cause.Error()))
	return ChatResult{Reply: utils.MsgInternalError, SessionID: session.ID}
}

// invokeModel bounds the provider call by the configured timeout.
// Caller cancellation does not reach the provider call.
func (s *ChatService) invokeModel(ctx context.Context, messages []llm.Message) (string, error) {
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	type completion struct {
		reply string
		err   error
	}
	done := make(chan completion, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- completion{err: fmt.Errorf("provider panic: %v", r)}
			}
		}()
		reply, err := s.completer.Complete(callCtx, llm.CompletionRequest{
			Model:       s.model,
			Messages:    messages,
			MaxTokens:   s.maxTokens,
			Temperature: s.temperature,
		})
		done <- completion{reply: reply, err: err}
	}()

	select {
	case c := <-done:
		if c.err != nil {
			return "", fmt.Errorf("%w: %v", utils.ErrProviderUnavailable, c.err)
		}
		return c.reply, nil
	case <-callCtx.Done():
		return "", fmt.Errorf("%w: %v", utils.ErrProviderUnavailable, callCtx.Err())
	}
}

func (s *ChatService) fallbackSession(ctx context.Context, sid string) Session {
	session, err := s.sessions.GetOrCreateSessionToken(ctx, sid)
	if err != nil {
		return Session{ID: sid, Token: uuid.NewString()}
	}
	return session
}

func (s *ChatService) recordError(ctx context.Context, token string, accountID *uuid.UUID, message, detail string) error {
	return s.record(ctx, &db_models.ChatExchange{
		SessionToken: token,
		AccountID:    accountID,
		UserMessage:  message,
		BotResponse:  "ERROR: " + detail,
		IsError:      true,
		Timestamp:    s.now(),
		Metadata:     s.metadata(db_models.OutcomeError),
	})
}

func (s *ChatService) record(ctx context.Context, exchange *db_models.ChatExchange) error {
	if err := s.historyRepo.Create(context.WithoutCancel(ctx), exchange); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrPersistenceFailed, err)
	}
	return nil
}

func (s *ChatService) logRecordErr(err error) {
	if err != nil {
		s.logger.Error("chat exchange not persisted", zap.Error(err))
	}
}

func (s *ChatService) metadata(outcome string) datatypes.JSON {
	raw, _ := json.Marshal(db_models.ExchangeMetadata{
		Provider: s.completer.Name(),
		Model:    s.model,
		Outcome:  outcome,
	})
	return datatypes.JSON(raw)
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000) / 1000
}
