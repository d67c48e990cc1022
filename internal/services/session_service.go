package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"travelbot/internal/config"
	"travelbot/pkg/cache"
	"travelbot/pkg/utils"
)

const (
	sessionKeyPrefix = "session:"
	sessionIDBytes   = 16
)

// Session ties a client-held id (the cookie value) to the chat session
// token stored server-side.
type Session struct {
	ID    string
	Token string
}

// SessionStore holds sid to token mappings. It is kept apart from the
// shared cache.Store so sessions can live in a durable backend while rate
// limits and digests stay in memory.
type SessionStore interface {
	cache.Store
}

type SessionServiceInterface interface {
	// GetOrCreateSessionToken resolves sid, minting a new id and token when
	// either is missing.
	GetOrCreateSessionToken(ctx context.Context, sid string) (Session, error)
	// LookupSessionToken resolves sid without creating anything.
	LookupSessionToken(ctx context.Context, sid string) (string, bool, error)
}

type SessionService struct {
	store  SessionStore
	ttl    time.Duration
	logger *zap.Logger
}

func NewSessionService(store SessionStore, cfg *config.Config, logger *zap.Logger) SessionServiceInterface {
	return &SessionService{store: store, ttl: cfg.SessionTTL, logger: logger}
}

func (s *SessionService) GetOrCreateSessionToken(ctx context.Context, sid string) (Session, error) {
	if sid != "" {
		token, found, err := s.LookupSessionToken(ctx, sid)
		if err != nil {
			s.logger.Warn("session lookup failed", zap.Error(err))
		} else if found {
			return Session{ID: sid, Token: token}, nil
		}
	} else {
		var err error
		if sid, err = utils.GenerateSecureToken(sessionIDBytes); err != nil {
			return Session{}, err
		}
	}

	session := Session{ID: sid, Token: uuid.NewString()}
	if err := s.store.Set(ctx, sessionKeyPrefix+sid, session.Token, s.ttl); err != nil {
		// The exchange is still logged under the fresh token; the next
		// request just gets another one.
		s.logger.Warn("failed to persist session", zap.Error(err))
	}

	return session, nil
}

func (s *SessionService) LookupSessionToken(ctx context.Context, sid string) (string, bool, error) {
	if sid == "" {
		return "", false, nil
	}
	return s.store.Get(ctx, sessionKeyPrefix+sid)
}
