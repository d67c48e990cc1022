package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"travelbot/internal/models/db_models"
	"travelbot/pkg/cache"
)

type cacheEntryStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCacheEntryStore is a cache.Store over the cache_entries table. Expired
// rows read as missing and are removed on the read that finds them.
func NewCacheEntryStore(db *gorm.DB) cache.Store {
	return newCacheEntryStore(db, time.Now)
}

func newCacheEntryStore(db *gorm.DB, now func() time.Time) *cacheEntryStore {
	return &cacheEntryStore{db: db, now: now}
}

func (s *cacheEntryStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry db_models.CacheEntry
	err := s.db.WithContext(ctx).Where("cache_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: get %s: %v", cache.ErrUnavailable, key, err)
	}

	if entry.ExpiresAt != nil && !s.now().Before(*entry.ExpiresAt) {
		if err := s.Delete(ctx, key); err != nil {
			return "", false, err
		}
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (s *cacheEntryStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	now := s.now()
	entry := db_models.CacheEntry{
		CacheKey:  key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ttl > 0 {
		expiresAt := now.Add(ttl)
		entry.ExpiresAt = &expiresAt
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("%w: set %s: %v", cache.ErrUnavailable, key, err)
	}
	return nil
}

func (s *cacheEntryStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("cache_key = ?", key).Delete(&db_models.CacheEntry{}).Error
	if err != nil {
		return fmt.Errorf("%w: delete %s: %v", cache.ErrUnavailable, key, err)
	}
	return nil
}
