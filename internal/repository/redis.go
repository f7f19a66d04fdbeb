package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/therapprove/provider-portal/backend/internal/config"
	"github.com/therapprove/provider-portal/backend/internal/domain"
)

// RedisStore keeps session blobs in Redis with a TTL so abandoned
// anonymous sessions age out on their own.
type RedisStore struct {
	cfg    *config.Config
	client *redis.Client
	logger *slog.Logger
}

func NewRedisStore(cfg *config.Config, client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

func (s *RedisStore) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(s.cfg.Redis.OperationTimeout)*time.Second)
}

func (s *RedisStore) blobTTL() time.Duration {
	return time.Duration(s.cfg.Redis.BlobTTL) * time.Second
}

func (s *RedisStore) SaveAvailability(sessionID string, availability domain.WeeklyAvailability) error {
	blob, err := encodeAvailability(availability)
	if err != nil {
		return err
	}

	ctx, cancel := s.operationContext()
	defer cancel()

	if err := s.client.Set(ctx, availabilityKeyPrefix+sessionID, blob, s.blobTTL()).Err(); err != nil {
		return err
	}
	return s.client.Set(ctx, lastSavedKeyPrefix+sessionID, time.Now().Format(time.RFC3339), s.blobTTL()).Err()
}

func (s *RedisStore) LoadAvailability(sessionID string) (domain.WeeklyAvailability, time.Time) {
	ctx, cancel := s.operationContext()
	defer cancel()

	blob, err := s.client.Get(ctx, availabilityKeyPrefix+sessionID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Error("failed to load availability blob", "sessionID", sessionID, "error", err)
		}
		return domain.WeeklyAvailability{}, time.Time{}
	}

	availability, err := decodeAvailability(blob)
	if err != nil {
		s.logger.Error("discarding corrupt availability blob", "sessionID", sessionID, "error", err)
		return domain.WeeklyAvailability{}, time.Time{}
	}

	var lastSaved time.Time
	if raw, err := s.client.Get(ctx, lastSavedKeyPrefix+sessionID).Result(); err == nil {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			lastSaved = ts
		}
	}
	return availability, lastSaved
}

func (s *RedisStore) DeleteAvailability(sessionID string) error {
	ctx, cancel := s.operationContext()
	defer cancel()

	return s.client.Del(ctx, availabilityKeyPrefix+sessionID, lastSavedKeyPrefix+sessionID).Err()
}

func (s *RedisStore) SaveReferrals(referrals []domain.Referral) error {
	blob, err := json.Marshal(referrals)
	if err != nil {
		return err
	}

	ctx, cancel := s.operationContext()
	defer cancel()

	return s.client.Set(ctx, referralsKey, blob, 0).Err()
}

func (s *RedisStore) LoadReferrals() []domain.Referral {
	ctx, cancel := s.operationContext()
	defer cancel()

	blob, err := s.client.Get(ctx, referralsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Error("failed to load referrals", "error", err)
		}
		return nil
	}

	var referrals []domain.Referral
	if err := json.Unmarshal(blob, &referrals); err != nil {
		s.logger.Error("discarding corrupt referral list", "error", err)
		return nil
	}
	return referrals
}
