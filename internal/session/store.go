package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	inErrors "github.com/hanifr/storefront/internal/errors"
	"github.com/hanifr/storefront/internal/log"
	"github.com/hanifr/storefront/internal/otel"
)

const (
	keySessions = "sessions:%s"
	sessionTTL  = 30 * 24 * time.Hour
)

type Store struct {
	cache *redis.Client
}

func NewStore(cache *redis.Client) Store {
	return Store{cache: cache}
}

func (s Store) Find(c context.Context, id uuid.UUID) (Session, error) {
	c, span := otel.Tracer.Start(c, "SessionStore Find")
	defer span.End()

	cacheKey := fmt.Sprintf(keySessions, id.String())
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionStore Find").
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	jsonString, err := s.cache.Get(c, cacheKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, inErrors.ErrSessionNotFound
		}
		err = fmt.Errorf("failed finding session in cache with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Session{}, err
	}

	sess := Session{}
	err = json.Unmarshal([]byte(jsonString), &sess)
	if err != nil {
		err = fmt.Errorf("failed unmarshaling session with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Session{}, err
	}
	return sess, nil
}

func (s Store) Save(c context.Context, sess Session) error {
	c, span := otel.Tracer.Start(c, "SessionStore Save")
	defer span.End()

	cacheKey := fmt.Sprintf(keySessions, sess.ID.String())
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionStore Save").
		Str(log.KeyCacheKey, cacheKey).
		Str(log.KeySessionID, sess.ID.String()).
		Logger()

	jsonBytes, err := json.Marshal(sess)
	if err != nil {
		err = fmt.Errorf("failed marshaling session with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	err = s.cache.Set(c, cacheKey, jsonBytes, sessionTTL).Err()
	if err != nil {
		err = fmt.Errorf("failed saving session to cache with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Trace().Msg("saved session")
	return nil
}

// ConsumeNotice returns the session's pending notice and clears it, saving
// the session so the notice shows at most once.
func (s Store) ConsumeNotice(c context.Context, sess Session) (string, Session, error) {
	notice := sess.Notice
	if notice == "" {
		return "", sess, nil
	}

	c, span := otel.Tracer.Start(c, "SessionStore ConsumeNotice")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionStore ConsumeNotice").
		Str(log.KeySessionID, sess.ID.String()).
		Str(log.KeyNotice, notice).
		Logger()

	logger.Info().Msg("consuming notice")
	sess.Notice = ""
	if err := s.Save(c, sess); err != nil {
		err = fmt.Errorf("failed consuming notice with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", sess, err
	}
	return notice, sess, nil
}

func (s Store) Delete(c context.Context, id uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "SessionStore Delete")
	defer span.End()

	cacheKey := fmt.Sprintf(keySessions, id.String())
	err := s.cache.Del(c, cacheKey).Err()
	if err != nil {
		err = fmt.Errorf("failed deleting session from cache with error=%w", err)
		otel.RecordError(err, span)
		zerolog.Ctx(c).Error().Err(err).Msg(err.Error())
		return err
	}
	return nil
}
