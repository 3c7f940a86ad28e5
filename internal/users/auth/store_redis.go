// Copyright (c) 2026 Glowlab. All rights reserved.

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glowlab/glowlab/internal/platform/apperr"
	"github.com/glowlab/glowlab/internal/platform/constants"
)

// RedisSessionStore implements [SessionStore] on Redis.
//
// Layout:
//   - auth:session:<tokenHash>      -> session JSON, TTL = remaining lifetime
//   - auth:session:user:<userID>    -> set of the user's token hashes
//
// The per-user set is what makes RevokeAll and RevokeOthers a handful of
// O(1) deletes instead of a keyspace scan.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

func userSessionsKey(userID string) string {
	return constants.RedisPrefixSession + "user:" + userID
}

func (store *RedisSessionStore) Create(context context.Context, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_marshal_failed: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("redis_session_create_failed: session already expired")
	}

	pipe := store.client.TxPipeline()
	pipe.Set(context, sessionKey(session.TokenHash), payload, ttl)
	pipe.SAdd(context, userSessionsKey(session.UserID), session.TokenHash)
	pipe.Expire(context, userSessionsKey(session.UserID), ttl)
	if _, err := pipe.Exec(context); err != nil {
		return fmt.Errorf("redis_session_create_failed: %w", err)
	}

	return nil
}

func (store *RedisSessionStore) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	payload, err := store.client.Get(context, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.Unauthorized("Session is invalid or expired")
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis_session_unmarshal_failed: %w", err)
	}

	session.TokenHash = tokenHash
	return session, nil
}

func (store *RedisSessionStore) Revoke(context context.Context, tokenHash string) error {
	session, err := store.FindByTokenHash(context, tokenHash)
	if err != nil {
		// Already gone; revocation is idempotent.
		return nil
	}

	pipe := store.client.TxPipeline()
	pipe.Del(context, sessionKey(tokenHash))
	pipe.SRem(context, userSessionsKey(session.UserID), tokenHash)
	if _, err := pipe.Exec(context); err != nil {
		return fmt.Errorf("redis_session_revoke_failed: %w", err)
	}

	return nil
}

func (store *RedisSessionStore) RevokeAll(context context.Context, userID string) error {
	return store.revokeSet(context, userID, "")
}

func (store *RedisSessionStore) RevokeOthers(context context.Context, userID, keepHash string) error {
	return store.revokeSet(context, userID, keepHash)
}

func (store *RedisSessionStore) revokeSet(context context.Context, userID, keepHash string) error {
	hashes, err := store.client.SMembers(context, userSessionsKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("redis_session_members_failed: %w", err)
	}

	pipe := store.client.TxPipeline()
	for _, hash := range hashes {
		if hash == keepHash {
			continue
		}
		pipe.Del(context, sessionKey(hash))
		pipe.SRem(context, userSessionsKey(userID), hash)
	}
	if _, err := pipe.Exec(context); err != nil {
		return fmt.Errorf("redis_session_revoke_set_failed: %w", err)
	}

	return nil
}
