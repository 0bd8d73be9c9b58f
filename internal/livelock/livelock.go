// Package livelock marks a user's plan as held by a live session so that it
// is not regenerated underneath the athlete.
package livelock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL = 3 * time.Hour
	keyPrefix  = "liftplan-live-session||"
)

var ErrNotHeld = errors.New("live session lock is not held by this session")

// releaseScript deletes the key only while it still names the caller.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Locker struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func New(redisClient *redis.Client, ttl time.Duration) *Locker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Locker{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func Key(userID string) string {
	return keyPrefix + userID
}

// Acquire claims the user's plan for sessionID. It reports false when
// another session already holds it.
func (l *Locker) Acquire(ctx context.Context, userID, sessionID string) (bool, error) {
	ok, err := l.redisClient.SetNX(ctx, Key(userID), sessionID, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire live lock: %w", err)
	}
	if !ok {
		log.Debugf("livelock: user %s already has a live session", userID)
	}
	return ok, nil
}

// Holder returns the session holding the lock, or an empty string.
func (l *Locker) Holder(ctx context.Context, userID string) (string, error) {
	sessionID, err := l.redisClient.Get(ctx, Key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get live lock: %w", err)
	}
	return sessionID, nil
}

func (l *Locker) IsLocked(ctx context.Context, userID string) (bool, error) {
	holder, err := l.Holder(ctx, userID)
	if err != nil {
		return false, err
	}
	return holder != "", nil
}

// Refresh pushes the expiry forward while a session is active.
func (l *Locker) Refresh(ctx context.Context, userID, sessionID string) error {
	holder, err := l.Holder(ctx, userID)
	if err != nil {
		return err
	}
	if holder != sessionID {
		return ErrNotHeld
	}
	if err := l.redisClient.Expire(ctx, Key(userID), l.ttl).Err(); err != nil {
		return fmt.Errorf("refresh live lock: %w", err)
	}
	return nil
}

// Release frees the lock if sessionID still holds it.
func (l *Locker) Release(ctx context.Context, userID, sessionID string) error {
	deleted, err := releaseScript.Run(ctx, l.redisClient, []string{Key(userID)}, sessionID).Int64()
	if err != nil {
		return fmt.Errorf("release live lock: %w", err)
	}
	if deleted == 0 {
		return ErrNotHeld
	}
	return nil
}
