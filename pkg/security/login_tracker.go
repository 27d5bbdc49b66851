package security

import (
	"context"
	"time"

	"candidate-search-backend/pkg/logger"
	"candidate-search-backend/pkg/redis"
)

// LoginTrackerConfig holds configuration for failed-login tracking.
type LoginTrackerConfig struct {
	MaxAttempts   int           // failed attempts before a block
	AttemptWindow time.Duration // window in which attempts are counted
	BlockDuration time.Duration // temporary block length
}

// DefaultLoginTrackerConfig returns sensible defaults.
func DefaultLoginTrackerConfig() LoginTrackerConfig {
	return LoginTrackerConfig{
		MaxAttempts:   5,
		AttemptWindow: 15 * time.Minute,
		BlockDuration: 15 * time.Minute,
	}
}

// LoginTracker counts failed login attempts per email and enforces blocks.
// When Redis is unavailable it fails open: the database lockout_until column
// stays authoritative for permanent blocks.
type LoginTracker struct {
	config LoginTrackerConfig
}

func NewLoginTracker(config LoginTrackerConfig) *LoginTracker {
	return &LoginTracker{config: config}
}

const (
	failLoginPrefix    = "fail:login:user:"
	blockedLoginPrefix = "blocked:login:user:"
)

// Lua script for atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
const incrWithTTLScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// IsBlocked reports whether the given email is currently blocked.
func (lt *LoginTracker) IsBlocked(ctx context.Context, email string) bool {
	client := redis.Client()
	if client == nil {
		return false
	}

	exists, err := client.Exists(ctx, blockedLoginPrefix+email).Result()
	if err != nil {
		logger.Log.Warn("login tracker: block check failed", "error", err)
		return false
	}
	return exists > 0
}

// RecordFailure increments the failed-attempt counter and blocks the email
// once the threshold is crossed. Returns true if the email is now blocked.
func (lt *LoginTracker) RecordFailure(ctx context.Context, email string) bool {
	client := redis.Client()
	if client == nil {
		return false
	}

	count, err := client.Eval(ctx, incrWithTTLScript,
		[]string{failLoginPrefix + email},
		int(lt.config.AttemptWindow.Seconds()),
	).Int64()
	if err != nil {
		logger.Log.Warn("login tracker: failed to record attempt", "error", err)
		return false
	}

	if count < int64(lt.config.MaxAttempts) {
		return false
	}

	if err := client.Set(ctx, blockedLoginPrefix+email, "1", lt.config.BlockDuration).Err(); err != nil {
		logger.Log.Warn("login tracker: failed to set block", "error", err)
		return false
	}
	logger.Log.Warn("login tracker: account temporarily blocked", "attempts", count)
	return true
}

// Reset clears the counters after a successful login.
func (lt *LoginTracker) Reset(ctx context.Context, email string) {
	client := redis.Client()
	if client == nil {
		return
	}
	if err := client.Del(ctx, failLoginPrefix+email, blockedLoginPrefix+email).Err(); err != nil {
		logger.Log.Warn("login tracker: failed to reset counters", "error", err)
	}
}

// BlockForever marks the email as blocked without expiry. Used when an
// account is soft-deleted.
func (lt *LoginTracker) BlockForever(ctx context.Context, email string) {
	client := redis.Client()
	if client == nil {
		return
	}
	if err := client.Set(ctx, blockedLoginPrefix+email, "1", 0).Err(); err != nil {
		logger.Log.Warn("login tracker: failed to set permanent block", "error", err)
	}
}
