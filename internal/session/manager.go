package session

import (
	"context"
	"movie_watchlist/db/redis"
	errorHandler "movie_watchlist/pkg/error"
	"movie_watchlist/util"
	"strings"
	"time"

	"github.com/google/uuid"
)

const revokedSessionPrefix = "revoked_session:"

type IRevocationStore interface {
	IsRevoked(ctx context.Context, sessionId string) bool
	Revoke(ctx context.Context, sessionId string, ttl time.Duration) error
}

type Manager struct {
	secret  string
	maxAge  time.Duration
	revoked IRevocationStore
}

func NewManager(secret string, maxAge time.Duration, revoked IRevocationStore) *Manager {
	if revoked == nil {
		revoked = RedisRevocationStore{}
	}
	return &Manager{
		secret:  secret,
		maxAge:  maxAge,
		revoked: revoked,
	}
}

func (m *Manager) MaxAge() time.Duration {
	return m.maxAge
}

// Decode never fails: bad, expired or revoked tokens yield an anonymous session.
func (m *Manager) Decode(ctx context.Context, token string) *Session {
	if token == "" {
		return &Session{}
	}
	_, claims, err := util.VerifySessionToken(token, m.secret)
	if err != nil || claims.ID == "" {
		return &Session{modified: true}
	}
	if m.revoked.IsRevoked(ctx, claims.ID) {
		return &Session{Theme: claims.Theme, modified: true}
	}
	return &Session{
		UserId:  claims.UserId,
		Email:   claims.Email,
		Theme:   claims.Theme,
		Flashes: claims.Flashes,
		id:      claims.ID,
	}
}

// Encode signs the session, assigning its id on first use.
func (m *Manager) Encode(s *Session) (string, error) {
	if s.id == "" {
		s.id = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	claims := util.SessionClaims{
		UserId:  s.UserId,
		Email:   s.Email,
		Theme:   s.Theme,
		Flashes: s.Flashes,
	}
	claims.ID = s.id
	return util.SignSessionToken(claims, m.secret, m.maxAge)
}

// Revoke blacklists the session id. Any cookie for it is re-signed with a fresh
// expiry, so the entry has to outlive the newest one.
func (m *Manager) Revoke(ctx context.Context, s *Session) {
	if s.id == "" {
		return
	}
	if err := m.revoked.Revoke(ctx, s.id, m.maxAge); err != nil {
		errorHandler.SaveError("could not revoke session", err)
	}
}

//------------------------------------------
//------------------------------------------

type RedisRevocationStore struct{}

func (RedisRevocationStore) IsRevoked(ctx context.Context, sessionId string) bool {
	if !redis.Enabled() {
		return false
	}
	result, err := redis.GetRedis(ctx, revokedSessionPrefix+sessionId)
	if err != nil {
		if !redis.IsNil(err) {
			errorHandler.SaveError("redis error on checking revoked session", err)
		}
		return false
	}
	return result != ""
}

func (RedisRevocationStore) Revoke(ctx context.Context, sessionId string, ttl time.Duration) error {
	if !redis.Enabled() {
		return nil
	}
	return redis.SetRedis(ctx, revokedSessionPrefix+sessionId, "1", ttl)
}
