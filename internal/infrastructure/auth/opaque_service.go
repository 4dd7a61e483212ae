package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sharely/sharely/internal/application"
	"github.com/sharely/sharely/internal/domain/entity"
	"github.com/sharely/sharely/pkg/helpers"
)

func tokenKey(token string) string {
	return "auth:token:" + token
}

// OpaqueAuthService issues random bearer tokens stored in Redis. The token
// itself carries no structure; Redis maps it to the user id until expiry
// or revocation.
type OpaqueAuthService struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewOpaqueAuthService(rdb *redis.Client, ttl time.Duration) *OpaqueAuthService {
	return &OpaqueAuthService{RDB: rdb, TTL: ttl}
}

func (s *OpaqueAuthService) CreateToken(ctx context.Context, u *entity.User) (string, error) {
	token, err := helpers.GenToken(32)
	if err != nil {
		return "", err
	}
	if err := s.RDB.Set(ctx, tokenKey(token), u.ID, s.TTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *OpaqueAuthService) ParseToken(ctx context.Context, token string) (int64, error) {
	v, err := s.RDB.Get(ctx, tokenKey(token)).Result()
	if err != nil || v == "" {
		return 0, ErrInvalidToken
	}
	uid, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uid, nil
}

func (s *OpaqueAuthService) RevokeToken(ctx context.Context, token string) error {
	return s.RDB.Del(ctx, tokenKey(token)).Err()
}

var _ application.AuthService = (*OpaqueAuthService)(nil)
