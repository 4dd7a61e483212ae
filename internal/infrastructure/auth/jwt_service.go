package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sharely/sharely/internal/application"
	"github.com/sharely/sharely/internal/domain/entity"
	"github.com/sharely/sharely/pkg/helpers"
)

// ErrInvalidToken is returned when a presented credential cannot be mapped
// to an active authenticated user.
var ErrInvalidToken = errors.New("invalid token")

func sessionKey(userID string) string {
	return "user:session:" + userID
}

// JWTAuthService issues HS256 JWTs and records a session in Redis keyed by
// user id. A token only authenticates while its session id matches the one
// stored in Redis, so revocation is immediate.
type JWTAuthService struct {
	JWT *helpers.JWTManager
	RDB *redis.Client
}

func NewJWTAuthService(jwt *helpers.JWTManager, rdb *redis.Client) *JWTAuthService {
	return &JWTAuthService{JWT: jwt, RDB: rdb}
}

func (s *JWTAuthService) CreateToken(ctx context.Context, u *entity.User) (string, error) {
	sid := uuid.NewString()
	token, exp, err := s.JWT.GenerateToken(u.ID, sid)
	if err != nil {
		return "", err
	}
	if s.RDB != nil {
		key := sessionKey(strconv.FormatInt(u.ID, 10))
		pipe := s.RDB.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"sid":        sid,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		})
		pipe.ExpireAt(ctx, key, exp)
		if _, err := pipe.Exec(ctx); err != nil {
			return "", err
		}
	}
	return token, nil
}

func (s *JWTAuthService) ParseToken(ctx context.Context, token string) (int64, error) {
	claims, err := s.JWT.ParseToken(token)
	if err != nil {
		return 0, ErrInvalidToken
	}
	uid, err := claims.UserID()
	if err != nil {
		return 0, ErrInvalidToken
	}
	if s.RDB != nil {
		data, err := s.RDB.HGetAll(ctx, sessionKey(claims.Subject)).Result()
		if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return 0, ErrInvalidToken
		}
	}
	return uid, nil
}

func (s *JWTAuthService) RevokeToken(ctx context.Context, token string) error {
	claims, err := s.JWT.ParseToken(token)
	if err != nil {
		return ErrInvalidToken
	}
	if s.RDB != nil {
		return s.RDB.Del(ctx, sessionKey(claims.Subject)).Err()
	}
	return nil
}

var _ application.AuthService = (*JWTAuthService)(nil)
