package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sharely/sharely/internal/domain/entity"
)

type stubAuth struct {
	valid map[string]int64
}

func (s *stubAuth) CreateToken(_ context.Context, u *entity.User) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubAuth) ParseToken(_ context.Context, token string) (int64, error) {
	if uid, ok := s.valid[token]; ok {
		return uid, nil
	}
	return 0, errors.New("invalid token")
}

func (s *stubAuth) RevokeToken(_ context.Context, token string) error {
	delete(s.valid, token)
	return nil
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &stubAuth{valid: map[string]int64{"good-token": 7}}
	r := gin.New()
	r.GET("/me", Auth(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt64(CtxUserIDKey)})
	})
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAuth_Rejections(t *testing.T) {
	r := setupAuthRouter()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic good-token"},
		{"unknown token", "Bearer bad-token"},
		{"scheme only", "Bearer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}
