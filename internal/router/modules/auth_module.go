package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sharely/sharely/internal/application"
	handlers "github.com/sharely/sharely/internal/interface/http"
	"github.com/sharely/sharely/internal/interface/middleware"
)

// AuthModule wires registration, login, session management and the
// password reset flow.
// Public: POST /api/register, /api/login, /api/password/forgot, /api/password/reset
// Protected: POST /api/refresh, /api/logout, GET /api/me
type AuthModule struct {
	Handler  *handlers.AuthHandler
	Password *handlers.PasswordHandler
	Auth     application.AuthService
	RDB      *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, p *handlers.PasswordHandler, auth application.AuthService, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, Password: p, Auth: auth, RDB: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public with per-IP rate limiting
	registerLimiter := middleware.RateLimit(m.RDB, 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIP(), nil)
	forgotLimiter := middleware.RateLimit(m.RDB, 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	resetLimiter := middleware.RateLimit(m.RDB, 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/password/forgot", forgotLimiter, m.Password.Forgot)
	rg.POST("/password/reset", resetLimiter, m.Password.Reset)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	auth.Use(middleware.RateLimit(m.RDB, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/refresh", m.Handler.Refresh)
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/me", m.Handler.Me)
	}
}
