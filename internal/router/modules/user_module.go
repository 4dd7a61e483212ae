package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sharely/sharely/internal/application"
	handlers "github.com/sharely/sharely/internal/interface/http"
	"github.com/sharely/sharely/internal/interface/middleware"
)

// UserModule wires the protected user account routes:
// GET|PUT|DELETE /api/users/:id
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    application.AuthService
	RDB     *redis.Client
}

func NewUserModule(h *handlers.UserHandler, auth application.AuthService, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Auth: auth, RDB: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	auth.Use(middleware.RateLimit(m.RDB, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/users/:id", m.Handler.Show)
		auth.PUT("/users/:id", m.Handler.Update)
		auth.DELETE("/users/:id", m.Handler.Destroy)
	}
}
