package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sharely/sharely/internal/application"
	handlers "github.com/sharely/sharely/internal/interface/http"
	"github.com/sharely/sharely/internal/interface/middleware"
)

// ShareModule wires the protected share routes:
// GET|POST /api/shares, GET|PUT|DELETE /api/shares/:id,
// POST /api/shares/upload, GET /api/search/shares
//
// Search lives under /search/shares because a static /shares/search
// segment cannot coexist with the :id wildcard in the GET tree.
type ShareModule struct {
	Handler *handlers.ShareHandler
	Auth    application.AuthService
	RDB     *redis.Client
}

func NewShareModule(h *handlers.ShareHandler, auth application.AuthService, rdb *redis.Client) *ShareModule {
	return &ShareModule{Handler: h, Auth: auth, RDB: rdb}
}

func (m *ShareModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	auth.Use(middleware.RateLimit(m.RDB, 300, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/shares", m.Handler.Index)
		auth.GET("/shares/:id", m.Handler.Show)
		auth.POST("/shares", m.Handler.Store)
		auth.PUT("/shares/:id", m.Handler.Update)
		auth.DELETE("/shares/:id", m.Handler.Destroy)
		auth.POST("/shares/upload", m.Handler.Upload)
		auth.GET("/search/shares", m.Handler.Search)
	}
}
