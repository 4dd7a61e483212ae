package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/sharely/sharely/internal/interface/http"
	"github.com/sharely/sharely/internal/interface/middleware"
)

// EmailModule wires the public verification routes. The verify link is
// signed into the URL hash, so no session is required to follow it.
type EmailModule struct {
	Handler *handlers.EmailHandler
	RDB     *redis.Client
}

func NewEmailModule(h *handlers.EmailHandler, rdb *redis.Client) *EmailModule {
	return &EmailModule{Handler: h, RDB: rdb}
}

func (m *EmailModule) Register(rg *gin.RouterGroup) {
	verify := rg.Group("/email")
	verify.Use(middleware.RateLimit(m.RDB, 30, time.Minute, middleware.KeyByIPAndPath(), nil))
	{
		verify.GET("/verify/:id/:hash", m.Handler.Verify)
		verify.POST("/resend", m.Handler.Resend)
	}
}
