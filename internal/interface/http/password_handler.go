package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/sharely/sharely/config"
	"github.com/sharely/sharely/internal/application"
	repo "github.com/sharely/sharely/internal/domain/repository"
	"github.com/sharely/sharely/pkg/helpers"
	"github.com/sharely/sharely/pkg/mailer"
	"github.com/sharely/sharely/pkg/response"
	"github.com/sharely/sharely/pkg/validation"
)

func keyResetToken(t string) string { return "pwd:reset:token:" + t }

// PasswordHandler runs the password reset flow: a random token mapped to
// the user id in Redis, mailed out as a link, consumed once on reset.
type PasswordHandler struct {
	Users  *application.UserService
	Repo   repo.UserRepository
	RDB    *redis.Client
	Pub    *helpers.RabbitPublisher
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewPasswordHandler(users *application.UserService, userRepo repo.UserRepository, rdb *redis.Client, pub *helpers.RabbitPublisher, cfg *config.Config, logger *logrus.Logger) *PasswordHandler {
	return &PasswordHandler{Users: users, Repo: userRepo, RDB: rdb, Pub: pub, Cfg: cfg, Logger: logger}
}

// Forgot POST /api/password/forgot
// Always answers 200 to avoid account enumeration.
func (h *PasswordHandler) Forgot(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		response.Error[any](c, http.StatusInternalServerError, "reset unavailable", nil)
		return
	}
	if u != nil && h.RDB != nil {
		tok, err := helpers.GenToken(32)
		if err != nil {
			response.Error[any](c, http.StatusInternalServerError, "token generation failed", nil)
			return
		}
		if err := h.RDB.Set(c.Request.Context(), keyResetToken(tok), u.ID, h.Cfg.ResetTTL).Err(); err != nil {
			response.Error[any](c, http.StatusInternalServerError, "reset unavailable", nil)
			return
		}
		if h.Pub != nil && h.Cfg.MailSendEnabled {
			link := h.Cfg.ResetPasswordURL + "?token=" + tok
			job := mailer.EmailJob{
				To:       u.Email,
				Template: mailer.TemplateForgotPassword,
				Data: map[string]any{
					"Name":      u.Name,
					"Email":     u.Email,
					"ResetURL":  link,
					"ExpiresIn": h.Cfg.ResetTTL.String(),
				},
			}
			if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil && h.Logger != nil {
				h.Logger.WithError(err).Warn("failed to publish reset email job")
			}
		}
	}
	response.Success[any](c, http.StatusOK, gin.H{"sent": true}, "If the account exists, a reset link has been emailed.", nil)
}

// Reset POST /api/password/reset
func (h *PasswordHandler) Reset(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required,pwd"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if h.RDB == nil {
		response.Error[any](c, http.StatusInternalServerError, "reset unavailable", nil)
		return
	}
	v, err := h.RDB.Get(c.Request.Context(), keyResetToken(req.Token)).Result()
	if err != nil || v == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid or expired token", nil)
		return
	}
	uid, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid or expired token", nil)
		return
	}
	if err := h.Users.UpdatePassword(c.Request.Context(), uid, req.Password); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "password update failed", nil)
		return
	}
	h.RDB.Del(c.Request.Context(), keyResetToken(req.Token))
	if h.Logger != nil {
		h.Logger.WithFields(logrus.Fields{"user_id": uid, "at": time.Now().UTC()}).Info("password reset completed")
	}
	response.Success[any](c, http.StatusOK, gin.H{"reset": true}, "Password reset successfully", nil)
}
