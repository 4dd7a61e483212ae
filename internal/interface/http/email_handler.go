package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sharely/sharely/internal/application"
	repo "github.com/sharely/sharely/internal/domain/repository"
	"github.com/sharely/sharely/internal/infrastructure/email"
	"github.com/sharely/sharely/pkg/response"
	"github.com/sharely/sharely/pkg/validation"
)

// EmailHandler serves the public email verification endpoints. The verify
// link carries the user id and a hash of the address, so no session is
// required to confirm.
type EmailHandler struct {
	Repo     repo.UserRepository
	Verifier application.EmailVerificationService
	Logger   *logrus.Logger
}

func NewEmailHandler(userRepo repo.UserRepository, verifier application.EmailVerificationService, logger *logrus.Logger) *EmailHandler {
	return &EmailHandler{Repo: userRepo, Verifier: verifier, Logger: logger}
}

// Verify GET /api/email/verify/:id/:hash
func (h *EmailHandler) Verify(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.Repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "verification failed", nil)
		return
	}

	expected := email.VerificationHash(u.Email)
	if subtle.ConstantTimeCompare([]byte(c.Param("hash")), []byte(expected)) != 1 {
		response.Error[any](c, http.StatusBadRequest, "invalid verification link", nil)
		return
	}

	if u.HasVerifiedEmail() {
		response.Success[any](c, http.StatusOK, gin.H{"verified": true}, "Email already verified.", nil)
		return
	}
	if err := h.Repo.SetEmailVerified(c.Request.Context(), id, time.Now()); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "verification failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"verified": true}, "Email verified successfully.", nil)
}

// Resend POST /api/email/resend
func (h *EmailHandler) Resend(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "resend failed", nil)
		return
	}
	if u.HasVerifiedEmail() {
		response.Success[any](c, http.StatusOK, gin.H{"resent": false}, "Email already verified.", nil)
		return
	}
	if err := h.Verifier.SendVerificationEmail(c.Request.Context(), u.ID); err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", u.ID).Warn("resend verification failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "resend failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"resent": true}, "Verification email resent.", nil)
}
