package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sharely/sharely/internal/application"
	repo "github.com/sharely/sharely/internal/domain/repository"
	"github.com/sharely/sharely/internal/interface/middleware"
	"github.com/sharely/sharely/pkg/response"
	"github.com/sharely/sharely/pkg/validation"
)

type AuthHandler struct {
	Users  *application.UserService
	Repo   repo.UserRepository
	Auth   application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(users *application.UserService, userRepo repo.UserRepository, auth application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Repo: userRepo, Auth: auth, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, err := h.Users.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("registration failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, user,
		"User registered successfully. Please check your email to verify your account.", nil)
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidCredentials):
			response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		case errors.Is(err, application.ErrEmailNotVerified):
			response.Error[any](c, http.StatusForbidden, "email not verified", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "login failed", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"access_token": res.Token,
		"token_type":   "bearer",
		"user_id":      res.UserID,
		"name":         res.Name,
		"email":        res.Email,
	}, "login successful", nil)
}

// Refresh POST /api/refresh rotates the presented credential.
func (h *AuthHandler) Refresh(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	old := c.GetString(middleware.CtxTokenKey)

	u, err := h.Repo.FindByID(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid bearer token", nil)
		return
	}
	// Revoke before issuing so the old credential cannot outlive the
	// rotation regardless of provider.
	if err := h.Auth.RevokeToken(c.Request.Context(), old); err != nil && h.Logger != nil {
		h.Logger.WithError(err).Warn("revoke on refresh failed")
	}
	token, err := h.Auth.CreateToken(c.Request.Context(), u)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "token issuance failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	}, "token refreshed", nil)
}

// Logout POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.CtxTokenKey)
	if err := h.Auth.RevokeToken(c.Request.Context(), token); err != nil && h.Logger != nil {
		h.Logger.WithError(err).Warn("token revocation failed")
	}
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "Successfully logged out", nil)
}

// Me GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	user, err := h.Users.Get(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, user, "profile", nil)
}
