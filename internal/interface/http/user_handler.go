package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sharely/sharely/internal/application"
	"github.com/sharely/sharely/pkg/response"
	"github.com/sharely/sharely/pkg/validation"
)

type UserHandler struct {
	Users  *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(users *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Users: users, Logger: logger}
}

// updateUserRequest is a partial patch: absent fields stay untouched.
type updateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,pwd"`
}

// pathID parses the :id path parameter, writing a 400 on failure.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}

// Show GET /api/users/:id
func (h *UserHandler) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.Users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load user", nil)
		return
	}
	response.Success(c, http.StatusOK, user, "user", nil)
}

// Update PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, err := h.Users.Update(c.Request.Context(), id, application.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update user", nil)
		return
	}
	response.Success(c, http.StatusOK, user, "user updated", nil)
}

// Destroy DELETE /api/users/:id
func (h *UserHandler) Destroy(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to delete user", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "user deleted", nil)
}
