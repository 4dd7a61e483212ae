package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sharely/sharely/internal/application"
	"github.com/sharely/sharely/internal/domain/entity"
	"github.com/sharely/sharely/internal/interface/middleware"
	"github.com/sharely/sharely/pkg/response"
	"github.com/sharely/sharely/pkg/validation"
)

type ShareHandler struct {
	Shares *application.ShareService
	Logger *logrus.Logger
}

func NewShareHandler(shares *application.ShareService, logger *logrus.Logger) *ShareHandler {
	return &ShareHandler{Shares: shares, Logger: logger}
}

type createShareRequest struct {
	UserID      int64  `json:"user_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	ContentType string `json:"content_type" binding:"required,sharetype"`
	Content     string `json:"content"`
	FileURL     string `json:"file_url" binding:"omitempty,url"`
	ShortCode   string `json:"short_code" binding:"omitempty,max=50"`
}

// updateShareRequest replaces all six mutable fields unconditionally.
type updateShareRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	ContentType string `json:"content_type" binding:"required,sharetype"`
	Content     string `json:"content"`
	FileURL     string `json:"file_url" binding:"omitempty,url"`
	ShortCode   string `json:"short_code" binding:"omitempty,max=50"`
}

// Index GET /api/shares
func (h *ShareHandler) Index(c *gin.Context) {
	shares, err := h.Shares.GetAll(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to load shares", nil)
		return
	}
	response.Success(c, http.StatusOK, shares, "shares", nil)
}

// Show GET /api/shares/:id
func (h *ShareHandler) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	share, err := h.Shares.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrShareNotFound) {
			response.Error[any](c, http.StatusNotFound, "share not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load share", nil)
		return
	}
	response.Success(c, http.StatusOK, share, "share", nil)
}

// Store POST /api/shares
func (h *ShareHandler) Store(c *gin.Context) {
	var req createShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	share, err := h.Shares.Create(c.Request.Context(), application.CreateShareInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		ContentType: entity.ContentType(req.ContentType),
		Content:     req.Content,
		FileURL:     req.FileURL,
		ShortCode:   req.ShortCode,
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidContentType) {
			response.Error[any](c, http.StatusBadRequest, "invalid content type", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to create share", nil)
		return
	}
	response.Success(c, http.StatusCreated, share, "share created", nil)
}

// Update PUT /api/shares/:id
func (h *ShareHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	share, err := h.Shares.Update(c.Request.Context(), id, application.UpdateShareInput{
		Title:       req.Title,
		Description: req.Description,
		ContentType: entity.ContentType(req.ContentType),
		Content:     req.Content,
		FileURL:     req.FileURL,
		ShortCode:   req.ShortCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrShareNotFound):
			response.Error[any](c, http.StatusNotFound, "share not found", nil)
		case errors.Is(err, application.ErrInvalidContentType):
			response.Error[any](c, http.StatusBadRequest, "invalid content type", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to update share", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, share, "share updated", nil)
}

// Destroy DELETE /api/shares/:id
func (h *ShareHandler) Destroy(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Shares.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrShareNotFound) {
			response.Error[any](c, http.StatusNotFound, "share not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to delete share", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "share deleted", nil)
}

// Search GET /api/search/shares?q=...&size=...
func (h *ShareHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Shares.Search(c.Request.Context(), q, size)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

// Upload POST /api/shares/upload stores an image payload and returns the
// URL to use as file_url on an image share.
func (h *ShareHandler) Upload(c *gin.Context) {
	uid := c.GetInt64(middleware.CtxUserIDKey)
	file, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing file", nil)
		return
	}
	f, err := file.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Shares.UploadFile(c.Request.Context(), uid, f, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("share upload failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "upload failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"file_url": url}, "file uploaded", nil)
}
