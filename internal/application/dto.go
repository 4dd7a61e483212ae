package application

import (
	"github.com/sharely/sharely/internal/domain/entity"
)

// TimeLayout is the fixed rendering for timestamps in API responses.
// No timezone offset is encoded; the server timezone is canonical.
const TimeLayout = "2006-01-02 15:04:05"

// UserResponse is the sanitized transport representation of a user.
// The password hash is never part of it.
type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// ShareResponse is the transport representation of a share.
type ShareResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
	FileURL     string `json:"file_url"`
	ShortCode   string `json:"short_code"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(TimeLayout),
		UpdatedAt: u.UpdatedAt.Format(TimeLayout),
	}
}

func toShareResponse(s *entity.Share) *ShareResponse {
	return &ShareResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Title:       s.Title,
		Description: s.Description,
		ContentType: string(s.ContentType),
		Content:     s.Content,
		FileURL:     s.FileURL,
		ShortCode:   s.ShortCode,
		CreatedAt:   s.CreatedAt.Format(TimeLayout),
		UpdatedAt:   s.UpdatedAt.Format(TimeLayout),
	}
}
