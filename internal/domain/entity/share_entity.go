package entity

import "time"

// ContentType enumerates the kinds of content a share can carry.
type ContentType string

const (
	ContentTypeShortlink ContentType = "shortlink"
	ContentTypeLink      ContentType = "link"
	ContentTypeCode      ContentType = "code"
	ContentTypeMarkdown  ContentType = "markdown"
	ContentTypeImage     ContentType = "image"
)

// Valid reports whether ct is one of the five supported content types.
func (ct ContentType) Valid() bool {
	switch ct {
	case ContentTypeShortlink, ContentTypeLink, ContentTypeCode, ContentTypeMarkdown, ContentTypeImage:
		return true
	}
	return false
}

// Share is a titled, typed content item owned by a user.
// Content carries the payload for code/markdown/link/shortlink shares,
// FileURL for image shares. Description, Content, FileURL and ShortCode
// are optional and empty when absent.
//
// UserID is set at construction and never changes afterwards.
type Share struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	ContentType ContentType
	Content     string
	FileURL     string
	ShortCode   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewShare constructs an unsaved share with both timestamps set to now.
func NewShare(userID int64, title, description string, contentType ContentType, content, fileURL, shortCode string) *Share {
	now := time.Now()
	return &Share{
		UserID:      userID,
		Title:       title,
		Description: description,
		ContentType: contentType,
		Content:     content,
		FileURL:     fileURL,
		ShortCode:   shortCode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsSaved reports whether the entity has been assigned a persistent identity.
func (s *Share) IsSaved() bool {
	return s.ID != 0
}

// Touch refreshes UpdatedAt. Called on every mutation.
func (s *Share) Touch() {
	s.UpdatedAt = time.Now()
}
