package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sharely/sharely/internal/domain/entity"
	repo "github.com/sharely/sharely/internal/domain/repository"
	"github.com/sharely/sharely/pkg/helpers"
)

var (
	ErrShareNotFound      = errors.New("share not found")
	ErrInvalidContentType = errors.New("invalid content type")
)

// ShareService orchestrates share CRUD, search indexing and file uploads.
type ShareService struct {
	Repo          repo.ShareRepository
	Logger        *logrus.Logger
	ES            *elasticsearch.Client
	ESSharesIndex string
	GCS           *storage.Client
	GCSBucket     string
}

func NewShareService(r repo.ShareRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, gcs *storage.Client, gcsBucket string) *ShareService {
	return &ShareService{
		Repo:          r,
		Logger:        logger,
		ES:            es,
		ESSharesIndex: esIndex,
		GCS:           gcs,
		GCSBucket:     gcsBucket,
	}
}

type CreateShareInput struct {
	UserID      int64
	Title       string
	Description string
	ContentType entity.ContentType
	Content     string
	FileURL     string
	ShortCode   string
}

// UpdateShareInput carries the six mutable share fields. Update is a full
// replace: every field overwrites the stored value unconditionally.
type UpdateShareInput struct {
	Title       string
	Description string
	ContentType entity.ContentType
	Content     string
	FileURL     string
	ShortCode   string
}

func (s *ShareService) Create(ctx context.Context, in CreateShareInput) (*ShareResponse, error) {
	if !in.ContentType.Valid() {
		return nil, ErrInvalidContentType
	}
	sh := entity.NewShare(in.UserID, in.Title, in.Description, in.ContentType, in.Content, in.FileURL, in.ShortCode)
	if err := s.Repo.Save(ctx, sh); err != nil {
		return nil, err
	}
	s.indexShare(ctx, sh)
	return toShareResponse(sh), nil
}

func (s *ShareService) GetByID(ctx context.Context, id int64) (*ShareResponse, error) {
	sh, err := s.findShare(ctx, id)
	if err != nil {
		return nil, err
	}
	return toShareResponse(sh), nil
}

// GetAll returns every share in persistence order. No pagination contract.
func (s *ShareService) GetAll(ctx context.Context) ([]*ShareResponse, error) {
	shares, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*ShareResponse, 0, len(shares))
	for _, sh := range shares {
		out = append(out, toShareResponse(sh))
	}
	return out, nil
}

func (s *ShareService) Update(ctx context.Context, id int64, in UpdateShareInput) (*ShareResponse, error) {
	if !in.ContentType.Valid() {
		return nil, ErrInvalidContentType
	}
	sh, err := s.findShare(ctx, id)
	if err != nil {
		return nil, err
	}
	sh.Title = in.Title
	sh.Description = in.Description
	sh.ContentType = in.ContentType
	sh.Content = in.Content
	sh.FileURL = in.FileURL
	sh.ShortCode = in.ShortCode
	sh.Touch()
	if err := s.Repo.Save(ctx, sh); err != nil {
		return nil, err
	}
	s.indexShare(ctx, sh)
	return toShareResponse(sh), nil
}

func (s *ShareService) Delete(ctx context.Context, id int64) error {
	if _, err := s.findShare(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.deleteFromIndex(ctx, id)
	return nil
}

// UploadFile stores an image payload in GCS and returns its public URL,
// suitable for the file_url of an image share.
func (s *ShareService) UploadFile(ctx context.Context, userID int64, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("object storage not configured")
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("shares", strconv.FormatInt(userID, 10), id+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}

// Search performs a multi_match query over title, description and content.
func (s *ShareService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESSharesIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "content"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESSharesIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *ShareService) findShare(ctx context.Context, id int64) (*entity.Share, error) {
	sh, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrShareNotFound
		}
		return nil, err
	}
	return sh, nil
}

// indexShare pushes the latest share document to Elasticsearch. Best-effort.
func (s *ShareService) indexShare(ctx context.Context, sh *entity.Share) {
	if s.ES == nil || s.ESSharesIndex == "" {
		return
	}
	doc := map[string]any{
		"id":           sh.ID,
		"user_id":      sh.UserID,
		"title":        sh.Title,
		"description":  sh.Description,
		"content_type": string(sh.ContentType),
		"content":      sh.Content,
		"short_code":   sh.ShortCode,
		"created_at":   sh.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":   sh.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESSharesIndex,
		DocumentID: strconv.FormatInt(sh.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("share_id", sh.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("share_id", sh.ID).Warn("es index response error")
	}
}

func (s *ShareService) deleteFromIndex(ctx context.Context, id int64) {
	if s.ES == nil || s.ESSharesIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESSharesIndex, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("share_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
