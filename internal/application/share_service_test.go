package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharely/sharely/internal/domain/entity"
)

func newShareService(t *testing.T) (*ShareService, *fakeShareRepo) {
	t.Helper()
	repo := newFakeShareRepo()
	return NewShareService(repo, nil, nil, "", nil, ""), repo
}

func createShare(t *testing.T, svc *ShareService, title string, ct entity.ContentType) *ShareResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), CreateShareInput{
		UserID:      1,
		Title:       title,
		ContentType: ct,
		Content:     "payload",
	})
	require.NoError(t, err)
	return resp
}

func TestShareService_Create(t *testing.T) {
	svc, _ := newShareService(t)

	resp, err := svc.Create(context.Background(), CreateShareInput{
		UserID:      42,
		Title:       "standup room",
		Description: "meeting shortlink",
		ContentType: entity.ContentTypeShortlink,
		Content:     "https://meet.example.com/very-long-url",
		ShortCode:   "standup",
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, "shortlink", resp.ContentType)
	assert.Equal(t, "standup", resp.ShortCode)
}

func TestShareService_Create_InvalidContentType(t *testing.T) {
	svc, repo := newShareService(t)

	_, err := svc.Create(context.Background(), CreateShareInput{
		UserID:      1,
		Title:       "bad",
		ContentType: entity.ContentType("video"),
	})
	assert.ErrorIs(t, err, ErrInvalidContentType)
	assert.Empty(t, repo.shares, "nothing may be persisted on rejection")
}

func TestShareService_GetByID_NotFound(t *testing.T) {
	svc, _ := newShareService(t)

	_, err := svc.GetByID(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrShareNotFound)
}

func TestShareService_GetAll(t *testing.T) {
	svc, _ := newShareService(t)

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all, "empty collection, not nil error")

	createShare(t, svc, "first", entity.ContentTypeCode)
	createShare(t, svc, "second", entity.ContentTypeMarkdown)

	all, err = svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Title)
	assert.Equal(t, "second", all[1].Title)
}

func TestShareService_Update_FullReplace(t *testing.T) {
	svc, repo := newShareService(t)
	created := createShare(t, svc, "draft", entity.ContentTypeMarkdown)
	before, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)

	// Every field overwrites, including ones sent empty.
	resp, err := svc.Update(context.Background(), created.ID, UpdateShareInput{
		Title:       "final",
		ContentType: entity.ContentTypeLink,
		Content:     "https://example.com/doc",
	})
	require.NoError(t, err)
	assert.Equal(t, "final", resp.Title)
	assert.Equal(t, "link", resp.ContentType)
	assert.Empty(t, resp.Description, "omitted description is cleared, not preserved")

	after, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, before.UserID, after.UserID, "ownership never changes on update")
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
	assert.True(t, after.CreatedAt.Equal(before.CreatedAt))
}

func TestShareService_Update_InvalidContentType(t *testing.T) {
	svc, _ := newShareService(t)
	created := createShare(t, svc, "keep", entity.ContentTypeCode)

	_, err := svc.Update(context.Background(), created.ID, UpdateShareInput{
		Title:       "x",
		ContentType: entity.ContentType("gif"),
	})
	assert.ErrorIs(t, err, ErrInvalidContentType)

	unchanged, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep", unchanged.Title)
}

func TestShareService_Update_NotFound(t *testing.T) {
	svc, _ := newShareService(t)

	_, err := svc.Update(context.Background(), 777, UpdateShareInput{
		Title:       "x",
		ContentType: entity.ContentTypeCode,
	})
	assert.ErrorIs(t, err, ErrShareNotFound)
}

func TestShareService_Delete(t *testing.T) {
	svc, _ := newShareService(t)
	created := createShare(t, svc, "ephemeral", entity.ContentTypeCode)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err := svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrShareNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrShareNotFound)
}

func TestShareService_Search_NotConfigured(t *testing.T) {
	svc, _ := newShareService(t)

	hits, err := svc.Search(context.Background(), "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, hits, "search degrades to empty when ES is absent")
}

func TestShareService_UploadFile_NotConfigured(t *testing.T) {
	svc, _ := newShareService(t)

	_, err := svc.UploadFile(context.Background(), 1, nil, "a.png", "image/png")
	assert.Error(t, err)
}
