package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doni/social-network/internal/feedback/models"
	"github.com/doni/social-network/internal/feedback/models/dto"
	"github.com/doni/social-network/internal/pkg/apperrors"
)

type fakeLikeRepo struct {
	likes   map[int64]models.Like
	nextID  int64
	deleted []int64
}

func newFakeLikeRepo(likes ...models.Like) *fakeLikeRepo {
	repo := &fakeLikeRepo{likes: map[int64]models.Like{}, nextID: 1}
	for _, l := range likes {
		repo.likes[l.ID] = l
		if l.ID >= repo.nextID {
			repo.nextID = l.ID + 1
		}
	}
	return repo
}

func (f *fakeLikeRepo) FindAllByPublicationID(ctx context.Context, publicationID int64) ([]models.Like, error) {
	var result []models.Like
	for _, l := range f.likes {
		if l.PublicationID == publicationID {
			result = append(result, l)
		}
	}
	return result, nil
}

func (f *fakeLikeRepo) FindByPublicationIDAndUserID(ctx context.Context, publicationID int64, userID string) (*models.Like, error) {
	for _, l := range f.likes {
		if l.PublicationID == publicationID && l.UserID == userID {
			like := l
			return &like, nil
		}
	}
	return nil, nil
}

func (f *fakeLikeRepo) Save(ctx context.Context, like *models.Like) (int64, error) {
	id := f.nextID
	f.nextID++
	like.ID = id
	f.likes[id] = *like
	return id, nil
}

func (f *fakeLikeRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	delete(f.likes, id)
	return nil
}

func TestLikeService_Create(t *testing.T) {
	repo := newFakeLikeRepo()
	service := NewLikeService(repo, publicationExists(5))

	created, err := service.Create(context.Background(), "j.dewar", dto.CreateLikeRequest{PublicationID: intPtr(5)})

	require.NoError(t, err)
	assert.Equal(t, int64(5), created.PublicationID)
	assert.Equal(t, "j.dewar", created.UserID)
}

func TestLikeService_Create_Duplicate(t *testing.T) {
	repo := newFakeLikeRepo(models.Like{ID: 1, PublicationID: 5, UserID: "j.dewar"})
	service := NewLikeService(repo, publicationExists(5))

	_, err := service.Create(context.Background(), "j.dewar", dto.CreateLikeRequest{PublicationID: intPtr(5)})

	assert.True(t, errors.Is(err, apperrors.ErrAlreadyExists))
	assert.Equal(t, "feedback-api.likes.create.errors.user_has_already_like_publication", apperrors.MessageKeyOf(err))
}

func TestLikeService_Create_PublicationAbsent(t *testing.T) {
	service := NewLikeService(newFakeLikeRepo(), &fakePublicationClient{})

	_, err := service.Create(context.Background(), "j.dewar", dto.CreateLikeRequest{PublicationID: intPtr(5)})

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "feedback-api.likes.create.errors.publication_is_not_found", apperrors.MessageKeyOf(err))
}

func TestLikeService_GetByPublicationIDAndUserID_NotFound(t *testing.T) {
	service := NewLikeService(newFakeLikeRepo(), publicationExists(5))

	_, err := service.GetByPublicationIDAndUserID(context.Background(), 5, "j.dewar")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "feedback-api.likes.errors.like_is_not_found", apperrors.MessageKeyOf(err))
}

func TestLikeService_Delete_NotOwner(t *testing.T) {
	repo := newFakeLikeRepo(models.Like{ID: 1, PublicationID: 5, UserID: "j.dewar"})
	service := NewLikeService(repo, publicationExists(5))

	err := service.Delete(context.Background(), 5, "j.dewar", "m.reid")

	assert.True(t, errors.Is(err, apperrors.ErrNotOwner))
	assert.Equal(t, "feedback-api.likes.delete.errors.user_is_not_owner", apperrors.MessageKeyOf(err))
	assert.Empty(t, repo.deleted)
}

func TestLikeService_Delete_Owner(t *testing.T) {
	repo := newFakeLikeRepo(models.Like{ID: 1, PublicationID: 5, UserID: "j.dewar"})
	service := NewLikeService(repo, publicationExists(5))

	err := service.Delete(context.Background(), 5, "j.dewar", "j.dewar")

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)
}
