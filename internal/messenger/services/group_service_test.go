package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doni/social-network/internal/messenger/models"
	"github.com/doni/social-network/internal/messenger/models/dto"
	"github.com/doni/social-network/internal/pkg/apperrors"
)

type fakeGroupRepo struct {
	groups  map[int64]models.Group
	nextID  int64
	deleted []int64
}

func newFakeGroupRepo(groups ...models.Group) *fakeGroupRepo {
	repo := &fakeGroupRepo{groups: map[int64]models.Group{}, nextID: 1}
	for _, g := range groups {
		repo.groups[g.ID] = g
		if g.ID >= repo.nextID {
			repo.nextID = g.ID + 1
		}
	}
	return repo
}

func (f *fakeGroupRepo) FindAllByUserID(ctx context.Context, userID string) ([]models.Group, error) {
	var result []models.Group
	for _, g := range f.groups {
		if g.IsMember(userID) {
			result = append(result, g)
		}
	}
	return result, nil
}

func (f *fakeGroupRepo) FindByID(ctx context.Context, id int64) (*models.Group, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (f *fakeGroupRepo) SaveWithOwner(ctx context.Context, group *models.Group) (int64, error) {
	id := f.nextID
	f.nextID++
	group.ID = id
	saved := *group
	saved.Members = []string{group.OwnerID}
	f.groups[id] = saved
	return id, nil
}

func (f *fakeGroupRepo) Update(ctx context.Context, group *models.Group) error {
	f.groups[group.ID] = *group
	return nil
}

func (f *fakeGroupRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	delete(f.groups, id)
	return nil
}

func (f *fakeGroupRepo) AddMember(ctx context.Context, groupID int64, userID string) error {
	g := f.groups[groupID]
	g.Members = append(g.Members, userID)
	f.groups[groupID] = g
	return nil
}

func (f *fakeGroupRepo) RemoveMember(ctx context.Context, groupID int64, userID string) error {
	g := f.groups[groupID]
	var members []string
	for _, m := range g.Members {
		if m != userID {
			members = append(members, m)
		}
	}
	g.Members = members
	f.groups[groupID] = g
	return nil
}

func strPtr(s string) *string { return &s }

func ownedGroup(id int64, ownerID string, members ...string) models.Group {
	return models.Group{ID: id, Title: "группа", OwnerID: ownerID, Members: members}
}

func TestGroupService_Create_OwnerIsSoleMember(t *testing.T) {
	repo := newFakeGroupRepo()
	service := NewGroupService(repo)

	created, err := service.Create(context.Background(), "j.dewar", dto.CreateGroupRequest{Title: strPtr("группа")})

	require.NoError(t, err)
	assert.Equal(t, "j.dewar", created.OwnerID)
	assert.Equal(t, []string{"j.dewar"}, created.Members)
}

func TestGroupService_GetByID_NotParticipant(t *testing.T) {
	repo := newFakeGroupRepo(ownedGroup(1, "j.dewar", "j.dewar", "m.reid"))
	service := NewGroupService(repo)

	_, err := service.GetByID(context.Background(), 1, "k.voss")

	assert.True(t, errors.Is(err, apperrors.ErrNotParticipant))
	assert.Equal(t, "messenger-api.groups.errors.user_is_not_participant", apperrors.MessageKeyOf(err))
}

func TestGroupService_Update_NotOwner(t *testing.T) {
	repo := newFakeGroupRepo(ownedGroup(1, "j.dewar", "j.dewar", "m.reid"))
	service := NewGroupService(repo)

	err := service.Update(context.Background(), 1, "m.reid", dto.UpdateGroupRequest{Title: strPtr("другое название")})

	assert.True(t, errors.Is(err, apperrors.ErrNotOwner))
	assert.Equal(t, "messenger-api.groups.update.errors.user_is_not_owner", apperrors.MessageKeyOf(err))
}

func TestGroupService_AddUser_NotOwner(t *testing.T) {
	repo := newFakeGroupRepo(ownedGroup(1, "j.dewar", "j.dewar", "m.reid"))
	service := NewGroupService(repo)

	err := service.AddUser(context.Background(), 1, "m.reid", dto.AddUserRequest{UserID: strPtr("k.voss")})

	assert.True(t, errors.Is(err, apperrors.ErrNotOwner))
	assert.Equal(t, "messenger-api.groups.add-user.errors.user_is_not_owner", apperrors.MessageKeyOf(err))
}

func TestGroupService_AddUser_AlreadyMember(t *testing.T) {
	repo := newFakeGroupRepo(ownedGroup(1, "j.dewar", "j.dewar", "m.reid"))
	service := NewGroupService(repo)

	err := service.AddUser(context.Background(), 1, "j.dewar", dto.AddUserRequest{UserID: strPtr("m.reid")})

	assert.True(t, errors.Is(err, apperrors.ErrAlreadyExists))
	assert.Equal(t, "messenger-api.groups.add-user.errors.user_is_already_in_group", apperrors.MessageKeyOf(err))
}

func TestGroupService_AddUser_Owner(t *testing.T) {
	repo := newFakeGroupRepo(ownedGroup(1, "j.dewar", "j.dewar"))
	service := NewGroupService(repo)

	err := service.AddUser(context.Background(), 1, "j.dewar", dto.AddUserRequest{UserID: strPtr("m.reid")})

	require.NoError(t, err)
	g := repo.groups[1]
	assert.True(t, g.IsMember("m.reid"))
}

func TestGroupService_KickUser_NotMember(t *testing.T) {
	repo := newFakeGroupRepo(ownedGroup(1, "j.dewar", "j.dewar"))
	service := NewGroupService(repo)

	err := service.KickUser(context.Background(), 1, "j.dewar", dto.KickUserRequest{UserID: strPtr("k.voss")})

	assert.True(t, errors.Is(err, apperrors.ErrNotParticipant))
	assert.Equal(t, "messenger-api.groups.kick-user.errors.user_is_not_participant", apperrors.MessageKeyOf(err))
}

func TestGroupService_KickUser_Owner(t *testing.T) {
	repo := newFakeGroupRepo(ownedGroup(1, "j.dewar", "j.dewar", "m.reid"))
	service := NewGroupService(repo)

	err := service.KickUser(context.Background(), 1, "j.dewar", dto.KickUserRequest{UserID: strPtr("m.reid")})

	require.NoError(t, err)
	g := repo.groups[1]
	assert.False(t, g.IsMember("m.reid"))
}

func TestGroupService_LeaveGroup_NotParticipant(t *testing.T) {
	repo := newFakeGroupRepo(ownedGroup(1, "j.dewar", "j.dewar"))
	service := NewGroupService(repo)

	err := service.LeaveGroup(context.Background(), 1, "k.voss")

	assert.True(t, errors.Is(err, apperrors.ErrNotParticipant))
	assert.Equal(t, "messenger-api.groups.leave-group.errors.user_is_not_participant", apperrors.MessageKeyOf(err))
}

func TestGroupService_LeaveGroup_Member(t *testing.T) {
	repo := newFakeGroupRepo(ownedGroup(1, "j.dewar", "j.dewar", "m.reid"))
	service := NewGroupService(repo)

	err := service.LeaveGroup(context.Background(), 1, "m.reid")

	require.NoError(t, err)
	g := repo.groups[1]
	assert.False(t, g.IsMember("m.reid"))
}

func TestGroupService_Delete_NotFound(t *testing.T) {
	service := NewGroupService(newFakeGroupRepo())

	err := service.Delete(context.Background(), 42, "j.dewar")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "messenger-api.groups.errors.not_found", apperrors.MessageKeyOf(err))
}
