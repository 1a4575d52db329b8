package services

import (
	"context"

	"github.com/doni/social-network/internal/messenger/models"
	"github.com/doni/social-network/internal/messenger/models/dto"
	"github.com/doni/social-network/internal/pkg/apperrors"
	"github.com/doni/social-network/internal/pkg/logger"
)

// GroupRepository is the storage contract the group service depends on.
type GroupRepository interface {
	FindAllByUserID(ctx context.Context, userID string) ([]models.Group, error)
	FindByID(ctx context.Context, id int64) (*models.Group, error)
	SaveWithOwner(ctx context.Context, group *models.Group) (int64, error)
	Update(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id int64) error
	AddMember(ctx context.Context, groupID int64, userID string) error
	RemoveMember(ctx context.Context, groupID int64, userID string) error
}

// GroupService defines the group operations
type GroupService interface {
	GetAllByUserID(ctx context.Context, userID string) ([]dto.GroupResponse, error)
	GetByID(ctx context.Context, id int64, callerID string) (*dto.GroupResponse, error)
	Create(ctx context.Context, callerID string, req dto.CreateGroupRequest) (*dto.GroupResponse, error)
	Update(ctx context.Context, id int64, callerID string, req dto.UpdateGroupRequest) error
	Delete(ctx context.Context, id int64, callerID string) error
	AddUser(ctx context.Context, id int64, callerID string, req dto.AddUserRequest) error
	KickUser(ctx context.Context, id int64, callerID string, req dto.KickUserRequest) error
	LeaveGroup(ctx context.Context, id int64, callerID string) error
}

type groupServiceImpl struct {
	groupRepo GroupRepository
}

// NewGroupService creates a new GroupService
func NewGroupService(groupRepo GroupRepository) GroupService {
	return &groupServiceImpl{groupRepo: groupRepo}
}

func (s *groupServiceImpl) GetAllByUserID(ctx context.Context, userID string) ([]dto.GroupResponse, error) {
	groups, err := s.groupRepo.FindAllByUserID(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Str("userId", userID).Msg("Failed to list groups")
		return nil, err
	}
	return toGroupResponses(groups), nil
}

func (s *groupServiceImpl) GetByID(ctx context.Context, id int64, callerID string) (*dto.GroupResponse, error) {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.NotFound("messenger-api.groups.errors.not_found")
	}
	if !group.IsMember(callerID) {
		return nil, apperrors.NotParticipant("messenger-api.groups.errors.user_is_not_participant")
	}
	response := toGroupResponse(*group)
	return &response, nil
}

// Create makes the caller the owner and sole initial member of the group.
func (s *groupServiceImpl) Create(ctx context.Context, callerID string, req dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	group := models.Group{
		Title:       *req.Title,
		Description: req.Description,
		OwnerID:     callerID,
		Members:     []string{callerID},
	}

	id, err := s.groupRepo.SaveWithOwner(ctx, &group)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to save group")
		return nil, err
	}
	group.ID = id

	response := toGroupResponse(group)
	return &response, nil
}

func (s *groupServiceImpl) Update(ctx context.Context, id int64, callerID string, req dto.UpdateGroupRequest) error {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if group == nil {
		return apperrors.NotFound("messenger-api.groups.errors.not_found")
	}
	if group.OwnerID != callerID {
		return apperrors.NotOwner("messenger-api.groups.update.errors.user_is_not_owner")
	}

	group.Title = *req.Title
	group.Description = req.Description
	return s.groupRepo.Update(ctx, group)
}

func (s *groupServiceImpl) Delete(ctx context.Context, id int64, callerID string) error {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if group == nil {
		return apperrors.NotFound("messenger-api.groups.errors.not_found")
	}
	if group.OwnerID != callerID {
		return apperrors.NotOwner("messenger-api.groups.delete.errors.user_is_not_owner")
	}

	return s.groupRepo.Delete(ctx, id)
}

// AddUser adds the named user to the group. Only the owner may add users,
// and a user cannot be added twice.
func (s *groupServiceImpl) AddUser(ctx context.Context, id int64, callerID string, req dto.AddUserRequest) error {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if group == nil {
		return apperrors.NotFound("messenger-api.groups.errors.not_found")
	}
	if group.OwnerID != callerID {
		return apperrors.NotOwner("messenger-api.groups.add-user.errors.user_is_not_owner")
	}
	if group.IsMember(*req.UserID) {
		return apperrors.AlreadyExists("messenger-api.groups.add-user.errors.user_is_already_in_group")
	}

	return s.groupRepo.AddMember(ctx, id, *req.UserID)
}

// KickUser removes the named user from the group. Only the owner may kick,
// and only members can be kicked.
func (s *groupServiceImpl) KickUser(ctx context.Context, id int64, callerID string, req dto.KickUserRequest) error {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if group == nil {
		return apperrors.NotFound("messenger-api.groups.errors.not_found")
	}
	if group.OwnerID != callerID {
		return apperrors.NotOwner("messenger-api.groups.kick-user.errors.user_is_not_owner")
	}
	if !group.IsMember(*req.UserID) {
		return apperrors.NotParticipant("messenger-api.groups.kick-user.errors.user_is_not_participant")
	}

	return s.groupRepo.RemoveMember(ctx, id, *req.UserID)
}

// LeaveGroup removes the caller from the group's member list.
func (s *groupServiceImpl) LeaveGroup(ctx context.Context, id int64, callerID string) error {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if group == nil {
		return apperrors.NotFound("messenger-api.groups.errors.not_found")
	}
	if !group.IsMember(callerID) {
		return apperrors.NotParticipant("messenger-api.groups.leave-group.errors.user_is_not_participant")
	}

	return s.groupRepo.RemoveMember(ctx, id, callerID)
}

func toGroupResponse(group models.Group) dto.GroupResponse {
	members := group.Members
	if members == nil {
		members = []string{}
	}
	return dto.GroupResponse{
		ID:          group.ID,
		Title:       group.Title,
		Description: group.Description,
		OwnerID:     group.OwnerID,
		Members:     members,
	}
}

func toGroupResponses(groups []models.Group) []dto.GroupResponse {
	responses := make([]dto.GroupResponse, 0, len(groups))
	for _, group := range groups {
		responses = append(responses, toGroupResponse(group))
	}
	return responses
}
