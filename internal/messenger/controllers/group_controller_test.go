package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doni/social-network/internal/messenger/models/dto"
	"github.com/doni/social-network/internal/pkg/apperrors"
	"github.com/doni/social-network/internal/pkg/auth"
	"github.com/doni/social-network/internal/pkg/problem"
	"github.com/doni/social-network/internal/pkg/validation"
)

type fakeGroupService struct {
	groups    map[int64]dto.GroupResponse
	createdID int64
}

func (f *fakeGroupService) find(id int64) (*dto.GroupResponse, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, apperrors.NotFound("messenger-api.groups.errors.not_found")
	}
	return &g, nil
}

func (f *fakeGroupService) GetAllByUserID(ctx context.Context, userID string) ([]dto.GroupResponse, error) {
	var result []dto.GroupResponse
	for _, g := range f.groups {
		for _, m := range g.Members {
			if m == userID {
				result = append(result, g)
				break
			}
		}
	}
	return result, nil
}

func (f *fakeGroupService) GetByID(ctx context.Context, id int64, callerID string) (*dto.GroupResponse, error) {
	return f.find(id)
}

func (f *fakeGroupService) Create(ctx context.Context, callerID string, req dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	f.createdID++
	g := dto.GroupResponse{ID: f.createdID, Title: *req.Title, Description: req.Description, OwnerID: callerID, Members: []string{callerID}}
	f.groups[g.ID] = g
	return &g, nil
}

func (f *fakeGroupService) Update(ctx context.Context, id int64, callerID string, req dto.UpdateGroupRequest) error {
	g, err := f.find(id)
	if err != nil {
		return err
	}
	if g.OwnerID != callerID {
		return apperrors.NotOwner("messenger-api.groups.update.errors.user_is_not_owner")
	}
	return nil
}

func (f *fakeGroupService) Delete(ctx context.Context, id int64, callerID string) error {
	g, err := f.find(id)
	if err != nil {
		return err
	}
	if g.OwnerID != callerID {
		return apperrors.NotOwner("messenger-api.groups.delete.errors.user_is_not_owner")
	}
	delete(f.groups, id)
	return nil
}

func (f *fakeGroupService) AddUser(ctx context.Context, id int64, callerID string, req dto.AddUserRequest) error {
	g, err := f.find(id)
	if err != nil {
		return err
	}
	if g.OwnerID != callerID {
		return apperrors.NotOwner("messenger-api.groups.add-user.errors.user_is_not_owner")
	}
	for _, m := range g.Members {
		if m == *req.UserID {
			return apperrors.AlreadyExists("messenger-api.groups.add-user.errors.user_is_already_in_group")
		}
	}
	g.Members = append(g.Members, *req.UserID)
	f.groups[id] = *g
	return nil
}

func (f *fakeGroupService) KickUser(ctx context.Context, id int64, callerID string, req dto.KickUserRequest) error {
	g, err := f.find(id)
	if err != nil {
		return err
	}
	if g.OwnerID != callerID {
		return apperrors.NotOwner("messenger-api.groups.kick-user.errors.user_is_not_owner")
	}
	for _, m := range g.Members {
		if m == *req.UserID {
			return nil
		}
	}
	return apperrors.NotParticipant("messenger-api.groups.kick-user.errors.user_is_not_participant")
}

func (f *fakeGroupService) LeaveGroup(ctx context.Context, id int64, callerID string) error {
	g, err := f.find(id)
	if err != nil {
		return err
	}
	for _, m := range g.Members {
		if m == callerID {
			return nil
		}
	}
	return apperrors.NotParticipant("messenger-api.groups.leave-group.errors.user_is_not_participant")
}

func setupGroupRouter(t *testing.T, service *fakeGroupService, subject string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterCustomValidators())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), subject, "token"))
	})
	NewGroupController(service).RegisterRoutes(router.Group("/messenger-api"))
	return router
}

func TestGroupController_Create(t *testing.T) {
	service := &fakeGroupService{groups: map[int64]dto.GroupResponse{}}
	router := setupGroupRouter(t, service, "j.dewar")

	body := `{"title":"Группа по интересам"}`
	req := httptest.NewRequest(http.MethodPost, "/messenger-api/groups", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/messenger-api/groups/1", w.Header().Get("Location"))

	var created dto.GroupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "j.dewar", created.OwnerID)
	assert.Equal(t, []string{"j.dewar"}, created.Members)
}

func TestGroupController_Create_BlankTitle(t *testing.T) {
	service := &fakeGroupService{groups: map[int64]dto.GroupResponse{}}
	router := setupGroupRouter(t, service, "j.dewar")

	req := httptest.NewRequest(http.MethodPost, "/messenger-api/groups", strings.NewReader(`{"title":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var detail problem.Detail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Contains(t, detail.Errors, "Название группы не должно быть пустым")
}

func TestGroupController_AddUser(t *testing.T) {
	service := &fakeGroupService{groups: map[int64]dto.GroupResponse{
		1: {ID: 1, Title: "группа", OwnerID: "j.dewar", Members: []string{"j.dewar"}},
	}}
	router := setupGroupRouter(t, service, "j.dewar")

	req := httptest.NewRequest(http.MethodPatch, "/messenger-api/groups/1/add-user", strings.NewReader(`{"userId":"m.reid"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGroupController_AddUser_AlreadyMember(t *testing.T) {
	service := &fakeGroupService{groups: map[int64]dto.GroupResponse{
		1: {ID: 1, Title: "группа", OwnerID: "j.dewar", Members: []string{"j.dewar", "m.reid"}},
	}}
	router := setupGroupRouter(t, service, "j.dewar")

	req := httptest.NewRequest(http.MethodPatch, "/messenger-api/groups/1/add-user", strings.NewReader(`{"userId":"m.reid"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var detail problem.Detail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "already_exists", detail.Code)
	assert.Equal(t, "Пользователь уже состоит в группе", detail.Detail)
}

func TestGroupController_KickUser_NotOwner(t *testing.T) {
	service := &fakeGroupService{groups: map[int64]dto.GroupResponse{
		1: {ID: 1, Title: "группа", OwnerID: "m.reid", Members: []string{"j.dewar", "m.reid"}},
	}}
	router := setupGroupRouter(t, service, "j.dewar")

	req := httptest.NewRequest(http.MethodDelete, "/messenger-api/groups/1/kick-user", strings.NewReader(`{"userId":"m.reid"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var detail problem.Detail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "not_owner", detail.Code)
}

func TestGroupController_LeaveGroup_NotMember(t *testing.T) {
	service := &fakeGroupService{groups: map[int64]dto.GroupResponse{
		1: {ID: 1, Title: "группа", OwnerID: "m.reid", Members: []string{"m.reid"}},
	}}
	router := setupGroupRouter(t, service, "j.dewar")

	req := httptest.NewRequest(http.MethodDelete, "/messenger-api/groups/1/leave-group", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var detail problem.Detail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "not_participant", detail.Code)
	assert.Equal(t, "Пользователь не является участником группы", detail.Detail)
}

func TestGroupController_GetByID_NotFound(t *testing.T) {
	service := &fakeGroupService{groups: map[int64]dto.GroupResponse{}}
	router := setupGroupRouter(t, service, "j.dewar")

	req := httptest.NewRequest(http.MethodGet, "/messenger-api/groups/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var detail problem.Detail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Такой группы не существует", detail.Detail)
}
