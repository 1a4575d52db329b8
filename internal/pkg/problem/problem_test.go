package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doni/social-network/internal/pkg/validation"
)

type createRequest struct {
	Title *string `json:"title" binding:"required,notblank,min=3,max=200"`
}

var createKeys = MessageKeys{
	"Title.required": "publication-api.publications.create.errors.title_is_null",
	"Title.notblank": "publication-api.publications.create.errors.title_is_blank",
	"Title.min":      "publication-api.publications.create.errors.title_size_is_invalid",
	"Title.max":      "publication-api.publications.create.errors.title_size_is_invalid",
}

func bindAndServe(t *testing.T, body string) (*httptest.ResponseRecorder, Detail) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterCustomValidators())

	router := gin.New()
	router.POST("/publications", func(c *gin.Context) {
		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortBinding(c, err, createKeys)
			return
		}
		c.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/publications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var detail Detail
	if rec.Code != http.StatusCreated {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	}
	return rec, detail
}

func TestAbortBinding_MissingField(t *testing.T) {
	rec, detail := bindAndServe(t, `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Плохой запрос", detail.Detail)
	assert.Equal(t, []string{"Название публикаций должно быть указано"}, detail.Errors)
	assert.Equal(t, "/publications", detail.Instance)
}

func TestAbortBinding_BlankField(t *testing.T) {
	rec, detail := bindAndServe(t, `{"title": "   "}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, detail.Errors, "Название публикаций не должно быть пустым")
}

func TestAbortBinding_TooShort(t *testing.T) {
	rec, detail := bindAndServe(t, `{"title": "ab"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, detail.Errors, "Название публикаций должно содержать от 3 до 200 символов")
}

func TestAbortBinding_MalformedJSON(t *testing.T) {
	rec, detail := bindAndServe(t, `{"title": `)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Плохой запрос", detail.Detail)
	assert.Empty(t, detail.Errors)
}

func TestAbortBinding_ValidBody(t *testing.T) {
	rec, _ := bindAndServe(t, `{"title": "Новая публикация"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAbort_KeepsExplicitInstance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/things/1", func(c *gin.Context) {
		d := New(http.StatusNotFound, "не найдено")
		d.Instance = "/custom"
		Abort(c, d)
	})

	req := httptest.NewRequest(http.MethodGet, "/things/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var detail Detail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "/custom", detail.Instance)
	assert.Equal(t, "Not Found", detail.Title)
}
