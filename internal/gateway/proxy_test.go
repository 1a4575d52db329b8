package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doni/social-network/internal/config"
	"github.com/doni/social-network/internal/pkg/problem"
)

// closeNotifyRecorder adds the http.CloseNotifier method that
// httputil.ReverseProxy requires from the response writer on Go < 1.23.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
}

func (c *closeNotifyRecorder) CloseNotify() <-chan bool { return make(chan bool) }

func newRecorder() *closeNotifyRecorder {
	return &closeNotifyRecorder{httptest.NewRecorder()}
}

func gatewayFor(t *testing.T, routes []config.Route) http.Handler {
	t.Helper()
	cfg := &config.Config{Routes: routes}
	cfg.Server.Mode = "production"
	router, err := BuildRouter(cfg, zerolog.Nop())
	require.NoError(t, err)
	return router
}

func TestGateway_ForwardsMethodBodyAndAuthorization(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotBody string
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer downstream.Close()

	router := gatewayFor(t, []config.Route{{Prefix: "/publication-api", URL: downstream.URL}})

	req := httptest.NewRequest(http.MethodPost, "/publication-api/publications", strings.NewReader(`{"title":"пост"}`))
	req.Header.Set("Authorization", "Bearer the-token")
	w := newRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/publication-api/publications", gotPath)
	assert.Equal(t, "Bearer the-token", gotAuth)
	assert.Equal(t, `{"title":"пост"}`, gotBody)
}

func TestGateway_UnknownPrefix(t *testing.T) {
	router := gatewayFor(t, []config.Route{{Prefix: "/publication-api", URL: "http://localhost:1"}})

	req := httptest.NewRequest(http.MethodGet, "/unknown-api/things", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var detail problem.Detail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, http.StatusNotFound, detail.Status)
}

func TestGateway_DownstreamUnreachable(t *testing.T) {
	router := gatewayFor(t, []config.Route{{Prefix: "/publication-api", URL: "http://127.0.0.1:1"}})

	req := httptest.NewRequest(http.MethodGet, "/publication-api/publications", nil)
	w := newRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var detail problem.Detail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Сервис временно недоступен", detail.Detail)
}
