// Package gateway is a path-prefix reverse proxy in front of the services.
package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/doni/social-network/internal/config"
	"github.com/doni/social-network/internal/middleware"
	"github.com/doni/social-network/internal/pkg/problem"
)

// BuildRouter assembles the gin engine of the api gateway. Each configured
// route forwards its path prefix to one downstream service, preserving
// method, body and headers (the Authorization header included).
func BuildRouter(cfg *config.Config, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(lgr))

	for _, route := range cfg.Routes {
		target, err := url.Parse(route.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid route url %q: %w", route.URL, err)
		}

		proxy := httputil.NewSingleHostReverseProxy(target)
		proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			lgr.Error().Err(err).Str("path", r.URL.Path).Msg("Downstream service call failed")
			writeProblem(w, problem.New(http.StatusBadGateway, "Сервис временно недоступен"), r.URL.Path)
		}

		lgr.Info().Str("prefix", route.Prefix).Str("url", route.URL).Msg("Route registered")
		router.Any(route.Prefix+"/*any", func(c *gin.Context) {
			proxy.ServeHTTP(c.Writer, c.Request)
		})
	}

	router.NoRoute(func(c *gin.Context) {
		problem.Abort(c, problem.New(http.StatusNotFound, "Ресурс не найден"))
	})

	return router, nil
}

func writeProblem(w http.ResponseWriter, d *problem.Detail, instance string) {
	d.Instance = instance
	w.Header().Set("Content-Type", problem.ContentType)
	w.WriteHeader(d.Status)
	body, _ := json.Marshal(d)
	_, _ = w.Write(body)
}
