// Package httpserver manages server creation and api routing.
package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pay-engine/internal/accountdelivery"
	"github.com/go-petr/pay-engine/internal/middleware"
	"github.com/go-petr/pay-engine/pkg/configpkg"
)

// Server holds the handlers router and configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server exposing the processed account balances. The service is
// only read after processing has finished, so the routes are read-only.
func New(service accountdelivery.Service, logger zerolog.Logger, config configpkg.Config) *Server {
	accountHandler := accountdelivery.NewHandler(service)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/accounts", accountHandler.List)
	engine.GET("/accounts/:id", accountHandler.Get)

	return &Server{
		Engine: engine,
		Config: config,
	}
}
