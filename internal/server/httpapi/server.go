// Package httpapi exposes the board backend over HTTP. It binds and
// validates requests, maps domain errors to status codes, and moves the
// refresh token between its cookie and the auth service; all business rules
// live in the services package.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/commboard/commboard/internal/logging"
	"github.com/commboard/commboard/internal/server/config"
	"github.com/commboard/commboard/internal/server/services"
	"github.com/gin-gonic/gin"
)

type Server struct {
	address              string
	auth                 *services.AuthService
	users                *services.UserService
	logger               logging.Logger
	jwtSecret            []byte
	refreshTokenValidity time.Duration
}

func NewServer(cfg *config.Config, auth *services.AuthService, users *services.UserService, logger logging.Logger) *Server {
	return &Server{
		address:              cfg.EndpointAddr,
		auth:                 auth,
		users:                users,
		logger:               logger.With("module", "http_server"),
		jwtSecret:            []byte(cfg.SecretKey),
		refreshTokenValidity: cfg.RefreshTokenValidityDuration,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestID(), s.requestLogger())

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/login", s.postLogin)
		authGroup.POST("/refresh", s.postRefresh)
		authGroup.POST("/logout", s.requireAccessToken(), s.postLogout)

		userGroup := api.Group("/users")
		userGroup.POST("", s.postRegister)
		userGroup.GET("/me", s.requireAccessToken(), s.getMe)
	}

	return router
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
