package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"movievault/internal/auth"
	"movievault/internal/service"
	"movievault/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users     service.UserService
	movies    service.MovieService
	teams     service.TeamService
	tokens    *auth.Manager
	storage   storage.Service
	bucket    string
	keyPrefix string
	cors      string
	logger    *logrus.Logger
}

func NewHandler(
	users service.UserService,
	movies service.MovieService,
	teams service.TeamService,
	tokens *auth.Manager,
	store storage.Service,
	bucket, keyPrefix, corsOrigin string,
	logger *logrus.Logger,
) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		users:     users,
		movies:    movies,
		teams:     teams,
		tokens:    tokens,
		storage:   store,
		bucket:    bucket,
		keyPrefix: keyPrefix,
		cors:      corsOrigin,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(h.cors))

	// public allow-list: login, registration and liveness
	router.POST("/login", h.login)
	router.POST("/register", h.register)
	router.PUT("/register", h.register)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	api := router.Group("", h.authRequired())
	{
		api.GET("/me", h.me)

		api.GET("/movies", h.listMovies)
		api.GET("/movieList", h.listMovies)
		api.POST("/movies", h.createMovie)
		api.PATCH("/movies/:id", h.updateMovie)
		api.DELETE("/movies/:id", h.deleteMovie)
		api.POST("/movies/:id/poster", h.uploadPoster)
		api.GET("/movies/:id/poster", h.posterURL)

		api.POST("/pokemon", h.createTeam)
		api.GET("/pokemon/:teamId", h.getTeam)
		api.PATCH("/pokemon/:teamId", h.addTeamMember)
		api.PATCH("/pokemon/:teamId/removeByName", h.removeTeamMember)
	}
}

func corsMiddleware(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if origin != "*" {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// response is the envelope every endpoint answers with. rc=0 means success,
// rc=1 an application level failure, independent of the HTTP status.
type response struct {
	RC   int    `json:"rc"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func respondOK(c *gin.Context, status int, msg string, data any) {
	c.JSON(status, response{RC: 0, Msg: msg, Data: data})
}

func respondErr(c *gin.Context, status int, msg string) {
	c.JSON(status, response{RC: 1, Msg: msg})
}

// respondServiceError maps service sentinels to the HTTP taxonomy. Anything
// unclassified is logged server-side and answered with a generic 500.
func (h *Handler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondErr(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondErr(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrUserNotFound):
		respondErr(c, http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrMovieNotFound):
		respondErr(c, http.StatusNotFound, "movie not found")
	case errors.Is(err, service.ErrTeamNotFound):
		respondErr(c, http.StatusNotFound, "team not found")
	case errors.Is(err, service.ErrMemberNotFound):
		respondErr(c, http.StatusNotFound, "member not found in team")
	case errors.Is(err, service.ErrUserAlreadyExists):
		respondErr(c, http.StatusConflict, "user already exists")
	case errors.Is(err, service.ErrMovieAlreadyExists):
		respondErr(c, http.StatusConflict, "movie already exists")
	case errors.Is(err, service.ErrTeamAlreadyExists):
		respondErr(c, http.StatusConflict, "team already exists")
	case errors.Is(err, service.ErrTeamFull):
		respondErr(c, http.StatusBadRequest, "team is full")
	default:
		h.logger.WithError(err).Error("request failed")
		respondErr(c, http.StatusInternalServerError, "internal server error")
	}
}

func contextWithTimeout(c *gin.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), d)
}

// resourceID validates a path or query identifier. All id-taking movie routes
// share this guard so a malformed id is a 400, never a 500.
func resourceID(c *gin.Context, id string) (string, bool) {
	if _, err := uuid.Parse(id); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid id format")
		return "", false
	}
	return id, true
}
