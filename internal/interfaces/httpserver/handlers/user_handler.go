package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"capper-server/internal/domain/user"
	"capper-server/internal/interfaces/httpserver/dto"
)

// UserHandler exposes read-only user endpoints.
type UserHandler struct {
	service user.Service
	log     zerolog.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(service user.Service, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With().Str("handler", "user").Logger(),
	}
}

// List handles GET /v1/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /v1/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	usr, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
