package handlers

import (
	"github.com/gin-gonic/gin"

	"capper-server/internal/interfaces/httpserver/dto"
	"capper-server/internal/utils/platformerrors"
)

// respondError maps a domain error onto the uniform error envelope.
func respondError(c *gin.Context, err error) {
	c.JSON(platformerrors.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
}
