package v1

import (
	"github.com/gin-gonic/gin"

	"capper-server/internal/interfaces/httpserver/handlers"
)

func registerUserRoutes(router gin.IRoutes, handler *handlers.UserHandler) {
	router.GET("/users", handler.List)
	router.GET("/users/:id", handler.Get)
}
