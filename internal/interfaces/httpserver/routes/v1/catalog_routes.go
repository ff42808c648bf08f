package v1

import (
	"github.com/gin-gonic/gin"

	"capper-server/internal/interfaces/httpserver/handlers"
)

func registerCatalogRoutes(router gin.IRoutes, handler *handlers.ProductHandler) {
	router.GET("/products", handler.List)
	router.GET("/products/:id", handler.Get)
	router.POST("/products", handler.Create)
	router.PUT("/products/:id", handler.Update)
	router.DELETE("/products/:id", handler.Delete)
}
