package v1

import (
	"github.com/gin-gonic/gin"

	"capper-server/internal/interfaces/httpserver/handlers"
)

func registerChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/chat", handler.Chat)
	router.GET("/chat/:conversation_id/history", handler.History)
}
