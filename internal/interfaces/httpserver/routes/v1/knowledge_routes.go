package v1

import (
	"github.com/gin-gonic/gin"

	"capper-server/internal/interfaces/httpserver/handlers"
)

func registerKnowledgeRoutes(router gin.IRoutes, faqs *handlers.FAQHandler, rules *handlers.RuleHandler) {
	router.GET("/faqs", faqs.List)
	router.GET("/faqs/:id", faqs.Get)
	router.POST("/faqs", faqs.Create)
	router.PUT("/faqs/:id", faqs.Update)
	router.DELETE("/faqs/:id", faqs.Delete)

	router.GET("/referral-rules", rules.List)
	router.POST("/referral-rules", rules.Create)
	router.PUT("/referral-rules/:id", rules.Update)
	router.DELETE("/referral-rules/:id", rules.Delete)
}
