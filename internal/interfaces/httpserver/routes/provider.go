package routes

import (
	"github.com/gin-gonic/gin"

	"capper-server/internal/interfaces/httpserver/handlers"
	v1 "capper-server/internal/interfaces/httpserver/routes/v1"
)

// Provider holds all route registrars.
type Provider struct {
	V1 *v1.Routes
}

// NewProvider creates the route provider.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		V1: v1.NewRoutes(handlerProvider),
	}
}

// Register attaches every route group to the engine.
func (p *Provider) Register(engine *gin.Engine) {
	p.V1.Register(engine)
}
