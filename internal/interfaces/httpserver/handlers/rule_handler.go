package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"capper-server/internal/domain/knowledge"
	"capper-server/internal/interfaces/httpserver/dto"
)

// RuleHandler exposes CRUD endpoints for referral-program rules.
type RuleHandler struct {
	service knowledge.Service
	log     zerolog.Logger
}

// NewRuleHandler constructs the handler.
func NewRuleHandler(service knowledge.Service, log zerolog.Logger) *RuleHandler {
	return &RuleHandler{
		service: service,
		log:     log.With().Str("handler", "rule").Logger(),
	}
}

// List handles GET /v1/referral-rules.
func (h *RuleHandler) List(c *gin.Context) {
	rules, err := h.service.ListRules(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// Create handles POST /v1/referral-rules.
func (h *RuleHandler) Create(c *gin.Context) {
	var req dto.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rule := knowledge.ReferralRule{Rule: req.Rule}
	if err := h.service.CreateRule(c.Request.Context(), &rule); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// Update handles PUT /v1/referral-rules/:id.
func (h *RuleHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid rule id"})
		return
	}

	var req dto.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rule := knowledge.ReferralRule{ID: id, Rule: req.Rule}
	if err := h.service.UpdateRule(c.Request.Context(), &rule); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// Delete handles DELETE /v1/referral-rules/:id.
func (h *RuleHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid rule id"})
		return
	}

	if err := h.service.DeleteRule(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
