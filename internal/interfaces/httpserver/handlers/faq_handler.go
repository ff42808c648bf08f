package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"capper-server/internal/domain/knowledge"
	"capper-server/internal/interfaces/httpserver/dto"
)

// FAQHandler exposes CRUD endpoints for referral-program FAQs.
type FAQHandler struct {
	service knowledge.Service
	log     zerolog.Logger
}

// NewFAQHandler constructs the handler.
func NewFAQHandler(service knowledge.Service, log zerolog.Logger) *FAQHandler {
	return &FAQHandler{
		service: service,
		log:     log.With().Str("handler", "faq").Logger(),
	}
}

// List handles GET /v1/faqs.
func (h *FAQHandler) List(c *gin.Context) {
	faqs, err := h.service.ListFAQs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// Get handles GET /v1/faqs/:id.
func (h *FAQHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid faq id"})
		return
	}

	faq, err := h.service.GetFAQ(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, faq)
}

// Create handles POST /v1/faqs.
func (h *FAQHandler) Create(c *gin.Context) {
	var req dto.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	faq := knowledge.FAQ{Question: req.Question, Answer: req.Answer}
	if err := h.service.CreateFAQ(c.Request.Context(), &faq); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, faq)
}

// Update handles PUT /v1/faqs/:id.
func (h *FAQHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid faq id"})
		return
	}

	var req dto.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	faq := knowledge.FAQ{ID: id, Question: req.Question, Answer: req.Answer}
	if err := h.service.UpdateFAQ(c.Request.Context(), &faq); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, faq)
}

// Delete handles DELETE /v1/faqs/:id.
func (h *FAQHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid faq id"})
		return
	}

	if err := h.service.DeleteFAQ(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
