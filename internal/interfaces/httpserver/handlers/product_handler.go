package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"capper-server/internal/domain/catalog"
	"capper-server/internal/interfaces/httpserver/dto"
)

// ProductHandler exposes CRUD endpoints for the product catalog.
type ProductHandler struct {
	service catalog.Service
	log     zerolog.Logger
}

// NewProductHandler constructs the handler.
func NewProductHandler(service catalog.Service, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /v1/products. The optional limit query parameter caps
// the result size.
func (h *ProductHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	products, err := h.service.ListProducts(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get handles GET /v1/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid product id"})
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create handles POST /v1/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	product := catalog.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := h.service.CreateProduct(c.Request.Context(), &product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update handles PUT /v1/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid product id"})
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	product := catalog.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := h.service.UpdateProduct(c.Request.Context(), &product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /v1/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid product id"})
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
