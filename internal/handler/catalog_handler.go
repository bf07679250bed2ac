package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/middleware"
	"github.com/kelvinmfon2025/book-api/internal/service"
)

// CatalogHandler handles book search and catalog HTTP requests.
type CatalogHandler struct {
	catalog service.CatalogServiceInterface
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Search handles GET /api/v1/search-by-query
func (h *CatalogHandler) Search(c *gin.Context) {
	page, err := h.catalog.Search(c.Request.Context(), c.Query("query"), paginationFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// List handles GET /api/v1/books
func (h *CatalogHandler) List(c *gin.Context) {
	page, err := h.catalog.List(c.Request.Context(), paginationFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get handles GET /api/v1/books/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	book, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// Create handles POST /api/v1/books
func (h *CatalogHandler) Create(c *gin.Context) {
	var in domain.BookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	book, err := h.catalog.Create(c.Request.Context(), middleware.GetIdentity(c), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, book)
}

// Update handles PUT /api/v1/books/:id
func (h *CatalogHandler) Update(c *gin.Context) {
	var in domain.BookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	book, err := h.catalog.Update(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// Delete handles DELETE /api/v1/books/:id
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalog.Delete(c.Request.Context(), middleware.GetIdentity(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
