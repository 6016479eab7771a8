package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahsanlabs/storefront-service/internal/catalog"
)

// ListProducts returns the full catalog.
// GET /api/products
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.catalog.All()
	if err != nil {
		h.logger.Error().Err(err).Msg("Error reading products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct returns one product by id.
// GET /api/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.logger.Error().Err(err).Msg("Error reading products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read products"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// ReplaceProducts overwrites the whole catalog. There are no partial
// updates; the admin UI posts the complete product array every time.
// POST /api/products
func (h *Handler) ReplaceProducts(c *gin.Context) {
	var products []catalog.Product
	if err := c.ShouldBindJSON(&products); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be a product array"})
		return
	}

	if err := h.catalog.ReplaceAll(products); err != nil {
		h.logger.Error().Err(err).Msg("Error updating products")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.afterCatalogWrite != nil {
		// Fire-and-forget; a failed side effect never fails the write.
		go h.afterCatalogWrite()
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
