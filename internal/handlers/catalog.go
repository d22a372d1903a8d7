package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"electroparts-backend/internal/models"
)

// listProducts returns the catalog, optionally narrowed to offers or to a
// single category slug, together with the full category list for the filter
// sidebar. An unknown slug yields an empty product list, not an error.
func (s *server) listProducts(c *gin.Context) {
	query := s.db.Preload("Category").Order("created_at desc")

	if c.Query("offersOnly") == "true" {
		query = query.Where("is_offer = ?", true)
	}
	if slug := c.Query("category"); slug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", slug)
	}

	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		slog.Error("failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	categories := []models.Category{}
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		slog.Error("failed to list categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "categories": categories})
}
