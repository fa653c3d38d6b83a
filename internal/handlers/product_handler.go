package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Harshanad03/ecommerce-sub000/internal/cache"
	"github.com/Harshanad03/ecommerce-sub000/internal/models"
	"github.com/Harshanad03/ecommerce-sub000/internal/repository"
)

type ProductHandler struct {
	repo  *repository.ProductRepository
	cache *cache.Cache
}

func NewProductHandler(repo *repository.ProductRepository, cache *cache.Cache) *ProductHandler {
	return &ProductHandler{repo: repo, cache: cache}
}

// GET /v1/products?category=...&featured=true (con caché)
func (h *ProductHandler) ListProducts(c *gin.Context) {
	category := c.Query("category")
	featured := c.DefaultQuery("featured", "false") == "true"

	cacheKey := fmt.Sprintf("products:list:cat:%s_feat:%v", category, featured)
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	var products []models.Product
	switch {
	case featured:
		products = h.repo.GetFeatured(c.Request.Context())
	case category != "":
		products = h.repo.GetByCategory(c.Request.Context(), category)
	default:
		products = h.repo.GetAll(c.Request.Context())
	}

	response := gin.H{"products": products, "total": len(products)}
	h.cache.Set(cacheKey, response, 2*time.Minute)
	c.JSON(http.StatusOK, response)
}

// GET /v1/products/:id (con caché)
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	cacheKey := fmt.Sprintf("product:%s", productID)

	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product := h.repo.GetByID(c.Request.Context(), productID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	h.cache.Set(cacheKey, product, 5*time.Minute)
	c.JSON(http.StatusOK, product)
}

// POST /v1/admin/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created := h.repo.Add(c.Request.Context(), &product)

	// Invalidar caché de listados
	h.cache.DeleteByPrefix("products:list:")
	c.JSON(http.StatusCreated, created)
}

// PATCH /v1/admin/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := h.repo.GetByID(c.Request.Context(), productID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	update.Apply(product)
	updated, found := h.repo.Update(c.Request.Context(), product)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	h.cache.DeleteByPrefix("products:")
	h.cache.Delete(fmt.Sprintf("product:%s", productID))
	c.JSON(http.StatusOK, updated)
}

// DELETE /v1/admin/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	if found := h.repo.Delete(c.Request.Context(), productID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	h.cache.DeleteByPrefix("products:")
	h.cache.Delete(fmt.Sprintf("product:%s", productID))
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
