package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Harshanad03/ecommerce-sub000/internal/cart"
	"github.com/Harshanad03/ecommerce-sub000/internal/middleware"
	"github.com/Harshanad03/ecommerce-sub000/internal/repository"
)

const sessionCookie = "cart_session"

type CartHandler struct {
	carts *cart.Manager
	repo  *repository.ProductRepository
}

func NewCartHandler(carts *cart.Manager, repo *repository.ProductRepository) *CartHandler {
	return &CartHandler{carts: carts, repo: repo}
}

// cartOwner resuelve el dueño del carrito: la cuenta logueada o una
// cookie de sesión de invitado.
func cartOwner(c *gin.Context) string {
	if claims, ok := middleware.SessionClaims(c); ok {
		return claims.Email
	}

	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(sessionCookie, id, 30*24*3600, "/", "", false, true)
	return id
}

func cartResponse(store *cart.Store) gin.H {
	return gin.H{
		"items":       store.Items(),
		"total_items": store.TotalItems(),
		"total_price": store.TotalPrice(),
	}
}

type addItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateItemInput struct {
	Quantity int `json:"quantity"`
}

// GET /v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.carts.For(cartOwner(c))
	c.JSON(http.StatusOK, cartResponse(store))
}

// POST /v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var input addItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := h.repo.GetByID(c.Request.Context(), input.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	store := h.carts.For(cartOwner(c))
	store.AddItem(product, input.Quantity)
	c.JSON(http.StatusOK, cartResponse(store))
}

// PUT /v1/cart/items/:product_id — seteo absoluto; cantidad <= 0 saca
// la línea.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var input updateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := h.carts.For(cartOwner(c))
	store.UpdateQuantity(c.Param("product_id"), input.Quantity)
	c.JSON(http.StatusOK, cartResponse(store))
}

// DELETE /v1/cart/items/:product_id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	store := h.carts.For(cartOwner(c))
	store.RemoveItem(c.Param("product_id"))
	c.JSON(http.StatusOK, cartResponse(store))
}

// DELETE /v1/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store := h.carts.For(cartOwner(c))
	store.Clear()
	c.JSON(http.StatusOK, cartResponse(store))
}
