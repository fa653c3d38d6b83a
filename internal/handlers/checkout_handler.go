package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshanad03/ecommerce-sub000/internal/cart"
	"github.com/Harshanad03/ecommerce-sub000/internal/middleware"
	"github.com/Harshanad03/ecommerce-sub000/internal/orders"
)

type CheckoutHandler struct {
	carts  *cart.Manager
	orders *orders.Service
}

func NewCheckoutHandler(carts *cart.Manager, orders *orders.Service) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, orders: orders}
}

type checkoutInput struct {
	Email string `json:"email" binding:"omitempty,email"`
}

// POST /v1/checkout — arma la orden con el snapshot del carrito y lo
// vacía.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	// Cuerpo opcional: una sesión logueada puede mandar POST vacío.
	var input checkoutInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	email := input.Email
	if claims, ok := middleware.SessionClaims(c); ok {
		email = claims.Email
	}

	store := h.carts.For(cartOwner(c))
	order, err := h.orders.Place(c.Request.Context(), email, store)
	switch {
	case errors.Is(err, orders.ErrMissingEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "email required for guest checkout"})
		return
	case errors.Is(err, orders.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not place order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GET /v1/orders — historial de la cuenta logueada, o por
// ?email= para checkouts de invitado.
func (h *CheckoutHandler) History(c *gin.Context) {
	email := c.Query("email")
	if claims, ok := middleware.SessionClaims(c); ok {
		email = claims.Email
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email required"})
		return
	}

	history := h.orders.History(c.Request.Context(), email)
	c.JSON(http.StatusOK, gin.H{"orders": history, "total": len(history)})
}
