package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshanad03/ecommerce-sub000/internal/backend"
	"github.com/Harshanad03/ecommerce-sub000/internal/cache"
	"github.com/Harshanad03/ecommerce-sub000/internal/kvstore"
)

// SettingsHandler administra las credenciales del backend en runtime.
// Guardar o borrar acá cambia el modo del repositorio en la siguiente
// operación, sin reiniciar el proceso.
type SettingsHandler struct {
	kv    kvstore.Store
	cache *cache.Cache
}

func NewSettingsHandler(kv kvstore.Store, cache *cache.Cache) *SettingsHandler {
	return &SettingsHandler{kv: kv, cache: cache}
}

type backendSettingsInput struct {
	URL    string `json:"url" binding:"required"`
	APIKey string `json:"api_key" binding:"required"`
}

// GET /v1/admin/settings/backend
func (h *SettingsHandler) Status(c *gin.Context) {
	creds := backend.LoadCredentials(h.kv)
	c.JSON(http.StatusOK, gin.H{
		"configured": creds.Configured(),
		"url":        creds.URL,
	})
}

// PUT /v1/admin/settings/backend
func (h *SettingsHandler) Update(c *gin.Context) {
	var input backendSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creds := backend.Credentials{URL: input.URL, APIKey: input.APIKey}
	if err := backend.SaveCredentials(h.kv, creds); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save credentials"})
		return
	}

	// El catálogo cacheado puede venir del otro modo.
	h.cache.Clear()
	c.JSON(http.StatusOK, gin.H{"configured": true})
}

// DELETE /v1/admin/settings/backend — vuelve al modo local puro.
func (h *SettingsHandler) Clear(c *gin.Context) {
	if err := backend.ClearCredentials(h.kv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear credentials"})
		return
	}

	h.cache.Clear()
	c.JSON(http.StatusOK, gin.H{"configured": false})
}
