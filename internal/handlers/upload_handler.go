package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshanad03/ecommerce-sub000/internal/backend"
)

type UploadHandler struct {
	storage *backend.Storage
}

func NewUploadHandler(storage *backend.Storage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// POST /v1/admin/uploads — sube la imagen de producto y devuelve su
// URL pública.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read upload"})
		return
	}
	defer src.Close()

	url, err := h.storage.Upload(file.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store upload"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
