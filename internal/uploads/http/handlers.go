package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uxrlab/uxr-backend/internal/generation/extract"
	"github.com/uxrlab/uxr-backend/internal/uploads"
)

const previewLength = 500

// Handler accepts one research document per request and stores it under a
// fresh id.
type Handler struct {
	store *uploads.Store
}

func New(store *uploads.Store) *Handler {
	return &Handler{store: store}
}

// Register attaches the upload route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extract.Supported(ext) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid file type. Allowed types: %s", strings.Join(extract.Extensions, ", ")),
		})
		return
	}

	if file.Size > h.store.MaxBytes() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File too large. Maximum size is %dMB", h.store.MaxBytes()/1024/1024),
		})
		return
	}

	id := h.store.NewID(file.Filename)
	if err := c.SaveUploadedFile(file, h.store.Path(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file", "message": err.Error()})
		return
	}

	// Parse once at upload time so the UI gets a content preview and a
	// malformed file is rejected before it reaches a generation run.
	content, err := extract.Extract(h.store.Path(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            id,
		"name":          file.Filename,
		"type":          file.Header.Get("Content-Type"),
		"size":          file.Size,
		"sizeFormatted": uploads.HumanSize(file.Size),
		"preview":       extract.Preview(content, previewLength),
		"contentLength": len(content),
	})
}
