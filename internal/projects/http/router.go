package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.GET("/:id/deliverables", h.deliverables)
	rg.PUT("/:id", h.rename)
	rg.DELETE("/:id", h.delete)
}
