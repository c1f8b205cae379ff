package http

import "github.com/gin-gonic/gin"

// Register attaches quote routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:filename", h.get)
	rg.GET("/:filename/pdf", h.exportPDF)
	rg.PUT("/:filename", h.update)
	rg.DELETE("/:filename", h.delete)
}
