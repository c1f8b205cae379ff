package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotecraft/quotecraft-backend/internal/salestax/repository"
)

// Handler bundles the dependencies for the sales tax HTTP endpoints.
type Handler struct {
	repo *repository.Repo
}

func New(repo *repository.Repo) *Handler {
	return &Handler{repo: repo}
}

// Register attaches sales tax routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.get)
	rg.POST("", h.set)
}

type setReq struct {
	SalesTaxRate *float64 `json:"salesTaxRate" binding:"required"`
}

func (h *Handler) get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"salesTaxRate": h.repo.Get()})
}

func (h *Handler) set(c *gin.Context) {
	var req setReq
	if err := c.ShouldBindJSON(&req); err != nil || *req.SalesTaxRate < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if err := h.repo.Set(*req.SalesTaxRate); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Error saving sales tax rate"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Sales tax rate saved successfully"})
}
