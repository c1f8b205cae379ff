package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotecraft/quotecraft-backend/internal/catalog/domain"
	"github.com/quotecraft/quotecraft-backend/internal/catalog/repository"
)

// Handler bundles the dependencies for product catalog HTTP endpoints.
type Handler struct {
	repo *repository.Repo
}

func New(repo *repository.Repo) *Handler {
	return &Handler{repo: repo}
}

// Register attaches catalog routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.replace)
}

type productReq struct {
	Description        string  `json:"description" binding:"required"`
	SquareFootagePrice float64 `json:"squareFootagePrice" binding:"min=0"`
	Dimensions         string  `json:"dimensions"`
}

func (h *Handler) list(c *gin.Context) {
	products, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Error reading data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "products": products})
}

// replace overwrites the whole catalog with the submitted list. The catalog
// is a singleton document, so there are no per-entry endpoints.
func (h *Handler) replace(c *gin.Context) {
	var reqs []productReq
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	products := make([]domain.Product, 0, len(reqs))
	for _, r := range reqs {
		products = append(products, domain.Product{
			Description:        r.Description,
			SquareFootagePrice: r.SquareFootagePrice,
			Dimensions:         r.Dimensions,
		})
	}

	if err := h.repo.Replace(products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Error writing data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Data saved successfully"})
}
