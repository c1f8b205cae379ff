package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotecraft/quotecraft-backend/internal/customers/domain"
	"github.com/quotecraft/quotecraft-backend/internal/customers/repository"
)

// Handler bundles the dependencies for customer HTTP endpoints.
type Handler struct {
	repo *repository.Repo
}

func New(repo *repository.Repo) *Handler {
	return &Handler{repo: repo}
}

// Register attaches customer routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

type customerReq struct {
	CompanyName        string `json:"companyName" binding:"required"`
	RepresentativeName string `json:"representativeName"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	TaxExempt          bool   `json:"taxExempt"`
}

func (r customerReq) toDomain() domain.Customer {
	return domain.Customer{
		CompanyName:        r.CompanyName,
		RepresentativeName: r.RepresentativeName,
		Address:            r.Address,
		Phone:              r.Phone,
		Email:              r.Email,
		TaxExempt:          r.TaxExempt,
	}
}

func (h *Handler) list(c *gin.Context) {
	customers, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Error reading customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "customers": customers})
}

func (h *Handler) create(c *gin.Context) {
	var req customerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	customer, err := h.repo.Add(req.toDomain())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Error adding customer"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "customer": customer})
}

func (h *Handler) update(c *gin.Context) {
	var req customerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	customer := req.toDomain()
	customer.ID = c.Param("id")

	if err := h.repo.Update(customer); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Error updating customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "customer": customer})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Error deleting customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
