package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotecraft/quotecraft-backend/internal/quotes/domain"
)

func (h *Handler) create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	result := h.svc.Create(req.toDomain())
	if !result.Success {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": result.Message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "filename": result.Filename, "message": result.Message})
}

func (h *Handler) list(c *gin.Context) {
	entries, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "quotes": entries})
}

func (h *Handler) get(c *gin.Context) {
	filename := c.Param("filename")
	if !domain.ValidFilename(filename) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid quote filename"})
		return
	}

	quote, err := h.svc.Get(filename)
	if err != nil {
		if errors.Is(err, domain.ErrQuoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "quote not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "quote": quote})
}

func (h *Handler) update(c *gin.Context) {
	filename := c.Param("filename")
	if !domain.ValidFilename(filename) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid quote filename"})
		return
	}

	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	result := h.svc.Update(req.toDomain(), filename)
	if !result.Success {
		status := http.StatusInternalServerError
		if result.NotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"ok": false, "message": result.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "filename": result.Filename, "message": result.Message})
}

func (h *Handler) delete(c *gin.Context) {
	filename := c.Param("filename")
	if !domain.ValidFilename(filename) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid quote filename"})
		return
	}

	if err := h.svc.Delete(filename); err != nil {
		if errors.Is(err, domain.ErrQuoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "quote not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) exportPDF(c *gin.Context) {
	filename := c.Param("filename")
	if !domain.ValidFilename(filename) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid quote filename"})
		return
	}

	quote, err := h.svc.Get(filename)
	if err != nil {
		if errors.Is(err, domain.ErrQuoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "quote not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	data, err := h.pdf.Generate(*quote)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "pdf generation failed"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="quote-%s.pdf"`, quote.QuoteNumber))
	c.Data(http.StatusOK, "application/pdf", data)
}
