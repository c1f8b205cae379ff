package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotecraft/quotecraft-backend/internal/quotes/repository"
	"github.com/quotecraft/quotecraft-backend/internal/quotes/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewStore(t.TempDir())
	at := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.Local)
	svc := service.NewQuoteServiceWithClock(store, func() time.Time { return at })

	r := gin.New()
	New(svc).Register(r.Group("/api/v1/quotes"))
	return r
}

func validBody() map[string]any {
	return map[string]any{
		"customerName": "Acme Construction",
		"projectName":  "Lobby Remodel",
		"products": []map[string]any{
			{
				"productDescription": "Tempered 1/4\"",
				"lengthFeet":         3,
				"lengthInches":       0,
				"widthFeet":          2,
				"widthInches":        6,
				"price":              4,
			},
		},
	}
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateQuoteEndpoint(t *testing.T) {
	t.Run("saves and reports the filename", func(t *testing.T) {
		r := newTestRouter(t)

		w := doJSON(r, http.MethodPost, "/api/v1/quotes", validBody())
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			OK       bool   `json:"ok"`
			Filename string `json:"filename"`
			Message  string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.Equal(t, "quote-0101250900.json", resp.Filename)
		assert.Equal(t, "Quote saved as quote-0101250900.json", resp.Message)
	})

	t.Run("rejects a one-character customer name", func(t *testing.T) {
		r := newTestRouter(t)

		body := validBody()
		body["customerName"] = "A"
		w := doJSON(r, http.MethodPost, "/api/v1/quotes", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects negative dimensions", func(t *testing.T) {
		r := newTestRouter(t)

		body := validBody()
		body["products"].([]map[string]any)[0]["widthFeet"] = -1
		w := doJSON(r, http.MethodPost, "/api/v1/quotes", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetQuoteEndpoint(t *testing.T) {
	t.Run("returns the stored quote with the computed total", func(t *testing.T) {
		r := newTestRouter(t)
		require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/v1/quotes", validBody()).Code)

		w := doJSON(r, http.MethodGet, "/api/v1/quotes/quote-0101250900.json", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Quote struct {
				QuoteNumber string  `json:"quoteNumber"`
				Total       float64 `json:"total"`
			} `json:"quote"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "0101250900", resp.Quote.QuoteNumber)
		assert.InDelta(t, 30.0, resp.Quote.Total, 1e-9)
	})

	t.Run("404 for a missing quote", func(t *testing.T) {
		r := newTestRouter(t)
		w := doJSON(r, http.MethodGet, "/api/v1/quotes/quote-1231239999.json", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("400 for a non-quote filename", func(t *testing.T) {
		r := newTestRouter(t)
		w := doJSON(r, http.MethodGet, "/api/v1/quotes/customers.json", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateQuoteEndpoint(t *testing.T) {
	t.Run("overwrites in place", func(t *testing.T) {
		r := newTestRouter(t)
		require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/v1/quotes", validBody()).Code)

		body := validBody()
		body["quoteNumber"] = "0101250900"
		body["projectName"] = "Lobby Remodel Phase 2"
		w := doJSON(r, http.MethodPut, "/api/v1/quotes/quote-0101250900.json", body)
		require.Equal(t, http.StatusOK, w.Code)

		got := doJSON(r, http.MethodGet, "/api/v1/quotes/quote-0101250900.json", nil)
		assert.Contains(t, got.Body.String(), "Phase 2")
	})

	t.Run("404 when the file is gone", func(t *testing.T) {
		r := newTestRouter(t)

		body := validBody()
		body["quoteNumber"] = "0101250900"
		w := doJSON(r, http.MethodPut, "/api/v1/quotes/quote-0101250900.json", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListQuotesEndpoint(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/v1/quotes", validBody()).Code)

	w := doJSON(r, http.MethodGet, "/api/v1/quotes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Quotes []struct {
			Filename string `json:"filename"`
		} `json:"quotes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Quotes, 1)
	assert.Equal(t, "quote-0101250900.json", resp.Quotes[0].Filename)
}

func TestDeleteQuoteEndpoint(t *testing.T) {
	t.Run("deletes and then 404s", func(t *testing.T) {
		r := newTestRouter(t)
		require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/v1/quotes", validBody()).Code)

		w := doJSON(r, http.MethodDelete, "/api/v1/quotes/quote-0101250900.json", nil)
		require.Equal(t, http.StatusOK, w.Code)

		again := doJSON(r, http.MethodDelete, "/api/v1/quotes/quote-0101250900.json", nil)
		assert.Equal(t, http.StatusNotFound, again.Code)
	})
}

func TestExportPDFEndpoint(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/v1/quotes", validBody()).Code)

	w := doJSON(r, http.MethodGet, "/api/v1/quotes/quote-0101250900.json/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, fmt.Sprintf(`attachment; filename="quote-%s.pdf"`, "0101250900"), w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}
