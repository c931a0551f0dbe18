package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CatalogHandler is a read-only pass-through to the external product
// source. No auth, no caching; the catalog is not owned by this system.
type CatalogHandler struct {
	baseURL string
	client  *http.Client
}

func NewCatalogHandler(baseURL string) *CatalogHandler {
	return &CatalogHandler{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	h.proxy(c, h.baseURL+"/products")
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	h.proxy(c, h.baseURL+"/products/"+url.PathEscape(c.Param("id")))
}

func (h *CatalogHandler) proxy(c *gin.Context, target string) {
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, target, nil)
	if err != nil {
		log.Error().Err(err).Str("url", target).Msg("catalog: bad request")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", target).Msg("catalog: upstream unreachable")
		c.JSON(http.StatusBadGateway, gin.H{"message": "Catalog unavailable"})
		return
	}
	defer resp.Body.Close()

	c.DataFromReader(resp.StatusCode, resp.ContentLength, resp.Header.Get("Content-Type"), resp.Body, nil)
}
