package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pizzavfm/backend/internal/domain"
	"github.com/pizzavfm/backend/internal/infrastructure/efood"
	"github.com/pizzavfm/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	deals *usecase.DealsService
	scan  *usecase.ScanService
	topN  int
}

// NewHandler creates a new HTTP handler
func NewHandler(deals *usecase.DealsService, scan *usecase.ScanService, topN int) *Handler {
	if topN < 1 {
		topN = 10
	}
	return &Handler{deals: deals, scan: scan, topN: topN}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pizzavfm-backend",
		"version": "1.0.0",
	})
}

// extractRequest is the body of POST /api/v1/deals/extract. The catalog is
// kept raw so the defensive decoder owns all payload handling.
type extractRequest struct {
	Catalog       json.RawMessage `json:"catalog" binding:"required"`
	Rating        *float64        `json:"rating"`
	SizeOverrides map[string]int  `json:"size_overrides"`
}

// ExtractDeals handles POST /api/v1/deals/extract: run the catalog-to-deals
// pipeline over an uploaded catalog document and return ranked deals.
func (h *Handler) ExtractDeals(c *gin.Context) {
	if h.deals == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "deals service not configured"})
		return
	}

	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	doc, err := efood.DecodeCatalog(req.Catalog)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deals, err := h.deals.ExtractDeals(doc, req.Rating, req.SizeOverrides)
	if err != nil {
		h.writeError(c, err)
		return
	}

	ranked := usecase.TopN(usecase.RankDeals(deals), h.limit(c))
	c.JSON(http.StatusOK, gin.H{"deals": ranked, "count": len(ranked)})
}

// ShopDeals handles GET /api/v1/shops/:shopID/deals: fetch the shop's live
// catalog and return its ranked deals.
func (h *Handler) ShopDeals(c *gin.Context) {
	if h.scan == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scan service not configured"})
		return
	}

	shopID, err := strconv.Atoi(c.Param("shopID"))
	if err != nil || shopID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop ID"})
		return
	}

	var rating *float64
	if raw := c.Query("rating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating"})
			return
		}
		rating = &parsed
	}

	deals, err := h.scan.ShopDeals(c.Request.Context(), shopID, rating)
	if err != nil {
		h.writeError(c, err)
		return
	}

	deals = usecase.TopN(deals, h.limit(c))
	c.JSON(http.StatusOK, gin.H{"shop_id": shopID, "deals": deals, "count": len(deals)})
}

// limit reads the top_n query param, falling back to the configured default.
func (h *Handler) limit(c *gin.Context) int {
	raw := c.Query("top_n")
	if raw == "" {
		return h.topN
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return h.topN
	}
	return n
}

// writeError maps domain errors to HTTP status codes.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCatalogFormat):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrShopNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEfoodAPIFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
