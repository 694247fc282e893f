package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gmoreira/marketpulse/internal/logger"
	"github.com/gmoreira/marketpulse/internal/storage"
)

// DiagnosticsHandler serves the welcome route and the table listing used
// to eyeball the database from a browser.
type DiagnosticsHandler struct {
	dbPing func() error
	repo   storage.MarketRepository
}

// NewDiagnosticsHandler constructs a DiagnosticsHandler.
func NewDiagnosticsHandler(dbPing func() error, repo storage.MarketRepository) *DiagnosticsHandler {
	return &DiagnosticsHandler{dbPing: dbPing, repo: repo}
}

// Home handles GET / with a welcome payload, a live database status
// probe, and the endpoint directory.
//
// Home godoc
// @Summary      Welcome and database status
// @Tags         diagnostics
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *DiagnosticsHandler) Home(c *gin.Context) {
	status := "connected"
	if h.dbPing != nil {
		if err := h.dbPing(); err != nil {
			status = fmt.Sprintf("error: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Welcome to Stock Market API",
		"database_status": status,
		"endpoints": gin.H{
			"market_data": "/api/market",
			"stock_data":  "/api/stock/<ticker>",
		},
	})
}

// ListTables handles GET /tables, listing the public tables of the
// connected database.
//
// ListTables godoc
// @Summary      List database tables
// @Tags         diagnostics
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Failure      500  {object}  map[string]string
// @Router       /tables [get]
func (h *DiagnosticsHandler) ListTables(c *gin.Context) {
	tables, err := h.repo.ListTables(c.Request.Context())
	if err != nil {
		logger.L().Error().Err(err).Msg("table listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tables == nil {
		tables = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}
