package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gmoreira/marketpulse/internal/domain/dto"
	"github.com/gmoreira/marketpulse/internal/logger"
	"github.com/gmoreira/marketpulse/internal/service"
)

const defaultCountry = "US"

// timeNow is an indirection for the request clock; tests override it so
// date-range resolution is deterministic.
var timeNow = time.Now

// Handler provides the HTTP handlers of the market-data retrieval engine.
//
// Responsibilities:
//   - Resolve the effective date range from raw query parameters
//   - Interact with the service layer for data access
//   - Shape joined rows into response DTOs
//   - Attach execution metadata to every response, success or failure
type Handler struct {
	svc service.MarketService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.MarketService) *Handler {
	return &Handler{svc: svc}
}

// GetMarketData handles GET /api/market requests.
//
// GetMarketData godoc
// @Summary      Get market data by country
// @Description  Returns market metrics for every company of a country within the resolved date range, ordered by symbol then datetime
// @Tags         market
// @Produce      json
// @Param        days     query     string  false  "Number of days back from 'to', or 'all'"  example(60)
// @Param        from     query     string  false  "Start date in YYYY-MM-DD"  example(2025-07-14)
// @Param        to       query     string  false  "End date in YYYY-MM-DD"  example(2025-09-12)
// @Param        country  query     string  false  "Country filter"  example(US)
// @Success      200      {object}  dto.MarketDataResponse  "Success"
// @Failure      500      {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/market [get]
func (h *Handler) GetMarketData(c *gin.Context) {
	start := timeNow()

	country := c.DefaultQuery("country", defaultCountry)
	r := service.ResolveDateRange(c.Query("days"), c.Query("from"), c.Query("to"), start)
	params := dto.Parameters{
		Days:     r.Days,
		ToDate:   r.ToDate,
		FromDate: r.FromDate,
		Country:  country,
	}

	rows, err := h.svc.GetMarketData(c.Request.Context(), country, r)
	if err != nil {
		logger.L().Error().Err(err).Str("country", country).Msg("market data query failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error(), metadata(start, 0, params)))
		return
	}

	data := make([]dto.MarketDataRow, 0, len(rows))
	for _, row := range rows {
		data = append(data, dto.NewMarketDataRow(row))
	}

	meta := metadata(start, len(data), params)
	logger.L().Info().
		Str("country", country).
		Int("records", meta.RecordCount).
		Float64("elapsed_s", meta.ExecutionTimeSeconds).
		Msg("market data query")

	c.JSON(http.StatusOK, dto.MarketDataResponse{Data: data, Metadata: meta})
}

// GetStockData handles GET /api/stock/:ticker requests. The ticker is
// matched case-insensitively against the company dimension; an unknown
// ticker is a 404, never a 500.
//
// GetStockData godoc
// @Summary      Get data for a single stock
// @Description  Returns the observation history of one company within the resolved date range, oldest first, with company identity embedded
// @Tags         market
// @Produce      json
// @Param        ticker  path      string  true   "Ticker symbol (case-insensitive)"  example(AAPL)
// @Param        days    query     string  false  "Number of days back from 'to', or 'all'"  example(60)
// @Param        from    query     string  false  "Start date in YYYY-MM-DD"  example(2025-07-14)
// @Param        to      query     string  false  "End date in YYYY-MM-DD"  example(2025-09-12)
// @Success      200     {object}  dto.StockDataResponse  "Success"
// @Failure      404     {object}  dto.ErrorResponse      "Unknown ticker"
// @Failure      500     {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/stock/{ticker} [get]
func (h *Handler) GetStockData(c *gin.Context) {
	start := timeNow()

	ticker := c.Param("ticker")
	r := service.ResolveDateRange(c.Query("days"), c.Query("from"), c.Query("to"), start)
	params := dto.Parameters{
		Ticker:   ticker,
		Days:     r.Days,
		ToDate:   r.ToDate,
		FromDate: r.FromDate,
	}

	company, rows, err := h.svc.GetStockData(c.Request.Context(), ticker, r)
	if err != nil {
		logger.L().Error().Err(err).Str("ticker", ticker).Msg("stock data query failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error(), metadata(start, 0, params)))
		return
	}
	if company == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			fmt.Sprintf("Stock with ticker '%s' not found", ticker),
			metadata(start, 0, params),
		))
		return
	}

	data := make([]dto.StockDataRow, 0, len(rows))
	for _, row := range rows {
		data = append(data, dto.NewStockDataRow(row))
	}

	meta := metadata(start, len(data), params)
	logger.L().Info().
		Str("ticker", ticker).
		Int("records", meta.RecordCount).
		Float64("elapsed_s", meta.ExecutionTimeSeconds).
		Msg("stock data query")

	c.JSON(http.StatusOK, dto.StockDataResponse{
		Data:     data,
		Company:  dto.NewCompanyInfo(*company),
		Metadata: meta,
	})
}

func metadata(start time.Time, count int, params dto.Parameters) dto.Metadata {
	return dto.Metadata{
		RecordCount:          count,
		ExecutionTimeSeconds: time.Since(start).Seconds(),
		Parameters:           params,
	}
}
