package dto

import (
	"database/sql"
	"time"

	"github.com/gmoreira/marketpulse/internal/domain/models"
)

// Parameters echoes the effective query parameters back to the caller:
// what was actually used after defaulting, not merely what was supplied.
type Parameters struct {
	Ticker   string `json:"ticker,omitempty" example:"AAPL"`
	Days     string `json:"days" example:"60"`
	ToDate   string `json:"to_date" example:"2025-09-12"`
	FromDate string `json:"from_date" example:"2025-07-14"`
	Country  string `json:"country,omitempty" example:"US"`
}

// Metadata describes how a query executed. It is attached to every
// response, success or failure, so operators can spot slow or broken
// queries from the outside.
type Metadata struct {
	RecordCount          int        `json:"record_count"`
	ExecutionTimeSeconds float64    `json:"execution_time_seconds"`
	Parameters           Parameters `json:"parameters"`
}

// MarketDataRow is one formatted row of the aggregate market payload.
// Numeric observation fields are pointers: a NULL in storage stays null
// in JSON, it is never coerced to zero.
type MarketDataRow struct {
	Symbol           string   `json:"symbol" example:"AAPL"`
	CompanyName      string   `json:"company_name" example:"Apple Inc."`
	Sector           string   `json:"sector" example:"Technology"`
	Industry         string   `json:"industry" example:"Consumer Electronics"`
	Date             string   `json:"date" example:"2025-09-11"`
	Datetime         *string  `json:"datetime"`
	CurrentPrice     *float64 `json:"current_price"`
	Change           *float64 `json:"change"`
	ChangePercentage *float64 `json:"change_percentage"`
	Volume           *int64   `json:"volume"`
	DayLow           *float64 `json:"day_low"`
	DayHigh          *float64 `json:"day_high"`
	MarketCap        *float64 `json:"market_cap"`
}

// StockDataRow is one formatted row of the single-stock payload. It
// carries the full numeric block; company attributes live in the
// embedded CompanyInfo of the response instead.
type StockDataRow struct {
	Date             string   `json:"date" example:"2025-09-11"`
	Datetime         *string  `json:"datetime"`
	CurrentPrice     *float64 `json:"current_price"`
	Change           *float64 `json:"change"`
	ChangePercentage *float64 `json:"change_percentage"`
	Volume           *int64   `json:"volume"`
	DayLow           *float64 `json:"day_low"`
	DayHigh          *float64 `json:"day_high"`
	YearLow          *float64 `json:"year_low"`
	YearHigh         *float64 `json:"year_high"`
	PriceAverage50   *float64 `json:"price_average_50"`
	PriceAverage200  *float64 `json:"price_average_200"`
	MarketCap        *float64 `json:"market_cap"`
}

// CompanyInfo identifies the company of a single-stock payload. It is
// present even when the data array is empty.
type CompanyInfo struct {
	Symbol    string   `json:"symbol" example:"AAPL"`
	Name      string   `json:"name" example:"Apple Inc."`
	Sector    string   `json:"sector" example:"Technology"`
	Industry  string   `json:"industry" example:"Consumer Electronics"`
	Country   string   `json:"country" example:"US"`
	Beta      *float64 `json:"beta"`
	MarketCap *float64 `json:"market_cap"`
}

// MarketDataResponse is the body of GET /api/market.
type MarketDataResponse struct {
	Data     []MarketDataRow `json:"data"`
	Metadata Metadata        `json:"metadata"`
}

// StockDataResponse is the body of GET /api/stock/{ticker}.
type StockDataResponse struct {
	Data     []StockDataRow `json:"data"`
	Company  CompanyInfo    `json:"company"`
	Metadata Metadata       `json:"metadata"`
}

// NewMarketDataRow shapes one joined aggregate row for output.
func NewMarketDataRow(r models.MarketRow) MarketDataRow {
	return MarketDataRow{
		Symbol:           r.Symbol,
		CompanyName:      r.CompanyName,
		Sector:           r.Sector,
		Industry:         r.Industry,
		Date:             r.Date,
		Datetime:         isoDatetime(r.Datetime),
		CurrentPrice:     nullFloat(r.Metrics.CurrentPrice),
		Change:           nullFloat(r.Metrics.Change),
		ChangePercentage: nullFloat(r.Metrics.ChangePercentage),
		Volume:           nullInt(r.Metrics.Volume),
		DayLow:           nullFloat(r.Metrics.DayLow),
		DayHigh:          nullFloat(r.Metrics.DayHigh),
		MarketCap:        nullFloat(r.Metrics.MarketCap),
	}
}

// NewStockDataRow shapes one joined single-company row for output.
func NewStockDataRow(r models.StockRow) StockDataRow {
	return StockDataRow{
		Date:             r.Date,
		Datetime:         isoDatetime(r.Datetime),
		CurrentPrice:     nullFloat(r.Metrics.CurrentPrice),
		Change:           nullFloat(r.Metrics.Change),
		ChangePercentage: nullFloat(r.Metrics.ChangePercentage),
		Volume:           nullInt(r.Metrics.Volume),
		DayLow:           nullFloat(r.Metrics.DayLow),
		DayHigh:          nullFloat(r.Metrics.DayHigh),
		YearLow:          nullFloat(r.Metrics.YearLow),
		YearHigh:         nullFloat(r.Metrics.YearHigh),
		PriceAverage50:   nullFloat(r.Metrics.PriceAverage50),
		PriceAverage200:  nullFloat(r.Metrics.PriceAverage200),
		MarketCap:        nullFloat(r.Metrics.MarketCap),
	}
}

// NewCompanyInfo shapes a company dimension row for output.
func NewCompanyInfo(c models.Company) CompanyInfo {
	return CompanyInfo{
		Symbol:    c.Symbol,
		Name:      c.Name,
		Sector:    c.Sector,
		Industry:  c.Industry,
		Country:   c.Country,
		Beta:      nullFloat(c.Beta),
		MarketCap: nullFloat(c.MarketCap),
	}
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func isoDatetime(v sql.NullTime) *string {
	if !v.Valid {
		return nil
	}
	s := v.Time.Format(time.RFC3339)
	return &s
}
