package models

import "database/sql"

// Company is one row of the company dimension. Symbols are stored
// uppercase and are unique; lookups are case-insensitive.
type Company struct {
	ID        int64
	Symbol    string
	Name      string
	Sector    string
	Industry  string
	Country   string
	Beta      sql.NullFloat64
	MarketCap sql.NullFloat64
}

// MetricPoint carries the numeric observations of one fact row.
// Every field may be NULL independently of the others.
type MetricPoint struct {
	CurrentPrice     sql.NullFloat64
	Change           sql.NullFloat64
	ChangePercentage sql.NullFloat64
	Volume           sql.NullInt64
	DayLow           sql.NullFloat64
	DayHigh          sql.NullFloat64
	YearLow          sql.NullFloat64
	YearHigh         sql.NullFloat64
	PriceAverage50   sql.NullFloat64
	PriceAverage200  sql.NullFloat64
	MarketCap        sql.NullFloat64
}

// MarketRow is one joined row of the aggregate market query
// (fact ⋈ dim_date ⋈ dim_company). The aggregate query selects only the
// daily price block; year ranges and moving averages stay unset.
type MarketRow struct {
	Symbol      string
	CompanyName string
	Sector      string
	Industry    string
	Date        string
	Datetime    sql.NullTime
	Metrics     MetricPoint
}

// StockRow is one joined row of the single-company query
// (fact ⋈ dim_date for a fixed company key), with the full numeric block.
type StockRow struct {
	Date     string
	Datetime sql.NullTime
	Metrics  MetricPoint
}
