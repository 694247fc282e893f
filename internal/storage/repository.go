package storage

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/gmoreira/marketpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// MarketRepository defines the contract for DB operations over the star
// schema. Reads serve the retrieval endpoints; writes belong to the
// snapshot ingestion pipeline only.
type MarketRepository interface {
	ListMarketMetrics(ctx context.Context, country string, from, to time.Time) ([]models.MarketRow, error)
	FindCompanyBySymbol(ctx context.Context, symbol string) (*models.Company, error)
	ListCompanyMetrics(ctx context.Context, companyID int64, from, to time.Time) ([]models.StockRow, error)
	ListTables(ctx context.Context) ([]string, error)

	UpsertCompany(company models.Company) (int64, error)
	UpsertDate(day time.Time) (int64, error)
	InsertMetricsBatch(rows []models.FactRow) error
	HasSnapshotForDate(day time.Time) (bool, error)
	UpsertSnapshotLog(day time.Time, filename string, rowCount int) error
	DeleteMetricsByDate(day time.Time) error
}

type marketRepository struct {
	db *sql.DB
}

func NewMarketRepository(db *sql.DB) MarketRepository {
	return &marketRepository{db: db}
}

// ListMarketMetrics runs the aggregate three-way join. The ORDER BY is
// part of the contract: consumers rely on per-symbol chronological
// grouping and must not need to re-sort. Duplicate (company, date)
// observations are returned as stored.
func (r *marketRepository) ListMarketMetrics(ctx context.Context, country string, from, to time.Time) ([]models.MarketRow, error) {
	const query = `
		SELECT c.symbol, c.company_name, c.sector, c.industry,
		       d.date, d.datetime,
		       f.current_price, f.change, f.change_percentage, f.volume,
		       f.day_low, f.day_high, f.market_cap
		FROM fact_market_metrics f
		JOIN dim_date d ON f.fk_date_id = d.sk_date_id
		JOIN dim_company c ON f.fk_company_id = c.sk_company_id
		WHERE c.country = $1
		  AND d.datetime >= $2
		  AND d.datetime <= $3
		ORDER BY c.symbol, d.datetime`

	rows, err := r.db.QueryContext(ctx, query, country, from, to)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.MarketRow, 0)
	for rows.Next() {
		var m models.MarketRow
		if err := rows.Scan(
			&m.Symbol, &m.CompanyName, &m.Sector, &m.Industry,
			&m.Date, &m.Datetime,
			&m.Metrics.CurrentPrice, &m.Metrics.Change, &m.Metrics.ChangePercentage, &m.Metrics.Volume,
			&m.Metrics.DayLow, &m.Metrics.DayHigh, &m.Metrics.MarketCap,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// FindCompanyBySymbol resolves a ticker against the company dimension.
// Matching is case-insensitive. A missing company yields (nil, nil).
func (r *marketRepository) FindCompanyBySymbol(ctx context.Context, symbol string) (*models.Company, error) {
	const query = `
		SELECT sk_company_id, symbol, company_name, sector, industry, country, beta, mkt_cap
		FROM dim_company
		WHERE UPPER(symbol) = $1`

	var c models.Company
	err := r.db.QueryRowContext(ctx, query, strings.ToUpper(strings.TrimSpace(symbol))).Scan(
		&c.ID, &c.Symbol, &c.Name, &c.Sector, &c.Industry, &c.Country, &c.Beta, &c.MarketCap,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCompanyMetrics returns the full observation history of one company
// within the inclusive interval, oldest first.
func (r *marketRepository) ListCompanyMetrics(ctx context.Context, companyID int64, from, to time.Time) ([]models.StockRow, error) {
	const query = `
		SELECT d.date, d.datetime,
		       f.current_price, f.change, f.change_percentage, f.volume,
		       f.day_low, f.day_high, f.year_low, f.year_high,
		       f.price_average_50, f.price_average_200, f.market_cap
		FROM fact_market_metrics f
		JOIN dim_date d ON f.fk_date_id = d.sk_date_id
		WHERE f.fk_company_id = $1
		  AND d.datetime >= $2
		  AND d.datetime <= $3
		ORDER BY d.datetime`

	rows, err := r.db.QueryContext(ctx, query, companyID, from, to)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.StockRow, 0)
	for rows.Next() {
		var s models.StockRow
		if err := rows.Scan(
			&s.Date, &s.Datetime,
			&s.Metrics.CurrentPrice, &s.Metrics.Change, &s.Metrics.ChangePercentage, &s.Metrics.Volume,
			&s.Metrics.DayLow, &s.Metrics.DayHigh, &s.Metrics.YearLow, &s.Metrics.YearHigh,
			&s.Metrics.PriceAverage50, &s.Metrics.PriceAverage200, &s.Metrics.MarketCap,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListTables lists the public tables for the /tables diagnostics route.
func (r *marketRepository) ListTables(ctx context.Context) ([]string, error) {
	const query = `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// UpsertCompany inserts or refreshes a company dimension row and returns
// its surrogate key.
func (r *marketRepository) UpsertCompany(company models.Company) (int64, error) {
	const query = `
		INSERT INTO dim_company (symbol, company_name, sector, industry, country, beta, mkt_cap)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (symbol)
		DO UPDATE SET company_name = EXCLUDED.company_name,
					  sector = EXCLUDED.sector,
					  industry = EXCLUDED.industry,
					  country = EXCLUDED.country,
					  beta = EXCLUDED.beta,
					  mkt_cap = EXCLUDED.mkt_cap
		RETURNING sk_company_id`

	var id int64
	err := r.db.QueryRow(query,
		company.Symbol, company.Name, company.Sector, company.Industry, company.Country,
		nullFloatArg(company.Beta), nullFloatArg(company.MarketCap),
	).Scan(&id)
	return id, err
}

// UpsertDate inserts or reuses a date dimension row for the given day
// and returns its surrogate key.
func (r *marketRepository) UpsertDate(day time.Time) (int64, error) {
	const query = `
		INSERT INTO dim_date (date, datetime, year)
		VALUES ($1, $2, $3)
		ON CONFLICT (datetime)
		DO UPDATE SET date = EXCLUDED.date
		RETURNING sk_date_id`

	var id int64
	err := r.db.QueryRow(query, day.Format("2006-01-02"), day, day.Year()).Scan(&id)
	return id, err
}

// InsertMetricsBatch bulk-inserts fact rows in a single transaction.
func (r *marketRepository) InsertMetricsBatch(rows []models.FactRow) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"fact_market_metrics",
		"fk_date_id",
		"fk_company_id",
		"current_price",
		"change",
		"change_percentage",
		"volume",
		"day_low",
		"day_high",
		"year_low",
		"year_high",
		"price_average_50",
		"price_average_200",
		"market_cap",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, rec := range rows {
		m := rec.Metrics
		if _, err := stmt.Exec(
			rec.DateID,
			rec.CompanyID,
			nullFloatArg(m.CurrentPrice),
			nullFloatArg(m.Change),
			nullFloatArg(m.ChangePercentage),
			nullIntArg(m.Volume),
			nullFloatArg(m.DayLow),
			nullFloatArg(m.DayHigh),
			nullFloatArg(m.YearLow),
			nullFloatArg(m.YearHigh),
			nullFloatArg(m.PriceAverage50),
			nullFloatArg(m.PriceAverage200),
			nullFloatArg(m.MarketCap),
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// HasSnapshotForDate checks whether a snapshot was already loaded for a
// given trading day.
func (r *marketRepository) HasSnapshotForDate(day time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM snapshot_log WHERE file_date = $1)`, day).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertSnapshotLog records (or updates) a snapshot load for a given day.
func (r *marketRepository) UpsertSnapshotLog(day time.Time, filename string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO snapshot_log (file_date, filename, row_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (file_date)
		DO UPDATE SET filename = EXCLUDED.filename,
					  row_count = EXCLUDED.row_count,
					  ingested_at = NOW()
	`, day, filename, rowCount)
	return err
}

// DeleteMetricsByDate removes all fact rows observed on a given day.
func (r *marketRepository) DeleteMetricsByDate(day time.Time) error {
	_, err := r.db.Exec(`
		DELETE FROM fact_market_metrics
		WHERE fk_date_id IN (SELECT sk_date_id FROM dim_date WHERE datetime = $1)
	`, day)
	return err
}

// map invalid Null values to NULL (nil) for CopyIn/upsert args
func nullFloatArg(v sql.NullFloat64) interface{} {
	if !v.Valid {
		return nil
	}
	return v.Float64
}

func nullIntArg(v sql.NullInt64) interface{} {
	if !v.Valid {
		return nil
	}
	return v.Int64
}
