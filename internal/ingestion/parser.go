package ingestion

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gmoreira/marketpulse/internal/domain/models"
	"github.com/gmoreira/marketpulse/internal/storage"
)

// expectedHeaders enforces strict column ordering for daily market
// snapshot files. If the header doesn't match EXACTLY (order + count),
// the load must fail.
var expectedHeaders = []string{
	"symbol",
	"company_name",
	"sector",
	"industry",
	"country",
	"beta",
	"company_market_cap",
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
}

// loadSnapshotFile opens, validates, parses, and persists one snapshot
// file in batches. The file date identifies the dim_date row every fact
// of the file references.
//
// It fails on:
//   - header not matching expected order/length
//   - malformed numeric cells
//
// It tolerates:
//   - empty numeric cells (they become NULL observations)
func loadSnapshotFile(ctx context.Context, path string, day time.Time, repo storage.MarketRepository, batch int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // checked explicitly per line

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return 0, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	// One dim_date row per snapshot file.
	dateID, err := repo.UpsertDate(day)
	if err != nil {
		return 0, fmt.Errorf("upsert date: %w", err)
	}

	// Company surrogate keys, cached per file.
	companyIDs := make(map[string]int64)

	buf := make([]models.FactRow, 0, batch)
	lineNumber := 1 // header already read

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertMetricsBatch(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(expectedHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		row, err := recordToSnapshot(rec)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		companyID, ok := companyIDs[row.Company.Symbol]
		if !ok {
			companyID, err = repo.UpsertCompany(row.Company)
			if err != nil {
				return 0, fmt.Errorf("line %d: upsert company %s: %w", lineNumber, row.Company.Symbol, err)
			}
			companyIDs[row.Company.Symbol] = companyID
		}

		buf = append(buf, models.FactRow{DateID: dateID, CompanyID: companyID, Metrics: row.Metrics})
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", lineNumber, err)
			}
		}
	}

	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}

	return total, nil
}

// recordToSnapshot converts a single CSV record (already validated
// length) into a models.SnapshotRow. It is STRICT about numeric formats
// but TOLERATES empty cells, mapping them to NULL observations.
func recordToSnapshot(rec []string) (models.SnapshotRow, error) {
	var row models.SnapshotRow

	row.Company.Symbol = strings.ToUpper(strings.TrimSpace(rec[0]))
	if row.Company.Symbol == "" {
		return row, fmt.Errorf("empty symbol")
	}
	row.Company.Name = strings.TrimSpace(rec[1])
	row.Company.Sector = strings.TrimSpace(rec[2])
	row.Company.Industry = strings.TrimSpace(rec[3])
	row.Company.Country = strings.ToUpper(strings.TrimSpace(rec[4]))

	var err error
	if row.Company.Beta, err = parseNullFloat(rec[5]); err != nil {
		return row, fmt.Errorf("invalid beta: %v", err)
	}
	if row.Company.MarketCap, err = parseNullFloat(rec[6]); err != nil {
		return row, fmt.Errorf("invalid company_market_cap: %v", err)
	}

	m := &row.Metrics
	fields := []struct {
		name string
		idx  int
		dst  *sql.NullFloat64
	}{
		{"current_price", 7, &m.CurrentPrice},
		{"change", 8, &m.Change},
		{"change_percentage", 9, &m.ChangePercentage},
		{"day_low", 11, &m.DayLow},
		{"day_high", 12, &m.DayHigh},
		{"year_low", 13, &m.YearLow},
		{"year_high", 14, &m.YearHigh},
		{"price_average_50", 15, &m.PriceAverage50},
		{"price_average_200", 16, &m.PriceAverage200},
		{"market_cap", 17, &m.MarketCap},
	}
	for _, f := range fields {
		if *f.dst, err = parseNullFloat(rec[f.idx]); err != nil {
			return row, fmt.Errorf("invalid %s: %v", f.name, err)
		}
	}

	if m.Volume, err = parseNullInt(rec[10]); err != nil {
		return row, fmt.Errorf("invalid volume: %v", err)
	}

	return row, nil
}

func parseNullFloat(s string) (sql.NullFloat64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullFloat64{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}, err
	}
	return sql.NullFloat64{Float64: v, Valid: true}, nil
}

func parseNullInt(s string) (sql.NullInt64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullInt64{}, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: v, Valid: true}, nil
}
