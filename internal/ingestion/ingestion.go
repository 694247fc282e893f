package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gmoreira/marketpulse/internal/logger"
	"github.com/gmoreira/marketpulse/internal/storage"
)

const (
	fileDateLayout   = "2006-01-02"
	fileSuffix       = "_MARKETSNAPSHOT.csv"
	defaultBatchSize = 5000
)

// repoCtor is an indirection for creating the repository; tests can
// override this.
var repoCtor = func(db *sql.DB) storage.MarketRepository {
	return storage.NewMarketRepository(db)
}

// ProcessDirectory loads the daily snapshot files of the last nDays U.S.
// trading days into the star schema.
//
// Behavior:
//   - Expects exactly one file per trading day named
//     "YYYY-MM-DD_MARKETSNAPSHOT.csv".
//   - Uses a concurrency limit based on CPU count (min(7, NumCPU)).
//   - For each file, upserts dimensions and bulk-inserts facts in batches.
//   - Skips days already recorded in snapshot_log unless force is set.
//   - If any file returns an error, cancels the rest and returns it.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, nDays int, parallel int, force bool) error {
	repo := repoCtor(db)

	if nDays < 1 {
		nDays = 1
	}
	if nDays > 7 {
		nDays = 7
	}
	dates := LastNTradingDays(nDays, time.Now())

	// Build expected filenames & validate presence upfront.
	var files []string
	var missing []string

	for _, d := range dates {
		name := d.Format(fileDateLayout) + fileSuffix
		full := filepath.Join(dir, name)
		files = append(files, full)

		if _, err := os.Stat(full); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, name)
			} else {
				return fmt.Errorf("stat failed for %s: %w", full, err)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required files: %s", strings.Join(missing, ", "))
	}

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Msg("snapshot ingestion start")

	// Concurrency: default to min(7, NumCPU), or use provided clamp(1..7)
	maxParallel := 7
	if parallel > 0 {
		if parallel > 7 {
			parallel = 7
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("max_parallel", maxParallel).Msg("snapshot ingestion configured")

	// errgroup cancels siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(f)
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Msg("file start")

			// Trading day comes from the filename (YYYY-MM-DD_...).
			datePart := strings.TrimSuffix(base, fileSuffix)
			d, err := time.Parse(fileDateLayout, datePart)
			if err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("invalid date in filename")
				return fmt.Errorf("file %s: parse date from filename: %w", f, err)
			}

			// Idempotency: skip if already loaded, unless force.
			exists, err := repo.HasSnapshotForDate(d)
			if err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("check snapshot log failed")
				return fmt.Errorf("file %s: check snapshot log: %w", f, err)
			}
			if exists && !force {
				logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Bool("skipped", true).Msg("already loaded")
				return nil
			}
			if exists && force {
				if err := repo.DeleteMetricsByDate(d); err != nil {
					logger.L().Error().Str("file", base).Err(err).Msg("delete existing failed")
					return fmt.Errorf("file %s: delete existing: %w", f, err)
				}
			}

			total, err := loadSnapshotFile(gctx, f, d, repo, defaultBatchSize)
			if err != nil {
				logger.L().Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}
			if err := repo.UpsertSnapshotLog(d, base, total); err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("update snapshot log failed")
				return fmt.Errorf("file %s: upsert snapshot log: %w", f, err)
			}
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Int("rows", total).Dur("elapsed", time.Since(start)).Bool("force", force).Msg("file done")
			return nil
		})
	}

	return g.Wait()
}
