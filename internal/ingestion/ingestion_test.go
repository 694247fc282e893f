package ingestion

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/gmoreira/marketpulse/internal/storage"
)

func overrideRepo(t *testing.T, repo *fakeRepo) {
	t.Helper()
	old := repoCtor
	repoCtor = func(*sql.DB) storage.MarketRepository { return repo }
	t.Cleanup(func() { repoCtor = old })
}

func snapshotNames(n int) []string {
	dates := LastNTradingDays(n, time.Now())
	names := make([]string, 0, n)
	for _, d := range dates {
		names = append(names, d.Format(fileDateLayout)+fileSuffix)
	}
	return names
}

func TestProcessDirectory(t *testing.T) {
	dir := t.TempDir()
	names := snapshotNames(2)
	for _, name := range names {
		writeSnapshot(t, dir, name,
			"AAPL,Apple Inc.,Technology,Consumer Electronics,US,1.25,3.4e12,150.0,1.5,1.01,1000,148.0,152.0,120.0,199.9,148.5,140.2,3.4e12",
			"MSFT,Microsoft,Technology,Software,US,,,,,,,,,,,,,",
		)
	}

	repo := newFakeRepo()
	overrideRepo(t, repo)

	if err := ProcessDirectory(context.Background(), dir, nil, 2, 2, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.facts) != 4 {
		t.Fatalf("facts=%d", len(repo.facts))
	}
	if len(repo.logged) != 2 {
		t.Fatalf("snapshot log entries=%d", len(repo.logged))
	}
	for date, count := range repo.logged {
		if count != 2 {
			t.Fatalf("row_count for %s = %d", date, count)
		}
	}
	if len(repo.deleteCalls) != 0 {
		t.Fatalf("unexpected deletes: %v", repo.deleteCalls)
	}
}

func TestProcessDirectory_MissingFileFailsUpfront(t *testing.T) {
	dir := t.TempDir()
	// Only one of the two expected files exists.
	writeSnapshot(t, dir, snapshotNames(2)[0], "AAPL,Apple,T,CE,US,,,,,,,,,,,,,")

	repo := newFakeRepo()
	overrideRepo(t, repo)

	err := ProcessDirectory(context.Background(), dir, nil, 2, 1, false)
	if err == nil {
		t.Fatalf("expected missing file error")
	}
	if len(repo.facts) != 0 {
		t.Fatalf("nothing should load when files are missing, facts=%d", len(repo.facts))
	}
}

func TestProcessDirectory_SkipsAlreadyLoaded(t *testing.T) {
	dir := t.TempDir()
	name := snapshotNames(1)[0]
	writeSnapshot(t, dir, name, "AAPL,Apple,T,CE,US,,,,,,,,,,,,,")

	repo := newFakeRepo()
	date := LastNTradingDays(1, time.Now())[0].Format("2006-01-02")
	repo.loaded[date] = name
	overrideRepo(t, repo)

	if err := ProcessDirectory(context.Background(), dir, nil, 1, 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.facts) != 0 {
		t.Fatalf("already-loaded day must be skipped, facts=%d", len(repo.facts))
	}
}

func TestProcessDirectory_ForceReload(t *testing.T) {
	dir := t.TempDir()
	name := snapshotNames(1)[0]
	writeSnapshot(t, dir, name, "AAPL,Apple,T,CE,US,,,,,,,,,,,,,")

	repo := newFakeRepo()
	date := LastNTradingDays(1, time.Now())[0].Format("2006-01-02")
	repo.loaded[date] = name
	overrideRepo(t, repo)

	if err := ProcessDirectory(context.Background(), dir, nil, 1, 1, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleteCalls) != 1 || repo.deleteCalls[0] != date {
		t.Fatalf("force must delete the existing day first: %v", repo.deleteCalls)
	}
	if len(repo.facts) != 1 {
		t.Fatalf("facts=%d", len(repo.facts))
	}
}

func TestProcessDirectory_LoadErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, snapshotNames(1)[0], "AAPL,Apple,T,CE,US,,,,,,,,,,,,,")

	repo := newFakeRepo()
	repo.batchErr = errors.New("copy failed")
	overrideRepo(t, repo)

	if err := ProcessDirectory(context.Background(), dir, nil, 1, 1, false); err == nil {
		t.Fatalf("expected error")
	}
}
