package models

// SnapshotRow is one parsed line of a daily market snapshot file: the
// company dimension attributes plus that day's observations. The day
// itself comes from the filename, not from the row.
type SnapshotRow struct {
	Company Company
	Metrics MetricPoint
}

// FactRow is one metric observation keyed to its dimension surrogate
// keys, ready for bulk insertion into fact_market_metrics.
type FactRow struct {
	DateID    int64
	CompanyID int64
	Metrics   MetricPoint
}
