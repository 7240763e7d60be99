package app

import (
	"github.com/montanaflynn/stats"

	"francadash/domain/metrics"
)

// SpendSummary describes how spend was distributed across the rows of one
// upload. The dashboard's secondary cards use it alongside the main record.
type SpendSummary struct {
	MeanRowSpend   float64 `json:"meanRowSpend"`
	MedianRowSpend float64 `json:"medianRowSpend"`
	MaxRowSpend    float64 `json:"maxRowSpend"`
}

// SummarizeSpend computes per-row spend statistics over an upload. Rows with
// no parseable investment value count as zero, matching the fold.
func SummarizeSpend(rows []metrics.Row) SpendSummary {
	if len(rows) == 0 {
		return SpendSummary{}
	}

	values := make(stats.Float64Data, 0, len(rows))
	for _, row := range rows {
		values = append(values, metrics.ParseNumber(row[metrics.ColInvestment]))
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	max, _ := stats.Max(values)

	return SpendSummary{
		MeanRowSpend:   mean,
		MedianRowSpend: median,
		MaxRowSpend:    max,
	}
}
