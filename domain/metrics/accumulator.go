package metrics

import (
	"strconv"
	"strings"

	"francadash/domain/dates"
)

// bucketTotals are the running per-bucket sums before finalization.
type bucketTotals struct {
	results   int
	totalCost float64
}

// Accumulator folds classified spreadsheet rows into running totals. It is a
// single-pass reduction: feed every row once via Fold, then call Finalize.
// Order matters only for the first-wins period fields and the last-seen
// followers policy.
type Accumulator struct {
	classifier      Classifier
	followersPolicy FollowersPolicy

	buckets     map[Bucket]*bucketTotals
	investment  float64
	followers   float64
	impressions float64
	periodStart string
	periodEnd   string
}

// NewAccumulator creates an accumulator for one upload.
func NewAccumulator(classifier Classifier, policy FollowersPolicy) *Accumulator {
	return &Accumulator{
		classifier:      classifier,
		followersPolicy: policy,
		buckets: map[Bucket]*bucketTotals{
			BucketPurchases:     {},
			BucketLeads:         {},
			BucketProfileVisits: {},
		},
	}
}

// Fold merges one row into the running totals. Malformed numeric cells
// coerce to zero; no per-row condition aborts the fold.
func (a *Accumulator) Fold(row Row) {
	investment := ParseNumber(row[ColInvestment])

	// Investment is tenant-wide: every row contributes, classified or not.
	a.investment += investment

	if raw, ok := row[ColFollowers]; ok && strings.TrimSpace(raw) != "" {
		switch a.followersPolicy {
		case FollowersLastSeen:
			a.followers = ParseNumber(raw)
		default:
			a.followers += ParseNumber(raw)
		}
	}

	if raw, ok := row[ColImpressions]; ok {
		a.impressions += ParseNumber(raw)
	}

	if a.periodStart == "" {
		if raw := strings.TrimSpace(row[ColPeriodStart]); raw != "" {
			a.periodStart = dates.NormalizeCell(raw)
		}
	}
	if a.periodEnd == "" {
		if raw := strings.TrimSpace(row[ColPeriodEnd]); raw != "" {
			a.periodEnd = dates.NormalizeCell(raw)
		}
	}

	resultType := strings.ToLower(strings.TrimSpace(row[ColResultType]))
	if resultType == "" {
		return
	}
	bucket, ok := a.classifier.Classify(resultType)
	if !ok {
		// Summary and header rows from the export land here; they still
		// counted toward investment/impressions above.
		return
	}

	totals := a.buckets[bucket]
	totals.results += int(ParseNumber(row[ColResults]))
	totals.totalCost += investment
}

// Finalize converts the accumulated totals into the public record. It is
// deterministic and side-effect free; calling it twice yields equal records.
func (a *Accumulator) Finalize(displayName string) CompanyData {
	return CompanyData{
		Name: displayName,
		Period: Period{
			Start: a.periodStart,
			End:   a.periodEnd,
		},
		Metrics: Metrics{
			Purchases:     a.buckets[BucketPurchases].finalize(),
			Leads:         a.buckets[BucketLeads].finalize(),
			ProfileVisits: a.buckets[BucketProfileVisits].finalize(),
		},
		Investment:  a.investment,
		Followers:   int(a.followers),
		Impressions: int(a.impressions),
	}
}

func (b *bucketTotals) finalize() MetricData {
	data := MetricData{Results: b.results}
	if b.results > 0 {
		data.CostPerResult = b.totalCost / float64(b.results)
	}
	return data
}

// ParseNumber coerces a cell to a number, defaulting to 0 on anything that
// does not parse. The export is not trusted to keep numeric columns clean.
func ParseNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if value, err := strconv.ParseFloat(raw, 64); err == nil {
		return value
	}
	// Some export tools emit pt-BR formatted numbers ("1.234,56").
	alt := strings.ReplaceAll(strings.ReplaceAll(raw, ".", ""), ",", ".")
	if value, err := strconv.ParseFloat(alt, 64); err == nil {
		return value
	}
	return 0
}
