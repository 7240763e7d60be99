package tenant

import (
	"strings"

	"francadash/domain/metrics"
)

// Classify routes a result-type label to a bucket using the tenant's rule
// table. Matching is case-insensitive substring containment; the first
// keyword that matches wins. An empty or unmatched label routes nowhere,
// which is how summary rows in the export are skipped.
func (t Tenant) Classify(resultType string) (metrics.Bucket, bool) {
	label := strings.ToLower(strings.TrimSpace(resultType))
	if label == "" {
		return "", false
	}
	for _, rule := range t.Rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(label, keyword) {
				return rule.Bucket, true
			}
		}
	}
	return "", false
}
