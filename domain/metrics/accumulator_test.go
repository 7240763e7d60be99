package metrics

import (
	"reflect"
	"strings"
	"testing"
)

// keywordClassifier routes labels containing a keyword to a fixed bucket.
type keywordClassifier map[string]Bucket

func (c keywordClassifier) Classify(resultType string) (Bucket, bool) {
	label := strings.ToLower(strings.TrimSpace(resultType))
	for keyword, bucket := range c {
		if strings.Contains(label, keyword) {
			return bucket, true
		}
	}
	return "", false
}

var purchasesOnly = keywordClassifier{"conversas": BucketPurchases}

func TestAccumulator_ClassifiedRowFeedsBucket(t *testing.T) {
	acc := NewAccumulator(purchasesOnly, FollowersSum)
	acc.Fold(Row{
		ColResultType: "Conversas por mensagem",
		ColResults:    "5",
		ColInvestment: "100",
	})

	data := acc.Finalize("Trevo Barbearia")

	if data.Metrics.Purchases.Results != 5 {
		t.Errorf("purchases.results = %d, want 5", data.Metrics.Purchases.Results)
	}
	if data.Metrics.Purchases.CostPerResult != 20 {
		t.Errorf("purchases.costPerResult = %v, want 20", data.Metrics.Purchases.CostPerResult)
	}
	if data.Investment != 100 {
		t.Errorf("investment = %v, want 100", data.Investment)
	}
}

func TestAccumulator_InvestmentIgnoresClassification(t *testing.T) {
	acc := NewAccumulator(purchasesOnly, FollowersSum)
	acc.Fold(Row{ColResultType: "conversas", ColResults: "2", ColInvestment: "50"})
	acc.Fold(Row{ColResultType: "thruplay", ColResults: "99", ColInvestment: "30"})
	acc.Fold(Row{ColInvestment: "20"})

	data := acc.Finalize("x")

	if data.Investment != 100 {
		t.Errorf("investment = %v, want 100 (sum of all rows)", data.Investment)
	}
	if data.Metrics.Purchases.Results != 2 {
		t.Errorf("purchases.results = %d, want 2 (unmatched rows excluded)", data.Metrics.Purchases.Results)
	}
}

func TestAccumulator_MalformedCellsCoerceToZero(t *testing.T) {
	acc := NewAccumulator(purchasesOnly, FollowersSum)
	acc.Fold(Row{
		ColResultType:  "conversas",
		ColResults:     "n/a",
		ColInvestment:  "abc",
		ColFollowers:   "??",
		ColImpressions: "",
	})

	data := acc.Finalize("x")

	if data.Metrics.Purchases.Results != 0 {
		t.Errorf("results = %d, want 0 for malformed cell", data.Metrics.Purchases.Results)
	}
	if data.Metrics.Purchases.CostPerResult != 0 {
		t.Errorf("costPerResult = %v, want 0 when results == 0", data.Metrics.Purchases.CostPerResult)
	}
	if data.Investment != 0 || data.Followers != 0 || data.Impressions != 0 {
		t.Errorf("totals = (%v, %d, %d), want zeros", data.Investment, data.Followers, data.Impressions)
	}
}

func TestAccumulator_ZeroResultsNeverDivides(t *testing.T) {
	acc := NewAccumulator(purchasesOnly, FollowersSum)
	acc.Fold(Row{ColResultType: "conversas", ColResults: "0", ColInvestment: "250"})

	data := acc.Finalize("x")

	if data.Metrics.Purchases.CostPerResult != 0 {
		t.Errorf("costPerResult = %v, want 0 when results == 0", data.Metrics.Purchases.CostPerResult)
	}
	if data.Investment != 250 {
		t.Errorf("investment = %v, want 250", data.Investment)
	}
}

func TestAccumulator_PeriodFirstWins(t *testing.T) {
	acc := NewAccumulator(purchasesOnly, FollowersSum)
	acc.Fold(Row{ColPeriodStart: "", ColPeriodEnd: ""})
	acc.Fold(Row{ColPeriodStart: "2025-01-01", ColPeriodEnd: "2025-01-31"})
	acc.Fold(Row{ColPeriodStart: "2025-02-01", ColPeriodEnd: "2025-02-28"})

	data := acc.Finalize("x")

	if data.Period.Start != "01/01/2025" {
		t.Errorf("period.start = %q, want 01/01/2025 (first non-empty wins)", data.Period.Start)
	}
	if data.Period.End != "31/01/2025" {
		t.Errorf("period.end = %q, want 31/01/2025", data.Period.End)
	}
}

func TestAccumulator_FollowersPolicies(t *testing.T) {
	rows := []Row{
		{ColFollowers: "10"},
		{ColFollowers: "25"},
		{},
		{ColFollowers: "40"},
	}

	sum := NewAccumulator(purchasesOnly, FollowersSum)
	last := NewAccumulator(purchasesOnly, FollowersLastSeen)
	for _, row := range rows {
		sum.Fold(row)
		last.Fold(row)
	}

	if got := sum.Finalize("x").Followers; got != 75 {
		t.Errorf("FollowersSum = %d, want 75", got)
	}
	if got := last.Finalize("x").Followers; got != 40 {
		t.Errorf("FollowersLastSeen = %d, want 40", got)
	}
}

func TestAccumulator_ImpressionsSum(t *testing.T) {
	acc := NewAccumulator(purchasesOnly, FollowersSum)
	acc.Fold(Row{ColImpressions: "1000"})
	acc.Fold(Row{ColImpressions: "500"})

	if got := acc.Finalize("x").Impressions; got != 1500 {
		t.Errorf("impressions = %d, want 1500", got)
	}
}

func TestAccumulator_FinalizeIsIdempotent(t *testing.T) {
	acc := NewAccumulator(purchasesOnly, FollowersSum)
	acc.Fold(Row{ColResultType: "conversas", ColResults: "3", ColInvestment: "90", ColImpressions: "100"})

	first := acc.Finalize("Trevo")
	second := acc.Finalize("Trevo")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Finalize not idempotent: %+v vs %+v", first, second)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"", 0},
		{"  ", 0},
		{"42", 42},
		{"3.14", 3.14},
		{"1.234,56", 1234.56},
		{"abc", 0},
		{"12abc", 0},
	}

	for _, tt := range tests {
		if got := ParseNumber(tt.input); got != tt.expected {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
