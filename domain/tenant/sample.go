package tenant

import (
	"francadash/domain/metrics"
)

// SampleData returns placeholder dashboard data for a tenant that has no
// uploaded record yet, so the dashboard never renders empty. Returns false
// for ids outside the registry.
func SampleData(id ID) (metrics.CompanyData, bool) {
	if canonical, ok := aliases[id]; ok {
		id = canonical
	}
	data, ok := sampleData[id]
	return data, ok
}

var sampleData = map[ID]metrics.CompanyData{
	Houston: {
		Name:   "Houston Academy",
		Period: metrics.Period{Start: "01/01/2025", End: "31/01/2025"},
		Metrics: metrics.Metrics{
			Purchases:     metrics.MetricData{Results: 47, CostPerResult: 32.50},
			Leads:         metrics.MetricData{Results: 156, CostPerResult: 18.75},
			ProfileVisits: metrics.MetricData{Results: 2340, CostPerResult: 1.25},
		},
		Investment:  5890.00,
		Followers:   234,
		Impressions: 145000,
	},
	TrevoBarbearia: {
		Name:   "Trevo Barbearia",
		Period: metrics.Period{Start: "01/01/2025", End: "31/01/2025"},
		Metrics: metrics.Metrics{
			Purchases:     metrics.MetricData{},
			Leads:         metrics.MetricData{Results: 89, CostPerResult: 12.50},
			ProfileVisits: metrics.MetricData{Results: 1560, CostPerResult: 0.85},
		},
		Investment:  2200.00,
		Followers:   178,
		Impressions: 89000,
	},
	TrevoTabacaria: {
		Name:   "Trevo Tabacaria",
		Period: metrics.Period{Start: "01/01/2025", End: "31/01/2025"},
		Metrics: metrics.Metrics{
			Purchases:     metrics.MetricData{Results: 23, CostPerResult: 45.00},
			Leads:         metrics.MetricData{Results: 67, CostPerResult: 22.00},
			ProfileVisits: metrics.MetricData{Results: 980, CostPerResult: 1.50},
		},
		Investment:  3500.00,
		Followers:   145,
		Impressions: 67000,
	},
	Miguel: {
		Name:   "Miguel",
		Period: metrics.Period{Start: "01/01/2025", End: "31/01/2025"},
		Metrics: metrics.Metrics{
			Purchases:     metrics.MetricData{Results: 12, CostPerResult: 38.00},
			Leads:         metrics.MetricData{Results: 45, CostPerResult: 15.00},
			ProfileVisits: metrics.MetricData{Results: 750, CostPerResult: 1.10},
		},
		Investment:  1800.00,
		Followers:   98,
		Impressions: 45000,
	},
}
