package app

import (
	"context"
	"time"

	"github.com/gomarkdown/markdown"

	"francadash/domain/display"
	"francadash/domain/metrics"
	"francadash/domain/tenant"
	"francadash/internal/errors"
	"francadash/ports"
)

// DashboardPayload is what the dashboard frontend renders for one tenant.
// Sample is true when no upload exists yet and placeholder data is shown.
type DashboardPayload struct {
	TenantID tenant.ID           `json:"tenantId"`
	Data     metrics.CompanyData `json:"data"`
	Insights metrics.Insights    `json:"insights"`
	Sample   bool                `json:"sample"`
}

// InsightsHTML carries the commentary fields rendered from markdown.
type InsightsHTML struct {
	Progress  string `json:"progress"`
	Positives string `json:"positives"`
	NextFocus string `json:"nextFocus"`
}

// ExportPayload is the bundle the PDF report collaborator consumes: the raw
// record plus display-formatted strings and rendered insights.
type ExportPayload struct {
	TenantID             tenant.ID           `json:"tenantId"`
	Data                 metrics.CompanyData `json:"data"`
	FormattedInvestment  string              `json:"formattedInvestment"`
	FormattedFollowers   string              `json:"formattedFollowers"`
	FormattedImpressions string              `json:"formattedImpressions"`
	Insights             InsightsHTML        `json:"insights"`
	GeneratedAt          time.Time           `json:"generatedAt"`
}

// DashboardService assembles read-side payloads from the stores.
type DashboardService struct {
	companies ports.CompanyStore
	insights  ports.InsightsStore
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(companies ports.CompanyStore, insights ports.InsightsStore) *DashboardService {
	return &DashboardService{companies: companies, insights: insights}
}

// Dashboard returns the current record and insights for a tenant, falling
// back to sample data when nothing has been uploaded yet.
func (s *DashboardService) Dashboard(ctx context.Context, tenantID string) (*DashboardPayload, error) {
	t := tenant.Resolve(tenantID)

	data, err := s.companies.Get(ctx, t.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load company data")
	}

	payload := &DashboardPayload{TenantID: t.ID}
	if data != nil {
		payload.Data = *data
	} else if sample, ok := tenant.SampleData(t.ID); ok {
		payload.Data = sample
		payload.Sample = true
	} else {
		payload.Data = metrics.CompanyData{Name: t.Name}
		payload.Sample = true
	}

	ins, err := s.insights.Get(ctx, t.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load insights")
	}
	payload.Insights = *ins

	return payload, nil
}

// SaveInsights replaces the commentary fields for a tenant.
func (s *DashboardService) SaveInsights(ctx context.Context, tenantID string, ins metrics.Insights) error {
	t := tenant.Resolve(tenantID)
	if err := s.insights.Save(ctx, t.ID, ins); err != nil {
		return errors.Wrap(err, "failed to save insights")
	}
	return nil
}

// Export builds the report payload for a tenant: formatted display strings
// and insights rendered from markdown to HTML.
func (s *DashboardService) Export(ctx context.Context, tenantID string) (*ExportPayload, error) {
	dash, err := s.Dashboard(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &ExportPayload{
		TenantID:             dash.TenantID,
		Data:                 dash.Data,
		FormattedInvestment:  display.Currency(dash.Data.Investment),
		FormattedFollowers:   display.Number(dash.Data.Followers),
		FormattedImpressions: display.Number(dash.Data.Impressions),
		Insights: InsightsHTML{
			Progress:  renderMarkdown(dash.Insights.Progress),
			Positives: renderMarkdown(dash.Insights.Positives),
			NextFocus: renderMarkdown(dash.Insights.NextFocus),
		},
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func renderMarkdown(text string) string {
	if text == "" {
		return ""
	}
	return string(markdown.ToHTML([]byte(text), nil, nil))
}
