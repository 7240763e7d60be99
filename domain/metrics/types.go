package metrics

// Bucket is one of the canonical metric categories every campaign row can be
// routed into, regardless of how the ad platform labels its result type.
type Bucket string

const (
	BucketPurchases     Bucket = "purchases"
	BucketLeads         Bucket = "leads"
	BucketProfileVisits Bucket = "profile_visits"
)

// FollowersPolicy controls how the followers column is accumulated across
// rows. Exports disagree on whether the column is a per-row delta or a
// running snapshot, so the choice is per-tenant configuration.
type FollowersPolicy int

const (
	// FollowersSum treats each row's followers value as an incremental delta.
	FollowersSum FollowersPolicy = iota
	// FollowersLastSeen treats the column as a cumulative snapshot and keeps
	// the last non-empty value in row order.
	FollowersLastSeen
)

// Row is one spreadsheet row keyed by column header, as yielded by the
// spreadsheet reader. Cell values are untyped strings; numeric coercion
// happens during the fold.
type Row map[string]string

// Classifier decides which bucket a raw result-type label belongs to.
// The second return is false when the label routes to no bucket.
type Classifier interface {
	Classify(resultType string) (Bucket, bool)
}

// MetricData is the finalized view of one bucket.
type MetricData struct {
	Results       int     `json:"results"`
	CostPerResult float64 `json:"costPerResult"`
}

// Period is the reporting window covered by an upload, already normalized
// to DD/MM/YYYY display strings.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Metrics groups the three bucket results.
type Metrics struct {
	Purchases     MetricData `json:"purchases"`
	Leads         MetricData `json:"leads"`
	ProfileVisits MetricData `json:"profileVisits"`
}

// CompanyData is the public record produced by one upload. It fully replaces
// the previous record for the tenant; no history is kept.
type CompanyData struct {
	Name        string  `json:"name"`
	Period      Period  `json:"period"`
	Metrics     Metrics `json:"metrics"`
	Investment  float64 `json:"investment"`
	Followers   int     `json:"followers"`
	Impressions int     `json:"impressions"`
}

// Insights are the free-text commentary fields an admin maintains per
// tenant. They are edited independently of uploads.
type Insights struct {
	Progress  string `json:"progress"`
	Positives string `json:"positives"`
	NextFocus string `json:"nextFocus"`
}

// Recognized column headers. These are the exact header strings the ad
// platform export uses; anything else in the sheet is ignored.
const (
	ColResultType  = "Tipo de resultado"
	ColResults     = "Resultados"
	ColInvestment  = "Valor usado (BRL)"
	ColFollowers   = "Seguidores no Instagram"
	ColImpressions = "Impressões"
	ColPeriodStart = "Início dos relatórios"
	ColPeriodEnd   = "Término dos relatórios"
)
