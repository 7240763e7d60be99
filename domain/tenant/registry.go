// Package tenant holds the registry of client companies and the per-tenant
// rules that route raw result-type labels into metric buckets. All
// tenant-specific behavior lives in the rule tables here; adding a client is
// a data change, not a code change.
package tenant

import (
	"francadash/domain/metrics"
)

// ID identifies one client company.
type ID string

const (
	Houston        ID = "houston"
	TrevoBarbearia ID = "trevo-barbearia"
	TrevoTabacaria ID = "trevo-tabacaria"
	Miguel         ID = "miguel"
)

// DefaultName is the display name used when a tenant id is not recognized.
const DefaultName = "Empresa"

// Rule maps result-type label keywords to one bucket. Keywords match by
// case-insensitive substring containment, evaluated in slice order.
type Rule struct {
	Keywords []string
	Bucket   metrics.Bucket
}

// Tenant is one registered client: identity, display name, bucket routing
// rules, and the followers accumulation policy its exports require.
type Tenant struct {
	ID              ID
	Name            string
	Rules           []Rule
	FollowersPolicy metrics.FollowersPolicy
}

// registry is the canonical tenant table. Earlier deployments used "fagori"
// for the first slot; that id survives only as an alias below.
var registry = []Tenant{
	{
		ID:   Houston,
		Name: "Houston Academy",
		Rules: []Rule{
			{Keywords: []string{"compras no site", "compras"}, Bucket: metrics.BucketPurchases},
			{Keywords: []string{"leads no site", "leads"}, Bucket: metrics.BucketLeads},
			{Keywords: []string{"visitas ao perfil"}, Bucket: metrics.BucketProfileVisits},
		},
		FollowersPolicy: metrics.FollowersSum,
	},
	{
		ID:   TrevoBarbearia,
		Name: "Trevo Barbearia",
		Rules: []Rule{
			{Keywords: []string{"conversas por mensagem", "conversas"}, Bucket: metrics.BucketPurchases},
			// Link clicks are reported as profile visits for this client.
			{Keywords: []string{"cliques no link", "clique no link"}, Bucket: metrics.BucketProfileVisits},
		},
		FollowersPolicy: metrics.FollowersSum,
	},
	{
		ID:   TrevoTabacaria,
		Name: "Trevo Tabacaria",
		Rules: []Rule{
			{Keywords: []string{"conversas por mensagem", "conversas"}, Bucket: metrics.BucketPurchases},
		},
		FollowersPolicy: metrics.FollowersSum,
	},
	{
		ID:   Miguel,
		Name: "Miguel",
		Rules: []Rule{
			// ThruPlay rows need no mapping; impressions arrive via their
			// own column.
			{Keywords: []string{"visitas ao perfil"}, Bucket: metrics.BucketProfileVisits},
		},
		FollowersPolicy: metrics.FollowersSum,
	},
}

// aliases maps legacy tenant ids from older deployments onto the canonical
// registry.
var aliases = map[ID]ID{
	"fagori": Houston,
}

// defaultTenant is the graceful-degradation mapping for unknown ids: generic
// e-commerce style routing under the fallback display name.
var defaultTenant = Tenant{
	Name: DefaultName,
	Rules: []Rule{
		{Keywords: []string{"compras"}, Bucket: metrics.BucketPurchases},
		{Keywords: []string{"leads"}, Bucket: metrics.BucketLeads},
		{Keywords: []string{"visitas ao perfil"}, Bucket: metrics.BucketProfileVisits},
	},
	FollowersPolicy: metrics.FollowersSum,
}

// Resolve returns the tenant for an id, following legacy aliases. Unknown
// ids degrade to the default tenant rather than failing.
func Resolve(id string) Tenant {
	resolved := ID(id)
	if canonical, ok := aliases[resolved]; ok {
		resolved = canonical
	}
	for _, t := range registry {
		if t.ID == resolved {
			return t
		}
	}
	unknown := defaultTenant
	unknown.ID = resolved
	return unknown
}

// Known reports whether an id (or one of its aliases) is in the registry.
func Known(id string) bool {
	resolved := ID(id)
	if canonical, ok := aliases[resolved]; ok {
		resolved = canonical
	}
	for _, t := range registry {
		if t.ID == resolved {
			return true
		}
	}
	return false
}

// All returns the canonical registry in display order.
func All() []Tenant {
	out := make([]Tenant, len(registry))
	copy(out, registry)
	return out
}
