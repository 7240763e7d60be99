package tenant

import (
	"testing"

	"francadash/domain/metrics"
)

func TestResolve_CanonicalIDs(t *testing.T) {
	for _, id := range []ID{Houston, TrevoBarbearia, TrevoTabacaria, Miguel} {
		got := Resolve(string(id))
		if got.ID != id {
			t.Errorf("Resolve(%q).ID = %q, want %q", id, got.ID, id)
		}
		if got.Name == "" || got.Name == DefaultName {
			t.Errorf("Resolve(%q).Name = %q, want a real display name", id, got.Name)
		}
		if len(got.Rules) == 0 {
			t.Errorf("Resolve(%q) has no mapping rules", id)
		}
	}
}

func TestResolve_LegacyAlias(t *testing.T) {
	got := Resolve("fagori")
	if got.ID != Houston {
		t.Errorf("Resolve(fagori).ID = %q, want %q", got.ID, Houston)
	}
	if !Known("fagori") {
		t.Error("Known(fagori) = false, want true via alias")
	}
}

func TestResolve_UnknownFallsBack(t *testing.T) {
	got := Resolve("acme-corp")
	if got.Name != DefaultName {
		t.Errorf("Resolve(unknown).Name = %q, want %q", got.Name, DefaultName)
	}
	if len(got.Rules) == 0 {
		t.Error("default tenant should carry a generic mapping table")
	}
	if Known("acme-corp") {
		t.Error("Known(acme-corp) = true, want false")
	}
}

func TestClassify_PerTenantRouting(t *testing.T) {
	tests := []struct {
		name       string
		tenantID   string
		label      string
		wantBucket metrics.Bucket
		wantMatch  bool
	}{
		{"houston site purchases", "houston", "Compras no site", metrics.BucketPurchases, true},
		{"houston bare purchases", "houston", "compras", metrics.BucketPurchases, true},
		{"houston leads substring", "houston", "Leads no site (7 dias)", metrics.BucketLeads, true},
		{"houston profile visits", "houston", "Visitas ao perfil", metrics.BucketProfileVisits, true},
		{"houston conversas unmatched", "houston", "conversas por mensagem", "", false},
		{"barbearia conversas to purchases", "trevo-barbearia", "Conversas por mensagem iniciadas", metrics.BucketPurchases, true},
		{"barbearia link clicks remap", "trevo-barbearia", "Cliques no link", metrics.BucketProfileVisits, true},
		{"barbearia singular clique", "trevo-barbearia", "Clique no link", metrics.BucketProfileVisits, true},
		{"tabacaria conversas", "trevo-tabacaria", "conversas", metrics.BucketPurchases, true},
		{"tabacaria leads unmatched", "trevo-tabacaria", "leads", "", false},
		{"miguel profile visits", "miguel", "visitas ao perfil", metrics.BucketProfileVisits, true},
		{"miguel thruplay unmatched", "miguel", "ThruPlay", "", false},
		{"empty label", "houston", "", "", false},
		{"whitespace label", "houston", "   ", "", false},
		{"unknown tenant default mapping", "acme-corp", "compras", metrics.BucketPurchases, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, ok := Resolve(tt.tenantID).Classify(tt.label)
			if ok != tt.wantMatch {
				t.Fatalf("Classify(%q) match = %t, want %t", tt.label, ok, tt.wantMatch)
			}
			if ok && bucket != tt.wantBucket {
				t.Errorf("Classify(%q) = %q, want %q", tt.label, bucket, tt.wantBucket)
			}
		})
	}
}

func TestSampleData_AllTenantsCovered(t *testing.T) {
	for _, tn := range All() {
		data, ok := SampleData(tn.ID)
		if !ok {
			t.Errorf("SampleData(%q) missing", tn.ID)
			continue
		}
		if data.Name != tn.Name {
			t.Errorf("SampleData(%q).Name = %q, want %q", tn.ID, data.Name, tn.Name)
		}
	}

	if _, ok := SampleData("fagori"); !ok {
		t.Error("SampleData should resolve legacy alias fagori")
	}
	if _, ok := SampleData("acme-corp"); ok {
		t.Error("SampleData should not exist for unknown tenants")
	}
}
