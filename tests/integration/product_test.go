//go:build integration

package integration

import (
	"net/http"
	"testing"
)

func TestListProducts(t *testing.T) {
	resp := doGet(t, "/products")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	list := decodeJSON[listResponse](t, resp)
	if len(list.Items) != 3 {
		t.Fatalf("expected 3 products, got %d", len(list.Items))
	}

	byName := make(map[string]productResponse, len(list.Items))
	for _, p := range list.Items {
		if p.ID == "" {
			t.Errorf("product %q has empty id", p.Name)
		}
		byName[p.Name] = p
	}

	glass1, ok := byName["Glass No. 1"]
	if !ok {
		t.Fatal("Glass No. 1 missing from catalog")
	}
	if glass1.Price != 128 {
		t.Errorf("Glass No. 1 price: got %v, want 128", glass1.Price)
	}
	if !glass1.InStock {
		t.Error("Glass No. 1 should be in stock")
	}
}

func TestListProducts_Limit(t *testing.T) {
	resp := doGet(t, "/products?limit=2")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	list := decodeJSON[listResponse](t, resp)
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 products, got %d", len(list.Items))
	}
}

func TestRootBanner(t *testing.T) {
	resp := doGet(t, "/")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeJSON[map[string]string](t, resp)
	if body["status"] != "ok" || body["service"] != "perfume-commerce" {
		t.Errorf("unexpected banner: %v", body)
	}
}

func TestDatabaseDiagnostic(t *testing.T) {
	resp := doGet(t, "/test")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeJSON[struct {
		Backend     string   `json:"backend"`
		Database    string   `json:"database"`
		Collections []string `json:"collections"`
	}](t, resp)

	if body.Backend != "running" {
		t.Errorf("backend: got %q", body.Backend)
	}
	if body.Database != "connected" {
		t.Errorf("database: got %q", body.Database)
	}
}
