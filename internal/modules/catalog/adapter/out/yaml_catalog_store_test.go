package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	catalogout "grindlock/internal/modules/catalog/adapter/out"
)

func TestLoadFallsBackToEmbeddedCatalog(t *testing.T) {
	t.Parallel()
	store := catalogout.NewYAMLCatalogStore(filepath.Join(t.TempDir(), "catalog.yaml"))
	catalog, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	if len(catalog) != 75 {
		t.Fatalf("expected the full Blind 75, got %d entries", len(catalog))
	}
	if catalog[0].Slug != "two-sum" {
		t.Fatalf("canonical order broken, first entry: %s", catalog[0].Slug)
	}
}

func TestLoadPrefersFileOnDisk(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	raw := []byte("problems:\n  - {slug: two-sum, title: Two Sum, difficulty: Easy, category: Array}\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	store := catalogout.NewYAMLCatalogStore(path)
	catalog, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(catalog) != 1 {
		t.Fatalf("expected the on-disk catalog, got %d entries", len(catalog))
	}
}

func TestLoadRejectsInvalidCatalog(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	raw := []byte("problems:\n  - {slug: '', title: Broken, difficulty: Easy}\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	store := catalogout.NewYAMLCatalogStore(path)
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatalf("invalid catalog should fail to load")
	}
}
