package download

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCatalogDefault(t *testing.T) {
	specs, warning := Catalog("")
	if warning != "" {
		t.Errorf("unexpected warning: %s", warning)
	}
	if len(specs) == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, s := range specs {
		if s.ID == "" || s.Label == "" {
			t.Errorf("catalog entry missing fields: %+v", s)
		}
	}
}

func TestCatalogOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	data := "models:\n  - id: custom:1b\n    label: Custom\n    size: 10\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	specs, warning := Catalog(path)
	if warning != "" {
		t.Errorf("unexpected warning: %s", warning)
	}
	if len(specs) != 1 || specs[0].ID != "custom:1b" {
		t.Errorf("override not applied: %+v", specs)
	}
}

func TestCatalogBadOverrideFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	if err := os.WriteFile(path, []byte("models: [not: valid: yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	specs, warning := Catalog(path)
	if warning == "" {
		t.Error("expected a warning for an unparseable override")
	}
	if len(specs) == 0 {
		t.Error("expected fallback to the embedded catalog")
	}
}

func TestCatalogMissingOverrideUsesDefault(t *testing.T) {
	specs, warning := Catalog(filepath.Join(t.TempDir(), "absent.yaml"))
	if warning != "" {
		t.Errorf("missing file should not warn: %s", warning)
	}
	if len(specs) == 0 {
		t.Error("expected the embedded catalog")
	}
}

func TestSelect(t *testing.T) {
	catalog := []Spec{{ID: "a:1", Label: "A", Size: 10}}

	got := Select(catalog, []string{"a:1", "b:2"})
	if len(got) != 2 {
		t.Fatalf("got %d specs", len(got))
	}
	if got[0].Label != "A" {
		t.Error("known ID should resolve to the catalog entry")
	}
	if got[1].ID != "b:2" || got[1].Label != "b:2" {
		t.Error("unknown ID should pass through as a bare spec")
	}
}
