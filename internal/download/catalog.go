package download

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Spec describes one downloadable model.
type Spec struct {
	ID    string `yaml:"id"`    // pull identifier, e.g. "qwen2.5-coder:7b"
	Label string `yaml:"label"` // human-readable name
	Size  int64  `yaml:"size"`  // approximate download size in bytes
}

type catalogFile struct {
	Models []Spec `yaml:"models"`
}

// Catalog returns the model set junbi manages. A models.yaml at path fully
// replaces the embedded default; an unreadable or unparseable override
// falls back to the default and reports why via the returned warning.
func Catalog(path string) (specs []Spec, warning string) {
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			var cf catalogFile
			if err := yaml.Unmarshal(data, &cf); err != nil {
				return mustDefaultCatalog(), fmt.Sprintf("ignoring %s: %v", path, err)
			}
			if len(cf.Models) == 0 {
				return mustDefaultCatalog(), fmt.Sprintf("ignoring %s: no models listed", path)
			}
			return cf.Models, ""
		}
	}
	return mustDefaultCatalog(), ""
}

// Select resolves pull arguments against the catalog. Known IDs pick up the
// catalog entry; unknown IDs are passed through as bare specs so users can
// pull models junbi doesn't curate.
func Select(catalog []Spec, ids []string) []Spec {
	byID := make(map[string]Spec, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}

	out := make([]Spec, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			out = append(out, s)
			continue
		}
		out = append(out, Spec{ID: id, Label: id})
	}
	return out
}

func mustDefaultCatalog() []Spec {
	var cf catalogFile
	if err := yaml.Unmarshal(defaultCatalog, &cf); err != nil {
		// The embedded catalog is compiled in; a parse failure here is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("download: embedded catalog is invalid: %v", err))
	}
	return cf.Models
}
