// Package skills manages the assistant's markdown skill pack: installing
// the embedded files, scanning what is installed, and searching over it.
// The markdown content itself is interpreted by the assistant host, not by
// junbi.
package skills

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed pack/*.md
var packFS embed.FS

// Skill is one installed skill file.
type Skill struct {
	Name        string // filename without extension
	Title       string // first markdown heading
	Description string // first paragraph after the heading
	Path        string
}

// Store scans a directory of installed skill files.
type Store struct {
	dir string
}

// NewStore creates a Store over dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// InstallPack writes the embedded skill pack into dir, overwriting existing
// files so re-running init picks up pack updates.
func InstallPack(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(packFS, "pack")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		data, err := packFS.ReadFile("pack/" + e.Name())
		if err != nil {
			return nil, err
		}
		dst := filepath.Join(dir, e.Name())
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return nil, fmt.Errorf("install skill %s: %w", e.Name(), err)
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// List returns the installed skills sorted by name. A missing directory is
// an empty list, not an error.
func (s *Store) List() []Skill {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.md"))
	if err != nil {
		return nil
	}

	var out []Skill
	for _, path := range matches {
		sk, err := parseSkill(path)
		if err != nil {
			continue
		}
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// KeywordSearch ranks installed skills by how many query words appear in
// their title and description. Used directly when the model runner (and
// therefore the embedding index) is unavailable.
func (s *Store) KeywordSearch(query string, limit int) []Skill {
	words := extractWords(query)
	if len(words) == 0 {
		return nil
	}

	type scored struct {
		skill Skill
		score float32
	}
	var hits []scored
	for _, sk := range s.List() {
		score := keywordScore(words, sk.Title+" "+sk.Description)
		if score > 0 {
			hits = append(hits, scored{sk, score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]Skill, len(hits))
	for i, h := range hits {
		out[i] = h.skill
	}
	return out
}

// parseSkill reads the first heading and the first non-empty paragraph line
// after it.
func parseSkill(path string) (Skill, error) {
	f, err := os.Open(path)
	if err != nil {
		return Skill{}, err
	}
	defer f.Close()

	sk := Skill{
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path: path,
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if sk.Title == "" {
			if strings.HasPrefix(line, "# ") {
				sk.Title = strings.TrimPrefix(line, "# ")
			}
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			if sk.Description != "" {
				break
			}
			continue
		}
		if sk.Description != "" {
			sk.Description += " "
		}
		sk.Description += line
	}
	if err := scanner.Err(); err != nil {
		return Skill{}, err
	}
	if sk.Title == "" {
		return Skill{}, fmt.Errorf("skill %s has no heading", path)
	}
	return sk, nil
}
