package skills

import (
	"context"
	"hash/fnv"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// mockEmbedFunc creates deterministic unit vectors from text hashing, so
// index tests run without a live embeddings endpoint.
func mockEmbedFunc(ctx context.Context, text string) ([]float32, error) {
	const dims = 64
	vec := make([]float32, dims)
	h := fnv.New64a()
	h.Write([]byte(text))
	seed := h.Sum64()

	var sum float64
	for i := range vec {
		bits := seed ^ (uint64(i) * 0x9E3779B97F4A7C15)
		vec[i] = float32(bits%1000) / 1000.0
		sum += float64(vec[i]) * float64(vec[i])
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
	return vec, nil
}

func TestInstallPackAndList(t *testing.T) {
	dir := t.TempDir()

	names, err := InstallPack(dir)
	if err != nil {
		t.Fatalf("InstallPack: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("pack installed zero skills")
	}

	list := NewStore(dir).List()
	if len(list) != len(names) {
		t.Fatalf("List found %d skills, pack has %d", len(list), len(names))
	}
	for _, sk := range list {
		if sk.Title == "" {
			t.Errorf("skill %s has no title", sk.Name)
		}
		if sk.Description == "" {
			t.Errorf("skill %s has no description", sk.Name)
		}
	}
}

func TestInstallPackOverwrites(t *testing.T) {
	dir := t.TempDir()
	if _, err := InstallPack(dir); err != nil {
		t.Fatal(err)
	}

	// Clobber one skill, reinstall, expect the pack content back.
	list := NewStore(dir).List()
	os.WriteFile(list[0].Path, []byte("# garbage\n\nstale\n"), 0644)

	if _, err := InstallPack(dir); err != nil {
		t.Fatal(err)
	}
	fresh := NewStore(dir).List()
	if fresh[0].Title == "garbage" {
		t.Error("reinstall did not overwrite modified skill")
	}
}

func TestListMissingDir(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope"))
	if got := s.List(); len(got) != 0 {
		t.Errorf("List on missing dir = %d skills, want 0", len(got))
	}
}

func TestParseSkill(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.md")
	content := "# Example skill\n\nFirst paragraph line one\ncontinues here.\n\n## Section\n\nmore\n"
	os.WriteFile(path, []byte(content), 0644)

	sk, err := parseSkill(path)
	if err != nil {
		t.Fatalf("parseSkill: %v", err)
	}
	if sk.Name != "example" || sk.Title != "Example skill" {
		t.Errorf("parsed %+v", sk)
	}
	if sk.Description != "First paragraph line one continues here." {
		t.Errorf("description = %q", sk.Description)
	}
}

func TestKeywordSearch(t *testing.T) {
	dir := t.TempDir()
	if _, err := InstallPack(dir); err != nil {
		t.Fatal(err)
	}
	s := NewStore(dir)

	hits := s.KeywordSearch("dark mode toggle", 3)
	if len(hits) == 0 {
		t.Fatal("no hits for a term straight out of the pack")
	}
	if hits[0].Name != "dark-mode" {
		t.Errorf("top hit = %s, want dark-mode", hits[0].Name)
	}
}

func TestIndexBuildAndSearch(t *testing.T) {
	dir := t.TempDir()
	if _, err := InstallPack(dir); err != nil {
		t.Fatal(err)
	}

	ix, err := NewIndex("", mockEmbedFunc)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}

	ctx := context.Background()
	list := NewStore(dir).List()
	if err := ix.Build(ctx, list); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ix.Count() != len(list) {
		t.Errorf("indexed %d skills, want %d", ix.Count(), len(list))
	}

	results, err := ix.Search(ctx, "responsive breakpoints grid", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("no search results")
	}
	for i := 1; i < len(results); i++ {
		if results[i].CombinedScore > results[i-1].CombinedScore {
			t.Error("results not sorted by combined score")
		}
	}
}

func TestIndexSearchEmpty(t *testing.T) {
	ix, err := NewIndex("", mockEmbedFunc)
	if err != nil {
		t.Fatal(err)
	}
	results, err := ix.Search(context.Background(), "anything", 5)
	if err != nil {
		t.Fatalf("Search on empty index: %v", err)
	}
	if results != nil {
		t.Errorf("expected nil results, got %v", results)
	}
}

func TestKeywordScore(t *testing.T) {
	words := extractWords("dark mode toggle")
	if got := keywordScore(words, "class-based dark mode"); got <= 0 {
		t.Errorf("score = %f, want > 0", got)
	}
	if got := keywordScore(words, "unrelated content"); got != 0 {
		t.Errorf("score = %f, want 0", got)
	}
	if got := keywordScore(nil, "anything"); got != 0 {
		t.Errorf("score with no query words = %f, want 0", got)
	}
}
