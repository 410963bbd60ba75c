package search

import (
	"strings"
	"testing"
)

const fixture = `
<html><body>
  <ul>
    <li><a href="/library/qwen2.5-coder"><h2>qwen2.5-coder</h2><p>Code-specific Qwen models.</p></a></li>
    <li><a href="/library/llama3.2"><h2>llama3.2</h2><p>Meta's small instruct models.</p></a></li>
    <li><a href="/library/deep/nested">ignore me</a></li>
    <li><a href="/blog/post">not a model</a></li>
  </ul>
</body></html>`

func TestParseLibrary(t *testing.T) {
	models, err := parseLibrary(strings.NewReader(fixture), 10)
	if err != nil {
		t.Fatalf("parseLibrary: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("got %d models, want 2: %+v", len(models), models)
	}
	if models[0].Name != "qwen2.5-coder" {
		t.Errorf("first model = %q", models[0].Name)
	}
	if !strings.Contains(models[0].Description, "Code-specific") {
		t.Errorf("description = %q", models[0].Description)
	}
}

func TestParseLibraryRespectsLimit(t *testing.T) {
	models, err := parseLibrary(strings.NewReader(fixture), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 1 {
		t.Errorf("got %d models, want 1", len(models))
	}
}

func TestParseLibraryEmptyPage(t *testing.T) {
	models, err := parseLibrary(strings.NewReader("<html><body></body></html>"), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 0 {
		t.Errorf("got %d models from an empty page", len(models))
	}
}
