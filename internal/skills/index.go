package skills

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/philippgille/chromem-go"

	"github.com/ThatCatDev/junbi/internal/ollama"
)

// EmbedFunc produces a float32 embedding vector from text.
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

// NewOllamaEmbedFunc embeds through the local runner's embeddings endpoint.
func NewOllamaEmbedFunc(client *ollama.Client, model string) EmbedFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return client.Embed(ctx, model, text)
	}
}

// Result is a skill with its hybrid search scores.
type Result struct {
	Skill         Skill
	SemanticScore float32
	KeywordScore  float32
	CombinedScore float32
}

// Index is a vector index over the installed skill pack.
type Index struct {
	collection *chromem.Collection
}

// NewIndex opens (or creates) the index. An empty persistDir keeps it
// in-memory, which the tests use.
func NewIndex(persistDir string, embed EmbedFunc) (*Index, error) {
	var db *chromem.DB
	if persistDir == "" {
		db = chromem.NewDB()
	} else {
		var err error
		db, err = chromem.NewPersistentDB(persistDir, false)
		if err != nil {
			return nil, fmt.Errorf("open skill index: %w", err)
		}
	}

	col, err := db.GetOrCreateCollection("skills", nil, chromem.EmbeddingFunc(embed))
	if err != nil {
		return nil, fmt.Errorf("open skills collection: %w", err)
	}
	return &Index{collection: col}, nil
}

// Build (re)indexes the given skills.
func (ix *Index) Build(ctx context.Context, list []Skill) error {
	for _, sk := range list {
		doc := chromem.Document{
			ID:      sk.Name,
			Content: sk.Title + "\n" + sk.Description,
			Metadata: map[string]string{
				"title":       sk.Title,
				"description": sk.Description,
				"path":        sk.Path,
			},
		}
		if err := ix.collection.AddDocument(ctx, doc); err != nil {
			return fmt.Errorf("index skill %s: %w", sk.Name, err)
		}
	}
	return nil
}

// Count returns the number of indexed skills.
func (ix *Index) Count() int {
	return ix.collection.Count()
}

// Search runs hybrid retrieval: 70% embedding similarity, 30% keyword
// overlap, sorted by the combined score.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 5
	}

	count := ix.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if limit > count {
		limit = count
	}

	results, err := ix.collection.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query skill index: %w", err)
	}

	queryWords := extractWords(query)
	out := make([]Result, 0, len(results))
	for _, r := range results {
		kw := keywordScore(queryWords, r.Content)
		out = append(out, Result{
			Skill: Skill{
				Name:        r.ID,
				Title:       r.Metadata["title"],
				Description: r.Metadata["description"],
				Path:        r.Metadata["path"],
			},
			SemanticScore: r.Similarity,
			KeywordScore:  kw,
			CombinedScore: 0.7*r.Similarity + 0.3*kw,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CombinedScore > out[j].CombinedScore })
	return out, nil
}

// extractWords returns lowercased words from text with length >= 3.
func extractWords(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) >= 3 {
			words = append(words, w)
		}
	}
	return words
}

// keywordScore computes the fraction of query words found in the content.
func keywordScore(queryWords []string, content string) float32 {
	if len(queryWords) == 0 {
		return 0
	}
	lower := strings.ToLower(content)
	matches := 0
	for _, w := range queryWords {
		if strings.Contains(lower, w) {
			matches++
		}
	}
	return float32(matches) / float32(len(queryWords))
}
