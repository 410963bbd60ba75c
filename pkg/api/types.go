// Package api defines the subset of the Ollama HTTP API that junbi talks to.
package api

import "time"

// TagsResponse matches the /api/tags response schema.
type TagsResponse struct {
	Models []ModelTag `json:"models"`
}

// ModelTag is one locally available model as reported by /api/tags.
type ModelTag struct {
	Name       string       `json:"name"`
	Model      string       `json:"model,omitempty"`
	Size       int64        `json:"size"`
	Digest     string       `json:"digest,omitempty"`
	ModifiedAt time.Time    `json:"modified_at"`
	Details    ModelDetails `json:"details,omitempty"`
}

// ModelDetails carries model metadata returned alongside each tag.
type ModelDetails struct {
	Format            string `json:"format,omitempty"`
	Family            string `json:"family,omitempty"`
	ParameterSize     string `json:"parameter_size,omitempty"`
	QuantizationLevel string `json:"quantization_level,omitempty"`
}

// VersionResponse matches the /api/version response schema.
type VersionResponse struct {
	Version string `json:"version"`
}

// EmbeddingsRequest matches the /api/embeddings request schema.
type EmbeddingsRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// EmbeddingsResponse matches the /api/embeddings response schema.
type EmbeddingsResponse struct {
	Embedding []float64 `json:"embedding"`
}
