package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Assistant is the configuration file consumed by the assistant host
// application. Junbi only writes and existence-checks it; the schema is
// owned by the host.
type Assistant struct {
	Model    string   `json:"model"`
	Provider Provider `json:"provider"`
}

// Provider describes the local model runner the assistant talks to.
type Provider struct {
	Name         string            `json:"name"`
	Endpoint     string            `json:"endpoint"`
	ModelCatalog map[string]string `json:"modelCatalog"`
}

// WriteAssistant serializes the assistant configuration to path.
func WriteAssistant(path string, a Assistant) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal assistant config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write assistant config: %w", err)
	}
	return nil
}

// LoadAssistant reads and parses the assistant configuration at path.
func LoadAssistant(path string) (Assistant, error) {
	var a Assistant
	data, err := os.ReadFile(path)
	if err != nil {
		return a, err
	}
	if err := json.Unmarshal(data, &a); err != nil {
		return a, fmt.Errorf("parse assistant config: %w", err)
	}
	return a, nil
}
