package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the default data directory for junbi.
// Windows: %LOCALAPPDATA%\junbi
// Linux/Mac: ~/.local/share/junbi
func DataDir() string {
	if dir := os.Getenv("JUNBI_DATA_DIR"); dir != "" {
		return dir
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "junbi")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "junbi")
}

// LogsDir returns the directory where per-operation log files are written.
func LogsDir() string {
	return filepath.Join(DataDir(), "logs")
}

// SkillsDir returns the directory the skill pack is installed into.
func SkillsDir() string {
	if dir := os.Getenv("JUNBI_SKILLS_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(DataDir(), "skills")
}

// SkillIndexDir returns the directory backing the skill search index.
func SkillIndexDir() string {
	return filepath.Join(DataDir(), "skill-index")
}

// PIDFile returns the path of the model-runner PID file.
func PIDFile() string {
	return filepath.Join(LogsDir(), "ollama.pid")
}

// AssistantConfigFile returns the path of the assistant configuration file.
func AssistantConfigFile() string {
	return filepath.Join(DataDir(), "config.json")
}

// CatalogFile returns the path of the optional model-catalog override.
func CatalogFile() string {
	return filepath.Join(DataDir(), "models.yaml")
}

// EnsureDirs creates the required directories if they don't exist.
func EnsureDirs() error {
	dirs := []string{DataDir(), LogsDir(), SkillsDir()}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
