package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search path.
const FileName = "mato.yaml"

// SkippedFile is a config file in the search path that exists but could not
// be used.
type SkippedFile struct {
	Path string
	Err  error
}

func (s SkippedFile) Error() string {
	return fmt.Sprintf("config: skipped %s: %v", s.Path, s.Err)
}

func (s SkippedFile) Unwrap() error {
	return s.Err
}

// Load loads the game configuration.
// Search order: customPath -> ~/.mato/configs/mato.yaml -> ./configs/mato.yaml -> embedded default
//
// Files are decoded over the defaults, so a file may set only some fields.
// An explicit customPath that cannot be read, parsed or validated is an error.
// Broken files elsewhere in the search path fall through to the next
// candidate and are returned as skipped; missing files are not reported.
func Load(customPath string) (Config, []SkippedFile, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, nil, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, nil, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil, nil
	}

	var skipped []SkippedFile
	for _, path := range searchPath() {
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			skipped = append(skipped, SkippedFile{Path: path, Err: err})
			continue
		}
		return cfg, skipped, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), skipped, nil // Fallback to hardcoded if embed fails
	}
	return cfg, skipped, nil
}

// searchPath lists the implicit config locations, most specific first.
func searchPath() []string {
	var paths []string
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", FileName))
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mato", "configs", filename)
}
