package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// CorpusConfig says where training sentences are read from. Both sources may
// be set; the file is fed first.
type CorpusConfig struct {
	FilePath     string `json:"file_path"`
	DatabasePath string `json:"database_path"`
	Query        string `json:"query"`
}

// GenerationConfig holds tokenizer and sampling settings.
type GenerationConfig struct {
	Sentences  int    `json:"sentences"`
	MaxLength  int    `json:"max_length"`
	Seed       uint64 `json:"seed"` // 0 picks a random seed
	Separator  string `json:"separator"`
	Terminator string `json:"terminator"`
	SplitRegex string `json:"split_regex"`
}

// Config is the top-level configuration struct that aggregates all other configs.
type Config struct {
	LogLevel   string            `json:"log_level"`
	Corpus     *CorpusConfig     `json:"corpus_config"`
	Generation *GenerationConfig `json:"generation_config"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Corpus: &CorpusConfig{
			FilePath:     "./data/corpus.txt",
			DatabasePath: "",
			Query:        "SELECT sentence FROM corpus;",
		},
		Generation: &GenerationConfig{
			Sentences:  1,
			MaxLength:  0,
			Seed:       0,
			Separator:  " ",
			Terminator: ".",
			SplitRegex: "",
		},
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Defaults are still usable without a file on disk.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Corpus == nil {
		config.Corpus = DefaultConfig().Corpus
	}
	if config.Generation == nil {
		config.Generation = DefaultConfig().Generation
	}
	return config, nil
}
