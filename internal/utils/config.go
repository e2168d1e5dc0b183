package utils

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// Config holds the REPL session configuration.
type Config struct {
	LogFile string `json:"log_file"`
	Debug   bool   `json:"debug"`
	Prompt  string `json:"prompt"`
}

var (
	configInstance *Config
	configOnce     sync.Once // Ensures the config is loaded exactly once
)

// LoadConfig initializes the singleton config from the given file. A
// missing file is not an error; defaults are used instead.
func LoadConfig(filename string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		configInstance, err = loadConfigFromFile(filename)
	})
	if err != nil {
		return nil, err
	}
	return GetConfig()
}

// loadConfigFromFile reads and parses the config file.
func loadConfigFromFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return getDefaultConfig(), nil
		}
		return nil, err
	}
	defer file.Close()

	config := &Config{}
	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, err
	}

	applyDefaults(config)
	return config, nil
}

// GetConfig returns the singleton config instance.
func GetConfig() (*Config, error) {
	if configInstance == nil {
		return nil, errors.New("config not initialized, call LoadConfig() first")
	}
	return configInstance, nil
}

// getDefaultConfig returns default config values.
func getDefaultConfig() *Config {
	return &Config{
		LogFile: "",
		Debug:   false,
		Prompt:  ">> ",
	}
}

// applyDefaults ensures missing values get defaults.
func applyDefaults(config *Config) {
	if config.Prompt == "" {
		config.Prompt = ">> "
	}
}
