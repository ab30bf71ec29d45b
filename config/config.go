package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"galeria/log"
)

const (
	ConfigFileName = "config.json"

	defaultPageSize = 24
)

// GetConfigDir returns the path to the application's configuration directory.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".galeria"), nil
}

// Config represents the application configuration.
type Config struct {
	// Layout is the default arrangement: grid, masonry, list or carousel.
	Layout string `json:"layout"`
	// Size is the default cell size: xs, sm, md, lg or xl.
	Size string `json:"size"`
	// Columns fixes the column count; 0 picks a count from the terminal width.
	Columns int `json:"columns"`
	// Selectable enables item selection with Enter/Space.
	Selectable bool `json:"selectable"`
	// MultiSelect allows more than one item to be selected at a time.
	MultiSelect bool `json:"multi_select"`
	// Lightbox opens activated items in a full-size overlay.
	Lightbox bool `json:"lightbox"`
	// ShowCaptions renders item captions under their cells.
	ShowCaptions bool `json:"show_captions"`
	// InfiniteScroll loads items page by page as the end of the gallery
	// scrolls into view, instead of all at once.
	InfiniteScroll bool `json:"infinite_scroll"`
	// PageSize is the number of items per infinite-scroll page.
	PageSize int `json:"page_size"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout:         "grid",
		Size:           "md",
		Columns:        0,
		Selectable:     true,
		MultiSelect:    false,
		Lightbox:       true,
		ShowCaptions:   false,
		InfiniteScroll: true,
		PageSize:       defaultPageSize,
	}
}

// LoadConfig reads the config file, creating it with defaults on first run.
// Any read or parse failure falls back to defaults; the gallery should come
// up even with a broken config.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to read config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.ErrorLog.Printf("failed to parse config file at %s: %v", configPath, err)

		// Back up the corrupted config before falling back to defaults.
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	if config.PageSize <= 0 {
		config.PageSize = defaultPageSize
	}

	return &config
}

// saveConfig saves the configuration to disk.
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages.
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
