package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ray-d-song/golist/pkg/list"
	"github.com/ray-d-song/golist/pkg/ui"
)

// Config represents the configuration of the application
type Config struct {
	Mode        string         `json:"mode"`
	ColorScheme ui.ColorScheme `json:"color_scheme"`
	LastSeed    string         `json:"last_seed"`
	ConfigFile  string         `json:"-"`
}

// NewConfig creates a new Config instance
func NewConfig() (*Config, error) {
	configFile, err := getConfigFile()
	if err != nil {
		return nil, err
	}
	return Open(configFile)
}

// Open loads the configuration stored in configFile, if it exists
func Open(configFile string) (*Config, error) {
	config := &Config{
		Mode:       list.Bidirectional.String(),
		ConfigFile: configFile,
	}

	// Load the config if it exists
	if _, err := os.Stat(configFile); err == nil {
		err = config.Load()
		if err != nil {
			return nil, err
		}
	}

	return config, nil
}

// Load loads the configuration from the config file
func (c *Config) Load() error {
	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, c)
}

// Save saves the configuration to the config file
func (c *Config) Save() error {
	// Create the directory if it doesn't exist
	dir := filepath.Dir(c.ConfigFile)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.ConfigFile, data, 0644)
}

// ListMode returns the configured list mode
func (c *Config) ListMode() (list.Mode, error) {
	return list.ParseMode(c.Mode)
}

// SetListMode sets the list mode
func (c *Config) SetListMode(m list.Mode) {
	c.Mode = m.String()
}

// SetLastSeed records the last seed file, stored as an absolute path
func (c *Config) SetLastSeed(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	c.LastSeed = path
}

// getConfigFile returns the path to the config file
func getConfigFile() (string, error) {
	// Try $HOME/.config/golist/config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".config", "golist")
	configFile := filepath.Join(configDir, "config")

	// If the directory exists or can be created, use it
	if _, err := os.Stat(configDir); err == nil || os.IsNotExist(err) {
		return configFile, nil
	}

	// Otherwise, use $HOME/.golist
	return filepath.Join(homeDir, ".golist"), nil
}
