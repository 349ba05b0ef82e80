package utils

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config struct holds application configuration
type Config struct {
	TCPPort         int    `yaml:"tcp_port"`
	GRPCPort        int    `yaml:"grpc_port"`
	DefaultCapacity int    `yaml:"default_capacity"`
	MaxCapacity     int    `yaml:"max_capacity"`
	LogFile         string `yaml:"log_file"`
	Debug           bool   `yaml:"debug"`
}

const (
	defaultTCPPort  = 6379
	grpcPortOffset  = 1000
	defaultCapacity = 4
	maxCapacity     = 1 << 20
)

var (
	configInstance *Config    // Singleton configInstance
	configMu       sync.Mutex // Guards configInstance
)

// DefaultConfigPath returns ~/.vessel/vessel.yaml
func DefaultConfigPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vessel.yaml"), nil
}

// LoadConfig reads the config file once and caches it. Later calls return
// the cached config.
func LoadConfig(filename string) (*Config, error) {
	configMu.Lock()
	defer configMu.Unlock()
	if configInstance != nil {
		return configInstance, nil
	}
	config, err := loadConfigFromFile(filename)
	if err != nil {
		return nil, err
	}
	configInstance = config
	return configInstance, nil
}

// loadConfigFromFile reads and parses the config file. YAML is a superset
// of JSON, so JSON config files are accepted too.
func loadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return getDefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "read config %s", filename)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", filename)
	}

	applyDefaults(config)
	return config, nil
}

// GetConfig returns the singleton config configInstance
func GetConfig() (*Config, error) {
	configMu.Lock()
	defer configMu.Unlock()
	if configInstance == nil {
		return nil, errors.New("config not initialized, call LoadConfig() first")
	}
	return configInstance, nil
}

// getDefaultConfig returns default config values
func getDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// applyDefaults ensures missing values get defaults
func applyDefaults(config *Config) {
	if config.TCPPort == 0 {
		config.TCPPort = defaultTCPPort
	}
	if config.GRPCPort == 0 {
		config.GRPCPort = config.TCPPort + grpcPortOffset
	}
	if config.MaxCapacity <= 0 {
		config.MaxCapacity = maxCapacity
	}
	if config.DefaultCapacity <= 0 {
		config.DefaultCapacity = min(defaultCapacity, config.MaxCapacity)
	}
	if config.DefaultCapacity > config.MaxCapacity {
		config.DefaultCapacity = config.MaxCapacity
	}
}
