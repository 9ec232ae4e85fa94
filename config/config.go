package config

import (
	"os"

	"github.com/mealmajor/accountd/internal/schema"
	"gopkg.in/yaml.v3"
)

const (
	CONFIG_PATH = "./res/config.yaml"

	// CONFIG_PATH_ENV overrides the config file location when set.
	CONFIG_PATH_ENV = "ACCOUNTD_CONFIG"
)

// ServiceConfig holds the configuration for the service.
type ServiceConfig struct {
	ServiceName    string      `yaml:"service_name" validate:"required"`
	LogLevel       string      `yaml:"loglevel" validate:"required"`
	Host           string      `yaml:"host" validate:"required"`
	Port           string      `yaml:"port" validate:"required"`
	PrivateKeyPath string      `yaml:"private_key_path" validate:"required"`
	Store          StoreConfig `yaml:"store" validate:"required"`
	Login          LoginConfig `yaml:"login"`
}

// StoreConfig holds the user record store configuration: the persisted file
// path and the schema template the records must satisfy.
type StoreConfig struct {
	DataPath   string             `yaml:"data_path" validate:"required"`
	Attributes []schema.Attribute `yaml:"attributes" validate:"omitempty,dive"`
}

// LoginConfig bounds the login request rate at the HTTP boundary.
type LoginConfig struct {
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
}

// ReadLocalConfig reads the service configuration from a YAML file at the
// specified path and unmarshals it into a ServiceConfig. Struct-level
// validation happens at app construction.
func ReadLocalConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// TemplateAttributes returns the configured schema template attributes,
// falling back to the built-in defaults when the config defines none.
func (c *StoreConfig) TemplateAttributes() []schema.Attribute {
	if len(c.Attributes) == 0 {
		return schema.DefaultAttributes()
	}
	return c.Attributes
}
