package config

import (
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v3"
)

const (
	CONFIG_PATH = "./res/config.yaml"
)

// ServiceConfig holds the configuration for the service.
type ServiceConfig struct {
	ServiceName string         `yaml:"service_name" validate:"required"`
	LogLevel    string         `yaml:"loglevel" validate:"required"`
	Host        string         `yaml:"host" validate:"required"`
	Port        string         `yaml:"port" validate:"required"`
	Database    Database       `yaml:"database" validate:"required"`
	Siyavula    SiyavulaConfig `yaml:"siyavula" validate:"required"`
}

type Database struct {
	Type string `yaml:"type" validate:"required"`
	// For MongoDB
	MongoDB MongoDBConfig `yaml:"mongodb_config" validate:"omitempty"`
	// For PostgreSQL
	Postgres PostgresConfig `yaml:"postgres_config" validate:"omitempty"`
}

// MongoDBConfig holds the MongoDB database configuration.
type MongoDBConfig struct {
	DSN              string             `yaml:"dsn"`
	DatabaseName     string             `yaml:"database_name"`
	Timeout          time.Duration      `yaml:"timeout"`
	Options          MongoServerOptions `yaml:"mongo_server_options"`
	ValidCollections []string           `yaml:"valid_collections"`
	ValidFields      []string           `yaml:"valid_fields"`
}

// PostgresConfig holds the PostgreSQL database configuration.
type PostgresConfig struct {
	DSN     string                `yaml:"dsn"`
	Options PostgresServerOptions `yaml:"postgres_server_options"`
}

type MongoServerOptions struct {
	APIVersion           string `yaml:"api_version"`
	SetStrict            bool   `yaml:"set_strict"`
	SetDeprecationErrors bool   `yaml:"set_deprecation_errors"`
}

type PostgresServerOptions struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// SiyavulaConfig holds the settings for the outbound Siyavula token API.
// Timeout bounds every outbound call; DefaultRegion and DefaultCurriculum are
// applied when a get-token request omits the optional fields.
type SiyavulaConfig struct {
	AuthURL           string        `yaml:"auth_url" validate:"required,url"`
	VerifyURL         string        `yaml:"verify_url" validate:"required,url"`
	Timeout           time.Duration `yaml:"timeout"`
	DefaultRegion     string        `yaml:"default_region"`
	DefaultCurriculum string        `yaml:"default_curriculum"`
}

// ReadLocalConfig reads the service configuration from a YAML file at the specified path.
// It unmarshals the YAML content into a ServiceConfig struct and returns it.
// If there is an error reading the file or unmarshaling the content, it returns an error.
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

func BuildServerAPIOptions(cfg MongoServerOptions) *options.ServerAPIOptions {
	opts := options.ServerAPI(options.ServerAPIVersion(cfg.APIVersion))
	opts.SetStrict(cfg.SetStrict)
	opts.SetDeprecationErrors(cfg.SetDeprecationErrors)

	return opts
}

func ListToMap(list []string) map[string]bool {
	result := make(map[string]bool)
	for _, item := range list {
		result[item] = true
	}
	return result
}
