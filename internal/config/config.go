package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Storage   StorageConfig   `yaml:"storage"`
	Geocoding GeocodingConfig `yaml:"geocoding"`
	Rakuten   RakutenConfig   `yaml:"rakuten"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite, mysql, postgres
	DSN    string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	ExpireHour int    `yaml:"expire_hour"`
}

// StorageConfig controls where uploaded images land and how they are served.
type StorageConfig struct {
	ImageDir string `yaml:"image_dir"`
	BaseURL  string `yaml:"base_url"` // public prefix for stored files, e.g. http://localhost:8080
}

// GeocodingConfig holds the Google Maps Geocoding API key.
type GeocodingConfig struct {
	APIKey string `yaml:"api_key"`
}

// RakutenConfig holds the Rakuten Web Service application ID used by the
// Ichiba item search and hotel search proxies.
type RakutenConfig struct {
	AppID string `yaml:"app_id"`
}

type LogConfig struct {
	Level         string `yaml:"level"`
	RetentionDays int    `yaml:"retention_days"` // system_logs rows older than this are purged
}

var GlobalConfig *Config

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, err
		}
		cfg = &fileCfg
	}

	cfg.overrideFromEnv()
	GlobalConfig = cfg
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "borantia.db",
		},
		JWT: JWTConfig{
			Secret:     "borantia-secret-key-change-in-production",
			ExpireHour: 24,
		},
		Storage: StorageConfig{
			ImageDir: "storage/images",
			BaseURL:  "http://localhost:8080",
		},
		Log: LogConfig{
			Level:         "info",
			RetentionDays: 30,
		},
	}
}

func (c *Config) overrideFromEnv() {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		c.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		c.Server.Mode = mode
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		c.Database.Driver = driver
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		c.JWT.Secret = secret
	}
	if dir := os.Getenv("IMAGE_DIR"); dir != "" {
		c.Storage.ImageDir = dir
	}
	if base := os.Getenv("STORAGE_BASE_URL"); base != "" {
		c.Storage.BaseURL = base
	}
	if key := os.Getenv("GOOGLE_MAPS_API_KEY"); key != "" {
		c.Geocoding.APIKey = key
	}
	if appID := os.Getenv("RAKUTEN_APP_ID"); appID != "" {
		c.Rakuten.AppID = appID
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if days := os.Getenv("LOG_RETENTION_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			c.Log.RetentionDays = n
		}
	}
}

func (c *Config) Save(configPath string) error {
	if configPath == "" {
		configPath = "config.yaml"
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
