package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "12MB"
	defaultMaxImageSize       = 10 << 20
	defaultStoragePrefix      = "public"
	defaultCacheControl       = "max-age=60"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// Multipart listing submissions carry the image, so this is sized for uploads.
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database schema options
	Database *DatabaseConfig `json:"database" yaml:"database"`

	// SecretKey.Access is the HS256 secret the hosted auth project signs access tokens with.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Storage configuration for listing images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Submission configuration for the listing submit workflow
	Submission *SubmissionConfig `json:"submission" yaml:"submission"`

	// QRCode configuration for listing share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for listing event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines schema management options
type DatabaseConfig struct {
	// Create or update the store table on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// StorageConfig defines where listing images are written and how they are served
type StorageConfig struct {
	// Bucket URL understood by gocloud.dev/blob, e.g. "file:///var/lib/matjip", "s3://store-img?region=ap-northeast-2", "mem://"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Public base URL prepended to object keys to build retrieval URLs
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// Key prefix for uploaded images
	Prefix string `json:"prefix" yaml:"prefix"`

	// Cache-Control header stored with each object
	CacheControl string `json:"cacheControl" yaml:"cacheControl"`
}

// SubmissionConfig defines the listing submit workflow options
type SubmissionConfig struct {
	// Delete a freshly uploaded create-mode image when the row insert fails
	CleanupOrphanedAssets bool `json:"cleanupOrphanedAssets" yaml:"cleanupOrphanedAssets"`

	// Maximum accepted image size in bytes
	MaxImageSize int64 `json:"maxImageSize" yaml:"maxImageSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// Base URL of the web client; the detail page is {baseUrl}/detail?id={id}
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// New loads config.yaml from the working directory or a nearby config/ directory.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	return cfg, nil
}

// applyDefaults fills optional sections so downstream constructors never see nil.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Prefix == "" {
		cfg.Storage.Prefix = defaultStoragePrefix
	}
	if cfg.Storage.CacheControl == "" {
		cfg.Storage.CacheControl = defaultCacheControl
	}

	if cfg.Submission == nil {
		cfg.Submission = &SubmissionConfig{}
	}
	if cfg.Submission.MaxImageSize <= 0 {
		cfg.Submission.MaxImageSize = defaultMaxImageSize
	}
}

// replicasFromEnv reads read replicas from POSTGRES_REPLICAS_{n}_{HOST,PORT,USERNAME,PASSWORD},
// stopping at the first index without both host and port.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		field := func(name string) string {
			return getenv("POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_" + name)
		}

		host, port := field("HOST"), field("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: field("USERNAME"),
			Password: field("PASSWORD"),
		})
	}
}
