package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucy1234dev/server/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of Config. Durations accept "5m" or
// integer nanoseconds. Zero values leave the current setting alone.
type FileConfig struct {
	HTTPAddr           string `json:"http_addr" yaml:"http_addr"`
	HealthAddrGRPC     string `json:"health_addr_grpc" yaml:"health_addr_grpc"`
	AccountsMount      string `json:"accounts_mount" yaml:"accounts_mount"`
	ProductsMount      string `json:"products_mount" yaml:"products_mount"`
	LogLevel           string `json:"log_level" yaml:"log_level"`
	RateLimitPerMinute int    `json:"rate_limit_per_minute" yaml:"rate_limit_per_minute"`

	StoreBackend string `json:"store_backend" yaml:"store_backend"`
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	DatabaseDSN  string `json:"database_dsn" yaml:"database_dsn"`

	S3RootUser     string `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region       string `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	S3Prefix       string `json:"s3_prefix" yaml:"s3_prefix"`

	RedisAddr      string `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword  string `json:"redis_password" yaml:"redis_password"`
	RedisDB        int    `json:"redis_db" yaml:"redis_db"`
	RedisKeyPrefix string `json:"redis_key_prefix" yaml:"redis_key_prefix"`

	Notifier           string         `json:"notifier" yaml:"notifier"`
	KafkaBrokers       []string       `json:"kafka_brokers" yaml:"kafka_brokers"`
	KafkaTopic         string         `json:"kafka_topic" yaml:"kafka_topic"`
	SendGridAPIKey     string         `json:"sendgrid_api_key" yaml:"sendgrid_api_key"`
	SendGridFrom       string         `json:"sendgrid_from" yaml:"sendgrid_from"`
	SendGridFromName   string         `json:"sendgrid_from_name" yaml:"sendgrid_from_name"`
	BreakerMaxFailures int            `json:"breaker_max_failures" yaml:"breaker_max_failures"`
	BreakerTimeout     timex.Duration `json:"breaker_timeout" yaml:"breaker_timeout"`

	OTPResendCooldown timex.Duration `json:"otp_resend_cooldown" yaml:"otp_resend_cooldown"`
	OTPTTL            timex.Duration `json:"otp_ttl" yaml:"otp_ttl"`
}

// parseFile overlays config with the file at path. Files ending in .yaml or
// .yml are read as YAML, anything else as JSON. An empty path is a no-op;
// unreadable or malformed files panic.
func parseFile(config *Config, path string) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc := &FileConfig{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		panic(fmt.Errorf("config file %s: %w", path, err))
	}

	fc.apply(config)
}

func (fc *FileConfig) apply(c *Config) {
	setString(&c.HTTPAddr, fc.HTTPAddr)
	setString(&c.HealthAddrGRPC, fc.HealthAddrGRPC)
	setString(&c.AccountsMount, fc.AccountsMount)
	setString(&c.ProductsMount, fc.ProductsMount)
	setString(&c.LogLevel, fc.LogLevel)
	setInt(&c.RateLimitPerMinute, fc.RateLimitPerMinute)

	setString(&c.StoreBackend, fc.StoreBackend)
	setString(&c.DataDir, fc.DataDir)
	setString(&c.DatabaseDSN, fc.DatabaseDSN)

	setString(&c.S3RootUser, fc.S3RootUser)
	setString(&c.S3RootPassword, fc.S3RootPassword)
	setString(&c.S3Bucket, fc.S3Bucket)
	setString(&c.S3Region, fc.S3Region)
	setString(&c.S3BaseEndpoint, fc.S3BaseEndpoint)
	setString(&c.S3Prefix, fc.S3Prefix)

	setString(&c.RedisAddr, fc.RedisAddr)
	setString(&c.RedisPassword, fc.RedisPassword)
	setInt(&c.RedisDB, fc.RedisDB)
	setString(&c.RedisKeyPrefix, fc.RedisKeyPrefix)

	setString(&c.Notifier, fc.Notifier)
	if len(fc.KafkaBrokers) > 0 {
		c.KafkaBrokers = fc.KafkaBrokers
	}
	setString(&c.KafkaTopic, fc.KafkaTopic)
	setString(&c.SendGridAPIKey, fc.SendGridAPIKey)
	setString(&c.SendGridFrom, fc.SendGridFrom)
	setString(&c.SendGridFromName, fc.SendGridFromName)
	setInt(&c.BreakerMaxFailures, fc.BreakerMaxFailures)
	if fc.BreakerTimeout.Duration != 0 {
		c.BreakerTimeout = fc.BreakerTimeout.Duration
	}

	if fc.OTPResendCooldown.Duration != 0 {
		c.OTPResendCooldown = fc.OTPResendCooldown.Duration
	}
	if fc.OTPTTL.Duration != 0 {
		c.OTPTTL = fc.OTPTTL.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
