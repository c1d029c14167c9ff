package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "SHOP_"

// loadDotEnv exports variables from the given files without overriding
// what the process already has. Missing files are ignored.
func loadDotEnv(files ...string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// parseEnv overlays config with SHOP_* variables. SENDGRID_API_KEY is also
// honoured for the SendGrid key. Malformed numbers or durations panic.
func parseEnv(config *Config, lookup func(string) (string, bool)) {
	get := func(name string) (string, bool) {
		v, ok := lookup(envPrefix + name)
		if !ok || v == "" {
			return "", false
		}
		return v, true
	}

	str := func(name string, dst *string) {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	num := func(name string, dst *int) {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				panic(fmt.Errorf("%s%s: %w", envPrefix, name, err))
			}
			*dst = n
		}
	}

	dur := func(name string, dst *time.Duration) {
		if v, ok := get(name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				panic(fmt.Errorf("%s%s: %w", envPrefix, name, err))
			}
			*dst = d
		}
	}

	str("HTTP_ADDR", &config.HTTPAddr)
	str("HEALTH_ADDR_GRPC", &config.HealthAddrGRPC)
	str("ACCOUNTS_MOUNT", &config.AccountsMount)
	str("PRODUCTS_MOUNT", &config.ProductsMount)
	str("LOG_LEVEL", &config.LogLevel)
	num("RATE_LIMIT_PER_MINUTE", &config.RateLimitPerMinute)

	str("STORE_BACKEND", &config.StoreBackend)
	str("DATA_DIR", &config.DataDir)
	str("DATABASE_DSN", &config.DatabaseDSN)

	str("S3_ROOT_USER", &config.S3RootUser)
	str("S3_ROOT_PASSWORD", &config.S3RootPassword)
	str("S3_BUCKET", &config.S3Bucket)
	str("S3_REGION", &config.S3Region)
	str("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
	str("S3_PREFIX", &config.S3Prefix)

	str("REDIS_ADDR", &config.RedisAddr)
	str("REDIS_PASSWORD", &config.RedisPassword)
	num("REDIS_DB", &config.RedisDB)
	str("REDIS_KEY_PREFIX", &config.RedisKeyPrefix)

	str("NOTIFIER", &config.Notifier)
	if v, ok := get("KAFKA_BROKERS"); ok {
		config.KafkaBrokers = splitList(v)
	}
	str("KAFKA_TOPIC", &config.KafkaTopic)
	if v, ok := lookup("SENDGRID_API_KEY"); ok && v != "" {
		config.SendGridAPIKey = v
	}
	str("SENDGRID_API_KEY", &config.SendGridAPIKey)
	str("SENDGRID_FROM", &config.SendGridFrom)
	str("SENDGRID_FROM_NAME", &config.SendGridFromName)
	num("BREAKER_MAX_FAILURES", &config.BreakerMaxFailures)
	dur("BREAKER_TIMEOUT", &config.BreakerTimeout)

	dur("OTP_RESEND_COOLDOWN", &config.OTPResendCooldown)
	dur("OTP_TTL", &config.OTPTTL)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
