package config

import (
	"flag"
	"strings"
	"time"

	"github.com/lucy1234dev/server/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g. ":8000")
//	-g string   gRPC health bind address, "" disables it
//	-s string   store backend: file, postgres, s3, redis
//	-f string   data directory of the file backend
//	-d string   PostgreSQL DSN
//	-n string   extra OTP notifier: kafka, sendgrid
//	-k string   comma separated Kafka brokers
//	-l string   log level
//	-r int      requests per minute allowed per client IP
//	-w int      OTP resend cooldown, seconds
//	-t int      OTP lifetime at verification, seconds (0 = no expiry)
func parseFlags(config *Config, osArgs []string) {
	args := flagx.FilterArgs(osArgs, []string{"-a", "-g", "-s", "-f", "-d", "-n", "-k", "-l", "-r", "-w", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run the HTTP API")
	fs.StringVar(&config.HealthAddrGRPC, "g", config.HealthAddrGRPC, "address and port of the gRPC health service")
	fs.StringVar(&config.StoreBackend, "s", config.StoreBackend, "store backend")
	fs.StringVar(&config.DataDir, "f", config.DataDir, "data directory")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.Notifier, "n", config.Notifier, "extra OTP notifier")
	brokers := fs.String("k", strings.Join(config.KafkaBrokers, ","), "kafka brokers")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.IntVar(&config.RateLimitPerMinute, "r", config.RateLimitPerMinute, "requests per minute per IP")

	cooldown := fs.Int("w", int(config.OTPResendCooldown.Seconds()), "otp resend cooldown (in seconds)")
	ttl := fs.Int("t", int(config.OTPTTL.Seconds()), "otp ttl (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only flags given explicitly override, so finer file or env values survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "k":
			config.KafkaBrokers = splitList(*brokers)
		case "w":
			config.OTPResendCooldown = time.Duration(*cooldown) * time.Second
		case "t":
			config.OTPTTL = time.Duration(*ttl) * time.Second
		}
	})
}
