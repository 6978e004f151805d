package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Store backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config stores service settings.
type Config struct {
	Port      int
	LogLevel  string
	Store     string
	DB        DB
	Tariff    Tariff
	Booking   Booking
	Payment   Payment
	Notify    Notify
	Kafka     Kafka
	RateLimit RateLimit
	Pprof     Pprof
}

// DB stores Postgres connection settings.
type DB struct {
	Host    string
	Port    string
	User    string
	Pass    string
	Name    string
	Migrate bool
}

// DSN returns a postgres:// connection URL understood by pgx and lib/pq.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Tariff stores base rates per shipment type, in currency units per weight unit.
type Tariff struct {
	DomesticRate      int64
	InternationalRate int64
}

// Booking stores orchestrator settings.
type Booking struct {
	// DefaultPhone is used when a booking arrives without a phone number.
	DefaultPhone string
	// RequirePhone rejects bookings without a phone instead of using DefaultPhone.
	RequirePhone     bool
	OperationTimeout time.Duration
}

// Payment stores payment gateway settings.
type Payment struct {
	Timeout     time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Notify stores notification settings.
type Notify struct {
	ExportEmail string
	Timeout     time.Duration
}

// Kafka stores broker settings; empty Brokers disables Kafka.
type Kafka struct {
	Brokers            []string
	GroupID            string
	CallbacksTopic     string
	NotificationsTopic string
}

// Enabled reports whether brokers are configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// RateLimit stores per-IP rate limit settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores debug listener settings; empty Addr disables it.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	cfg, err := LoadEnv()
	if err != nil {
		return nil, err
	}

	fs := pflag.CommandLine
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Store, "store", cfg.Store, "storage backend: postgres or memory")
	fs.StringSliceVar(&cfg.Kafka.Brokers, "kafka-brokers", cfg.Kafka.Brokers, "kafka brokers")
	fs.StringVar(&cfg.Pprof.Addr, "pprof-addr", cfg.Pprof.Addr, "pprof listen address")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv reads .env and the environment without touching command-line flags.
func LoadEnv() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      defaultPort,
		LogLevel:  "info",
		Store:     defaultStore,
		DB:        defaultDB,
		Tariff:    defaultTariff,
		Booking:   defaultBooking,
		Payment:   defaultPayment,
		Notify:    defaultNotify,
		Kafka:     defaultKafka,
		RateLimit: defaultRateLimit,
	}

	var p envParser
	cfg.Port = p.int("PORT", cfg.Port)
	cfg.LogLevel = p.string("LOG_LEVEL", cfg.LogLevel)
	cfg.Store = p.string("STORE", cfg.Store)

	cfg.DB.Host = p.string("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = p.port("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = p.string("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = p.string("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = p.string("POSTGRES_DB", cfg.DB.Name)
	cfg.DB.Migrate = p.bool("DB_MIGRATE", cfg.DB.Migrate)

	cfg.Tariff.DomesticRate = p.int64("TARIFF_DOMESTIC_RATE", cfg.Tariff.DomesticRate)
	cfg.Tariff.InternationalRate = p.int64("TARIFF_INTERNATIONAL_RATE", cfg.Tariff.InternationalRate)

	cfg.Booking.DefaultPhone = p.string("BOOKING_DEFAULT_PHONE", cfg.Booking.DefaultPhone)
	cfg.Booking.RequirePhone = p.bool("BOOKING_REQUIRE_PHONE", cfg.Booking.RequirePhone)
	cfg.Booking.OperationTimeout = p.duration("BOOKING_OPERATION_TIMEOUT", cfg.Booking.OperationTimeout)

	cfg.Payment.Timeout = p.duration("PAYMENT_TIMEOUT", cfg.Payment.Timeout)
	cfg.Payment.MaxAttempts = p.int("PAYMENT_MAX_ATTEMPTS", cfg.Payment.MaxAttempts)
	cfg.Payment.BaseDelay = p.duration("PAYMENT_BASE_DELAY", cfg.Payment.BaseDelay)
	cfg.Payment.MaxDelay = p.duration("PAYMENT_MAX_DELAY", cfg.Payment.MaxDelay)

	cfg.Notify.ExportEmail = p.string("NOTIFY_EXPORT_EMAIL", cfg.Notify.ExportEmail)
	cfg.Notify.Timeout = p.duration("NOTIFY_TIMEOUT", cfg.Notify.Timeout)

	cfg.Kafka.Brokers = p.list("KAFKA_BROKERS", cfg.Kafka.Brokers)
	cfg.Kafka.GroupID = p.string("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.CallbacksTopic = p.string("KAFKA_CALLBACKS_TOPIC", cfg.Kafka.CallbacksTopic)
	cfg.Kafka.NotificationsTopic = p.string("KAFKA_NOTIFICATIONS_TOPIC", cfg.Kafka.NotificationsTopic)

	cfg.RateLimit.Enabled = p.bool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.Rate = p.float("RATE_LIMIT_RPS", cfg.RateLimit.Rate)
	cfg.RateLimit.Burst = p.int("RATE_LIMIT_BURST", cfg.RateLimit.Burst)
	cfg.RateLimit.TTL = p.duration("RATE_LIMIT_TTL", cfg.RateLimit.TTL)
	cfg.RateLimit.MaxBuckets = p.int("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets)

	cfg.Pprof.Addr = p.string("PPROF_ADDR", cfg.Pprof.Addr)
	cfg.Pprof.User = p.string("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = p.string("PPROF_PASS", cfg.Pprof.Pass)

	if p.err != nil {
		return nil, p.err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Store != StorePostgres && c.Store != StoreMemory {
		return fmt.Errorf("invalid store: %q", c.Store)
	}
	if c.Tariff.DomesticRate <= 0 || c.Tariff.InternationalRate <= 0 {
		return fmt.Errorf("invalid tariff rates: %d/%d", c.Tariff.DomesticRate, c.Tariff.InternationalRate)
	}
	if c.Payment.MaxAttempts <= 0 {
		return fmt.Errorf("invalid payment max attempts: %d", c.Payment.MaxAttempts)
	}
	return nil
}

// envParser collects the first parse error; unset or empty variables keep the default.
type envParser struct {
	err error
}

func (p *envParser) lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != "" && p.err == nil
}

func (p *envParser) fail(key, v string, err error) {
	p.err = fmt.Errorf("invalid %s=%q: %w", key, v, err)
}

func (p *envParser) string(key, def string) string {
	if v, ok := p.lookup(key); ok {
		return v
	}
	return def
}

func (p *envParser) int(key string, def int) int {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return n
}

func (p *envParser) int64(key string, def int64) int64 {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return n
}

func (p *envParser) float(key string, def float64) float64 {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return f
}

func (p *envParser) bool(key string, def bool) bool {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return b
}

func (p *envParser) duration(key string, def time.Duration) time.Duration {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return d
}

func (p *envParser) port(key, def string) string {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	if n, err := strconv.Atoi(v); err != nil || n <= 0 || n > 65535 {
		p.fail(key, v, fmt.Errorf("not a port"))
		return def
	}
	return v
}

func (p *envParser) list(key string, def []string) []string {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
