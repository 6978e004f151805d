package config

import "time"

const defaultPort = 8080

const defaultStore = StorePostgres

var defaultDB = DB{
	Host:    "127.0.0.1",
	Port:    "5432",
	User:    "myuser",
	Pass:    "mypassword",
	Name:    "freight",
	Migrate: true,
}

var defaultTariff = Tariff{
	DomesticRate:      1000,
	InternationalRate: 3000,
}

var defaultBooking = Booking{
	DefaultPhone:     "0780000000",
	OperationTimeout: 3 * time.Second,
}

var defaultPayment = Payment{
	Timeout:     5 * time.Second,
	MaxAttempts: 3,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    time.Second,
}

var defaultNotify = Notify{
	ExportEmail: "exporter@example.com",
	Timeout:     2 * time.Second,
}

var defaultKafka = Kafka{
	GroupID:            "freight-booking-worker",
	CallbacksTopic:     "payment-callbacks",
	NotificationsTopic: "notifications",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       20,
	Burst:      40,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultTariff returns the default base rates.
func DefaultTariff() Tariff {
	return defaultTariff
}

// DefaultBooking returns the default booking settings.
func DefaultBooking() Booking {
	return defaultBooking
}

// DefaultPayment returns the default payment gateway settings.
func DefaultPayment() Payment {
	return defaultPayment
}

// DefaultNotify returns the default notification settings.
func DefaultNotify() Notify {
	return defaultNotify
}

// DefaultKafka returns the default Kafka settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
