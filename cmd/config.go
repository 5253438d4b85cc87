package cmd

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/jobs"
	"ordering/internal/pkg/errs"
)

const defaultPaymentTimeout = 15 * time.Minute

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	PaymentTimeout         time.Duration
	PaymentTimeoutSchedule string
}

// LoadConfig reads the configuration through getenv, usually os.Getenv after the
// .env file has been loaded.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:               getenv("HTTP_PORT"),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 getenv("DB_PORT"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              getenv("DB_SSLMODE"),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		PaymentTimeout:         defaultPaymentTimeout,
		PaymentTimeoutSchedule: getenv("PAYMENT_TIMEOUT_SCHEDULE"),
	}

	if raw := getenv("PAYMENT_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("PAYMENT_TIMEOUT", err)
		}
		if timeout <= 0 {
			return Config{}, errs.NewValueIsOutOfRangeError("PAYMENT_TIMEOUT", timeout, "1ns", "unbounded")
		}
		config.PaymentTimeout = timeout
	}

	if config.PaymentTimeoutSchedule == "" {
		config.PaymentTimeoutSchedule = jobs.DefaultPaymentTimeoutSchedule
	}
	if config.DBSslMode == "" {
		config.DBSslMode = "disable"
	}

	var missing []error
	for name, value := range map[string]string{
		"HTTP_PORT": config.HTTPPort,
		"DB_HOST":   config.DBHost,
		"DB_PORT":   config.DBPort,
		"DB_USER":   config.DBUser,
		"DB_NAME":   config.DBName,
	} {
		if value == "" {
			missing = append(missing, errs.NewValueIsRequiredError(name))
		}
	}
	if err := errors.Join(missing...); err != nil {
		return Config{}, err
	}

	return config, nil
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaEnabled reports whether order changes are published.
func (c Config) KafkaEnabled() bool {
	return c.KafkaHost != "" && c.KafkaOrderChangedTopic != ""
}
