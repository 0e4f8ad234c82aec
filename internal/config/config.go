package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
)

// Config is the process configuration, read once from the environment at
// startup. A .env file is loaded into the environment by cmd/api.
type Config struct {
	Port    string
	Storage string

	DynamoDB  DynamoDB
	SMTP      SMTP
	Company   Company
	Knowledge Knowledge

	// SessionIdleTimeout is how long an untouched session lives before the
	// janitor discards it.
	SessionIdleTimeout time.Duration

	SalesEmail   string
	SupportEmail string
}

type DynamoDB struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the service URL, e.g. http://dynamodb:8000 for local runs.
	Endpoint        string
	OrdersTable     string
	ComplaintsTable string
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
	// Mock logs messages instead of sending them.
	Mock bool
}

type Company struct {
	Name        string
	Address     string
	Phone       string
	Email       string
	OfficeHours string
}

// Knowledge points at markdown files replacing the built-in company FAQ and
// leadership sheet. Empty paths keep the built-in text.
type Knowledge struct {
	AboutFile      string
	LeadershipFile string
}

func Load() Config {
	user := os.Getenv("EMAIL_USER")
	companyEmail := getenvDefault("COMPANY_EMAIL", "support@mayfairtech.ai")

	cfg := Config{
		Port:    getenvDefault("PORT", "8080"),
		Storage: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageMemory)),
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			OrdersTable:     getenvDefault("ORDERS_TABLE", "orders"),
			ComplaintsTable: getenvDefault("COMPLAINTS_TABLE", "complaints"),
		},
		SMTP: SMTP{
			Host:     getenvDefault("SMTP_HOST", "smtp.gmail.com"),
			Port:     getenvInt("SMTP_PORT", 465),
			Username: user,
			Password: os.Getenv("EMAIL_APP_PASSWORD"),
			Timeout:  getenvDuration("NOTIFY_TIMEOUT", 10*time.Second),
			Mock:     getenvBool("NOTIFY_MOCK"),
		},
		Company: Company{
			Name:        getenvDefault("COMPANY_NAME", "MayfairTech"),
			Address:     getenvDefault("COMPANY_ADDRESS", "123 Innovation Avenue, Karachi, Pakistan"),
			Phone:       getenvDefault("COMPANY_PHONE", "+92 21 3567 8910"),
			Email:       companyEmail,
			OfficeHours: getenvDefault("COMPANY_OFFICE_HOURS", "Mon-Fri: 9:00 AM - 6:00 PM, Sat: 10:00 AM - 2:00 PM, Sun: Closed"),
		},
		Knowledge: Knowledge{
			AboutFile:      os.Getenv("COMPANY_INFO_FILE"),
			LeadershipFile: os.Getenv("LEADERSHIP_FILE"),
		},
		SessionIdleTimeout: getenvDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		// Internal copies go to the sending mailbox unless routed elsewhere.
		SalesEmail:   getenvDefault("SALES_EMAIL", user),
		SupportEmail: getenvDefault("SUPPORT_EMAIL", user),
	}

	if cfg.Storage != StorageMemory && cfg.Storage != StorageDynamoDB {
		log.Printf("[config] unknown STORAGE_DRIVER=%q, using %s", cfg.Storage, StorageMemory)
		cfg.Storage = StorageMemory
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// getenvDuration accepts Go durations ("15s") or a bare number of seconds.
func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	log.Printf("[config] invalid %s=%q, using %s", key, v, def)
	return def
}
