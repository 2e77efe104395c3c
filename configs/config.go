package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	SERVER_PORT                   string
	WORKER_POOL                   string
	SERVICE_NAME                  string
	OTEL_URL                      string
	LOG_LEVEL                     string
	DB_URI                        string
	DB_NAME                       string
	DB_MAXPOOLSIZE                uint64
	DB_MINPOOLSIZE                uint64
	DB_MAXIDLETIME_INMINUTES      int
	REDIS_ADDR                    string
	REDIS_PASSWORD                string
	REDIS_DB                      int
	REDIS_ENABLE_TLS              bool
	REDIS_CONNECT_TIMEOUT_SECONDS int
	REDIS_CERT_CONTENT            string
	KAFKA_SERVER                  string
	KAFKA_SECURITY_PROTOCOL       string
	KAFKA_SASL_MECHANISM          string
	KAFKA_SASL_USERNAME           string
	KAFKA_SASL_PASSWORD           string
	KAFKA_SESSION_TIMEOUT_MS      int
	KAFKA_CLIENT_ID               string
	KAFKA_TOPIC                   string
	PROJECT_ID                    string
	PUBSUB_TOPIC                  string
	PUBSUB_ENABLED                bool
	TIMEOUT_IN_SECONDS            int

	MIN_LOAN_AMOUNT        float64
	MAX_LOAN_AMOUNT        float64
	MIN_TENURE_MONTHS      int
	MAX_TENURE_MONTHS      int
	EXCELLENT_CREDIT_SCORE int
	GOOD_CREDIT_SCORE      int
	FOIR_THRESHOLD_A       float64
	FOIR_THRESHOLD_B       float64
	DEFAULT_INTEREST_RATE  float64
	MAX_CHAT_HISTORY       int
	SESSION_TTL_HOURS      int
	SANCTION_VALIDITY_DAYS int
)

type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	EnableTLS      bool          `yaml:"enable_tls"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
	CertContent    string        `yaml:"cert_content"`
}

// PubSubConfig represents the Pub/Sub configuration
type PubSubConfig struct {
	ProjectID string `yaml:"project_id"`
	Topic     string `yaml:"topic"`
	Enabled   bool   `yaml:"enabled"`
}

// LoadEnv loads the environment variables from a .env file
func LoadEnv() error {
	err := godotenv.Load("./../.env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	LoadEnvValues()

	return nil
}

func LoadEnvValues() {
	SERVER_PORT = GetEnv("SERVER_PORT", "8080")
	WORKER_POOL = GetEnv("WORKER_POOL", "5")
	SERVICE_NAME = GetEnv("SERVICE_NAME", "finagent")
	OTEL_URL = GetEnv("OTEL_URL", "")
	LOG_LEVEL = GetEnv("LOG_LEVEL", "INFO")
	DB_URI = GetEnv("DB_URI", "mongodb://localhost:27017")
	DB_NAME = GetEnv("DB_NAME", "FinAgent")
	DB_MAXPOOLSIZE_Str := GetEnv("DB_MAXPOOLSIZE", "100")
	DB_MINPOOLSIZE_Str := GetEnv("DB_MINPOOLSIZE", "10")
	DB_MAXIDLETIME_INMINUTES_Str := GetEnv("DB_MAXIDLETIME_INMINUTES", "5")
	DB_MAXPOOLSIZE, _ = strconv.ParseUint(DB_MAXPOOLSIZE_Str, 10, 64)
	DB_MINPOOLSIZE, _ = strconv.ParseUint(DB_MINPOOLSIZE_Str, 10, 64)
	DB_MAXIDLETIME_INMINUTES, _ = strconv.Atoi(DB_MAXIDLETIME_INMINUTES_Str)
	REDIS_ADDR = GetEnv("REDIS_ADDR", "localhost:6379")
	REDIS_PASSWORD = GetEnv("REDIS_PASSWORD", "")
	REDIS_DB_Str := GetEnv("REDIS_DB", "0")
	REDIS_DB, _ = strconv.Atoi(REDIS_DB_Str)
	REDIS_ENABLE_TLS, _ = strconv.ParseBool(GetEnv("REDIS_ENABLE_TLS", "false"))
	REDIS_CONNECT_TIMEOUT_SECONDS_Str := GetEnv("REDIS_CONNECT_TIMEOUT_SECONDS", "5")
	REDIS_CONNECT_TIMEOUT_SECONDS, _ = strconv.Atoi(REDIS_CONNECT_TIMEOUT_SECONDS_Str)
	REDIS_CERT_CONTENT = GetEnv("REDIS_CERT_CONTENT", "")
	KAFKA_SERVER = GetEnv("KAFKA_SERVER", "")
	KAFKA_SECURITY_PROTOCOL = GetEnv("KAFKA_SECURITY_PROTOCOL", "")
	KAFKA_SASL_MECHANISM = GetEnv("KAFKA_SASL_MECHANISM", "")
	KAFKA_SASL_USERNAME = GetEnv("KAFKA_SASL_USERNAME", "")
	KAFKA_SASL_PASSWORD = GetEnv("KAFKA_SASL_PASSWORD", "")
	KAFKA_SESSION_TIMEOUT_MS, _ = strconv.Atoi(GetEnv("KAFKA_SESSION_TIMEOUT_MS", ""))
	KAFKA_CLIENT_ID = GetEnv("KAFKA_CLIENT_ID", "")
	KAFKA_TOPIC = GetEnv("KAFKA_TOPIC", "finagent-underwriting-decisions")
	PROJECT_ID = GetEnv("PROJECT_ID", "")
	PUBSUB_TOPIC = GetEnv("PUBSUB_TOPIC", "finagent-sanction-notification-topic")
	PUBSUB_ENABLED, _ = strconv.ParseBool(GetEnv("PUBSUB_ENABLED", "false"))
	TIMEOUT_IN_SECONDS_str := GetEnv("TIMEOUT_IN_SECONDS", "20")
	TIMEOUT_IN_SECONDS, _ = strconv.Atoi(TIMEOUT_IN_SECONDS_str)

	MIN_LOAN_AMOUNT, _ = strconv.ParseFloat(GetEnv("MIN_LOAN_AMOUNT", "50000"), 64)
	MAX_LOAN_AMOUNT, _ = strconv.ParseFloat(GetEnv("MAX_LOAN_AMOUNT", "5000000"), 64)
	MIN_TENURE_MONTHS, _ = strconv.Atoi(GetEnv("MIN_TENURE_MONTHS", "6"))
	MAX_TENURE_MONTHS, _ = strconv.Atoi(GetEnv("MAX_TENURE_MONTHS", "60"))
	EXCELLENT_CREDIT_SCORE, _ = strconv.Atoi(GetEnv("EXCELLENT_CREDIT_SCORE", "720"))
	GOOD_CREDIT_SCORE, _ = strconv.Atoi(GetEnv("GOOD_CREDIT_SCORE", "680"))
	FOIR_THRESHOLD_A, _ = strconv.ParseFloat(GetEnv("FOIR_THRESHOLD_A", "0.4"), 64)
	FOIR_THRESHOLD_B, _ = strconv.ParseFloat(GetEnv("FOIR_THRESHOLD_B", "0.5"), 64)
	DEFAULT_INTEREST_RATE, _ = strconv.ParseFloat(GetEnv("DEFAULT_INTEREST_RATE", "12.0"), 64)
	MAX_CHAT_HISTORY, _ = strconv.Atoi(GetEnv("MAX_CHAT_HISTORY", "20"))
	SESSION_TTL_HOURS, _ = strconv.Atoi(GetEnv("SESSION_TTL_HOURS", "24"))
	SANCTION_VALIDITY_DAYS, _ = strconv.Atoi(GetEnv("SANCTION_VALIDITY_DAYS", "7"))
}

// GetRedisConfig returns a RedisConfig struct populated from environment variables
func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:           REDIS_ADDR,
		Password:       REDIS_PASSWORD,
		DB:             REDIS_DB,
		EnableTLS:      REDIS_ENABLE_TLS,
		ConnectTimeout: time.Duration(REDIS_CONNECT_TIMEOUT_SECONDS) * time.Second,
		CertContent:    REDIS_CERT_CONTENT,
	}
}

// GetPubSubConfig returns a PubSubConfig struct populated from environment variables
func GetPubSubConfig() PubSubConfig {
	return PubSubConfig{
		ProjectID: PROJECT_ID,
		Topic:     PUBSUB_TOPIC,
		Enabled:   PUBSUB_ENABLED,
	}
}

// GetEnv fetches the value of an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}
