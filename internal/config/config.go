package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	RabbitMQ RabbitMQConfig
	Quiz     QuizConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	PoolSize uint64
	Timeout  time.Duration
}

type RabbitMQConfig struct {
	URI      string
	Exchange string
}

// QuizConfig carries the admin-tunable quiz constants. They are passed
// into the core explicitly so the engine never reads ambient state.
type QuizConfig struct {
	PassPercent        int
	DefaultEasyPct     float64
	DefaultMediumPct   float64
	DefaultHardPct     float64
	ReviewMinEase      float64
	ReviewMaxEase      float64
	ReviewStartEase    float64
	ReviewMinIntervalD int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "6680"),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("EXAM_SERVICE_MONGO_DB", "exam_service"),
			PoolSize: getEnvAsUint64("MONGODB_POOL_SIZE", 100),
			Timeout:  getEnvAsDuration("MONGODB_TIMEOUT", 10*time.Second),
		},
		RabbitMQ: RabbitMQConfig{
			URI:      getEnv("RABBITMQ_URI", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", ""),
		},
		Quiz: QuizConfig{
			PassPercent:        getEnvAsInt("QUIZ_PASS_PERCENT", 50),
			DefaultEasyPct:     getEnvAsFloat("QUIZ_DEFAULT_EASY_PCT", 34),
			DefaultMediumPct:   getEnvAsFloat("QUIZ_DEFAULT_MEDIUM_PCT", 33),
			DefaultHardPct:     getEnvAsFloat("QUIZ_DEFAULT_HARD_PCT", 33),
			ReviewMinEase:      getEnvAsFloat("REVIEW_MIN_EASE", 1.3),
			ReviewMaxEase:      getEnvAsFloat("REVIEW_MAX_EASE", 2.8),
			ReviewStartEase:    getEnvAsFloat("REVIEW_START_EASE", 2.5),
			ReviewMinIntervalD: getEnvAsInt("REVIEW_MIN_INTERVAL_DAYS", 1),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("error retrieve int env var %s: %s", key, err)
			return defaultValue
		}
		return intVal
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value, exists := os.LookupEnv(key); exists {
		uintVal, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			log.Printf("error retrieve uint64 env var %s: %s", key, err)
			return defaultValue
		}
		return uintVal
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		floatVal, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Printf("error retrieve float env var %s: %s", key, err)
			return defaultValue
		}
		return floatVal
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		durVal, err := time.ParseDuration(value)
		if err != nil {
			log.Printf("error retrieve duration env var %s: %s", key, err)
			return defaultValue
		}
		return durVal
	}
	return defaultValue
}
