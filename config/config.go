package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config gom các biến môi trường của ứng dụng
type Config struct {
	Port           string
	Env            string
	Store          string
	RedisAddr      string
	RedisUser      string
	RedisPassword  string
	JWTSecret      string
	TokenTTL       time.Duration
	SessionTTL     time.Duration
	AuthDelay      time.Duration
	AMQPURL        string
	CloudinaryURL  string
	GoogleClientID string
	LogLevel       string
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}

// Load đọc .env (nếu có) rồi dựng Config từ môi trường
func Load() Config {
	LoadEnv()
	return FromEnv()
}

// FromEnv dựng Config từ biến môi trường hiện tại
func FromEnv() Config {
	tokenTTL := time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 60*24*3)) * time.Minute
	return Config{
		Port:           getEnvDefault("PORT", "8083"),
		Env:            getEnvDefault("ENV", "dev"),
		Store:          getEnvDefault("STORE", "memory"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisUser:      os.Getenv("REDIS_USER"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnvDefault("JWT_SECRET", "stayrooted-dev-secret"),
		TokenTTL:       tokenTTL,
		SessionTTL:     tokenTTL,
		AuthDelay:      time.Duration(getEnvInt("AUTH_DELAY_MS", 0)) * time.Millisecond,
		AMQPURL:        os.Getenv("AMQP_URL"),
		CloudinaryURL:  os.Getenv("CLOUDINARY_URL"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		LogLevel:       getEnvDefault("LOG_LEVEL", "info"),
	}
}
