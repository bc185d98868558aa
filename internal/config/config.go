package config

import (
	"os"
	"strconv"
	"time"

	"taskboard/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string

	// Completion API
	OpenAIAPIKey string
	OpenAIModel  string

	// Redis rate limiter (optional, limiter is fail-open without it)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Rate limits
	APIRateLimit   int
	APIRateWindow  time.Duration
	AuthRateLimit  int
	AuthRateWindow time.Duration
	ChatRateLimit  int
	ChatRateWindow time.Duration

	// Assistant
	ConversationTTL time.Duration

	LogLevel    string
	LogJSON     bool
	DebugErrors bool
}

// Load reads configuration from the environment (.env supported in dev).
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		logger.Warn("OPENAI_API_KEY is not set, chat endpoint will fail until configured")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	ttl := time.Hour
	if v := os.Getenv("CONVERSATION_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Minute
		}
	}

	return &Config{
		AppPort:      port,
		DatabaseURL:  dbURL,
		JWTSecret:    jwtSecret,
		OpenAIAPIKey: apiKey,
		OpenAIModel:  model,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		APIRateLimit:   envInt("API_RATE_LIMIT", 60),
		APIRateWindow:  envSeconds("API_RATE_WINDOW_SECONDS", time.Minute),
		AuthRateLimit:  envInt("AUTH_RATE_LIMIT", 5),
		AuthRateWindow: envSeconds("AUTH_RATE_WINDOW_SECONDS", time.Minute),
		ChatRateLimit:  envInt("CHAT_RATE_LIMIT", 20),
		ChatRateWindow: envSeconds("CHAT_RATE_WINDOW_SECONDS", time.Minute),

		ConversationTTL: ttl,

		LogLevel:    os.Getenv("LOG_LEVEL"),
		LogJSON:     os.Getenv("LOG_JSON") == "true",
		DebugErrors: os.Getenv("DEBUG_ERRORS") == "true",
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return def
}
