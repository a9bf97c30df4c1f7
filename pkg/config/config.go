package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	LLM      LLMConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

const (
	ProviderOpenAI   = "openai"
	ProviderGigaChat = "gigachat"
)

// LLMConfig describes the generative backend. An empty APIKey is valid:
// generation then degrades to the deterministic results.
type LLMConfig struct {
	Provider           string
	APIKey             string
	BaseURL            string
	Model              string
	Scope              string // GigaChat only
	InsecureSkipVerify bool   // GigaChat only
	Timeout            time.Duration
	MaxTokens          int
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work for Docker/K8s
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout := getEnvInt("SERVER_READ_TIMEOUT", 30)
	writeTimeout := getEnvInt("SERVER_WRITE_TIMEOUT", 30)
	jwtExp := getEnvInt("JWT_EXPIRATION_HOURS", 24)
	refreshExp := getEnvInt("JWT_REFRESH_EXPIRATION_HOURS", 168)
	llmTimeout := getEnvInt("LLM_TIMEOUT_SECONDS", 30)
	provider := getEnv("LLM_PROVIDER", ProviderOpenAI)
	defaultModel := "gpt-4o-mini"
	if provider == ProviderGigaChat {
		defaultModel = "GigaChat"
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "ecotrack"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		LLM: LLMConfig{
			Provider:           provider,
			APIKey:             getEnv("LLM_API_KEY", ""),
			BaseURL:            getEnv("LLM_BASE_URL", ""),
			Model:              getEnv("LLM_MODEL", defaultModel),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "false") == "true",
			Timeout:            time.Duration(llmTimeout) * time.Second,
			MaxTokens:          getEnvInt("LLM_MAX_TOKENS", 1200),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}
