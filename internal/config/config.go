package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	S3      S3Config
	CORS    CORSConfig
	Parser  ParserConfig
	RAG     RAGConfig
	Crypto  CryptoConfig
	Email   EmailConfig
	Upload  UploadConfig
	Session SessionConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds token validation settings for registry routes.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// S3Config holds object storage settings for export artifacts.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ParserConfig selects the resume parsing mode and its LLM fallback.
type ParserConfig struct {
	// Mode is "heuristic", "gemini", or "chain" (heuristic after LLM).
	Mode        string `mapstructure:"mode"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// RAGConfig holds chunking and retrieval settings.
type RAGConfig struct {
	ChunkSize       int    `mapstructure:"chunk_size"`
	ChunkOverlap    int    `mapstructure:"chunk_overlap"`
	TopK            int    `mapstructure:"top_k"`
	MemoryMessages  int    `mapstructure:"memory_messages"`
	DefaultProvider string `mapstructure:"default_provider"`
	DefaultAPIKey   string `mapstructure:"default_api_key"`
	EmbedDimension  int    `mapstructure:"embed_dimension"`
}

// CryptoConfig holds the credential cipher key (base64, 32 bytes decoded).
type CryptoConfig struct {
	Key string `mapstructure:"key"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// UploadConfig limits resume uploads.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// SessionConfig selects the pipeline session store backend.
type SessionConfig struct {
	// Store is "memory" or "postgres".
	Store string `mapstructure:"store"`
}

// Load reads configuration from environment variables with the PITCHBOT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PITCHBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "pitchbot")
	v.SetDefault("db.password", "pitchbot_secret")
	v.SetDefault("db.name", "pitchbot_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "pitchbot")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "pitchbot-exports")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Parser defaults
	v.SetDefault("parser.mode", "heuristic")
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.model", "gemini-2.0-flash-lite")
	v.SetDefault("parser.timeout_secs", 60)

	// RAG defaults
	v.SetDefault("rag.chunk_size", 1000)
	v.SetDefault("rag.chunk_overlap", 200)
	v.SetDefault("rag.top_k", 3)
	v.SetDefault("rag.memory_messages", 6)
	v.SetDefault("rag.default_provider", "google")
	v.SetDefault("rag.default_api_key", "")
	v.SetDefault("rag.embed_dimension", 768)

	// Crypto defaults (dev key; override in production)
	v.SetDefault("crypto.key", "")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@pitchbot.dev")
	v.SetDefault("email.from_name", "Pitchbot")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// Session defaults
	v.SetDefault("session.store", "postgres")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Viper reads list envs as comma-separated strings.
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.Contains(cfg.CORS.AllowedOrigins[0], ",") {
		cfg.CORS.AllowedOrigins = strings.Split(cfg.CORS.AllowedOrigins[0], ",")
	}

	return &cfg, nil
}
