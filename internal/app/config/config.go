package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int

	JWTSecret string

	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	AdminEmail   string

	ModelPath string

	MinIOHost      string
	MinIOPort      string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
}

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// Secrets and deploy-specific settings come from the environment.
	cfg.JWTSecret = envOr("JWT_SECRET", cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
		log.Warn("JWT_SECRET not set, using development default")
	}

	cfg.RedisHost = envOr("REDIS_HOST", defaultStr(cfg.RedisHost, "127.0.0.1"))
	cfg.RedisPort = envIntOr("REDIS_PORT", defaultInt(cfg.RedisPort, 6379))
	cfg.RedisPassword = envOr("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = envIntOr("REDIS_DB", cfg.RedisDB)

	cfg.SMTPHost = envOr("SMTP_HOST", defaultStr(cfg.SMTPHost, "smtp.gmail.com"))
	cfg.SMTPPort = envIntOr("SMTP_PORT", defaultInt(cfg.SMTPPort, 587))
	cfg.SMTPUsername = envOr("SMTP_USERNAME", cfg.SMTPUsername)
	cfg.SMTPPassword = envOr("SMTP_PASSWORD", cfg.SMTPPassword)
	cfg.FromEmail = envOr("FROM_EMAIL", defaultStr(cfg.FromEmail, "noreply@healthpredict.com"))
	cfg.AdminEmail = envOr("ADMIN_EMAIL", cfg.AdminEmail)

	cfg.ModelPath = envOr("MODEL_PATH", defaultStr(cfg.ModelPath, "ml_models/disease_model.json"))

	cfg.MinIOHost = envOr("MINIO_HOST", defaultStr(cfg.MinIOHost, "127.0.0.1"))
	cfg.MinIOPort = envOr("MINIO_PORT", defaultStr(cfg.MinIOPort, "9000"))
	cfg.MinIOAccessKey = envOr("MINIO_ACCESS_KEY", defaultStr(cfg.MinIOAccessKey, "minioadmin"))
	cfg.MinIOSecretKey = envOr("MINIO_SECRET_KEY", defaultStr(cfg.MinIOSecretKey, "minioadmin"))
	cfg.MinIOBucket = envOr("MINIO_BUCKET", defaultStr(cfg.MinIOBucket, "reports"))

	log.Info("config parsed")

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func defaultStr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func defaultInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
