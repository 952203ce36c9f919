package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Env            string
	DatabaseURL    string
	JWTSecret      string
	AdminMasterKey string
	JWTExpiry      time.Duration
	Port           string
}

// Load 加载配置
func Load() *Config {
	expiryHours, _ := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "72"))

	// 优先使用完整的 DATABASE_URL（托管平台会直接注入）
	dbURL := getEnv("DATABASE_URL", getEnv("POSTGRES_URL", ""))
	if dbURL == "" {
		dbUser := getEnv("DB_USER", "postgres")
		dbPass := getEnv("DB_PASSWORD", "postgres")
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbName := getEnv("DB_NAME", "mymediatrek")

		// 本机开发不强制 TLS，其他主机一律 require
		dbSSL := getEnv("DB_SSLMODE", "")
		if dbSSL == "" {
			dbSSL = "require"
			if dbHost == getEnv("DB_LOCAL_HOST", "localhost") {
				dbSSL = "prefer"
			}
		}

		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)
	}

	jwtSecret := getEnv("JWT_SECRET_KEY", "default-secret-key-please-change")
	adminKey := getEnv("ADMIN_MASTER_KEY", "default-admin-key-please-change")

	if getEnv("APP_ENV", "development") == "production" {
		if jwtSecret == "default-secret-key-please-change" {
			fmt.Println("【严重警告】生产环境正在使用默认 JWT 密钥！请立即设置 JWT_SECRET_KEY 环境变量。")
		}
		if adminKey == "default-admin-key-please-change" {
			fmt.Println("【严重警告】生产环境正在使用默认管理员密钥！请立即设置 ADMIN_MASTER_KEY 环境变量。")
		}
	}

	return &Config{
		Env:            getEnv("APP_ENV", "development"),
		DatabaseURL:    dbURL,
		JWTSecret:      jwtSecret,
		AdminMasterKey: adminKey,
		JWTExpiry:      time.Duration(expiryHours) * time.Hour,
		Port:           getEnv("PORT", "5000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
