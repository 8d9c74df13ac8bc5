package config

import "os"

type Config struct {
	DatabaseURL string
	Port        string
	UserName    string
	Environment string
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "secondbrain.db"),
		Port:        getEnv("PORT", "8000"),
		UserName:    getEnv("USER_NAME", "there"),
		Environment: getEnv("ENVIRONMENT", "production"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
