package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string `yaml:"port"`
	Database    string `yaml:"database"`
	DataDir     string `yaml:"data_dir"`
	RedisURL    string `yaml:"redis_url"`
	BaseURL     string `yaml:"base_url"`
	SiteName    string `yaml:"site_name"`
	JWTSecret   string `yaml:"jwt_secret"`
	AdminAPIKey string `yaml:"admin_api_key"`
	SendGridKey string `yaml:"sendgrid_key"`
	EmailFrom   string `yaml:"email_from"`
}

// LoadConfig junta tres fuentes, de menor a mayor prioridad:
// defaults, config.yaml (si existe) y variables de entorno. Las
// credenciales del backend NO van acá: viven en el kvstore y las
// administra el panel de ajustes en runtime.
func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	cfg := &Config{
		Port:      "8080",
		Database:  "storefront",
		DataDir:   "./data",
		BaseURL:   "http://localhost:8080",
		SiteName:  "Storefront",
		JWTSecret: "dev-secret-change-me",
	}

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Println("⚠️ Error parsing config.yaml:", err)
		} else {
			log.Println("✅ config.yaml loaded successfully")
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Database = getEnv("BACKEND_DATABASE", cfg.Database)
	cfg.DataDir = getEnv("DATA_DIR", cfg.DataDir)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.BaseURL = getEnv("BASE_URL", cfg.BaseURL)
	cfg.SiteName = getEnv("SITE_NAME", cfg.SiteName)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.AdminAPIKey = getEnv("ADMIN_API_KEY", cfg.AdminAPIKey)
	cfg.SendGridKey = getEnv("SENDGRID_API_KEY", cfg.SendGridKey)
	cfg.EmailFrom = getEnv("EMAIL_FROM", cfg.EmailFrom)

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
