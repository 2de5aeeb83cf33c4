package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
	"strconv"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT key shared with the auth service
	JWTSecret string `yaml:"JWT_SECRET"`

	// HTTP server
	AppPort string `yaml:"APP_PORT"`

	// Planner tuning
	SuggestionTopN  int `yaml:"SUGGESTION_TOP_N"`
	ExpiryAlertDays int `yaml:"EXPIRY_ALERT_DAYS"`
	LockTTLSeconds  int `yaml:"LOCK_TTL_SECONDS"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Keys that should also be accessible via os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "APP_PORT":
		return config.AppPort
	case "SUGGESTION_TOP_N":
		return strconv.Itoa(config.SuggestionTopN)
	case "EXPIRY_ALERT_DAYS":
		return strconv.Itoa(config.ExpiryAlertDays)
	case "LOCK_TTL_SECONDS":
		return strconv.Itoa(config.LockTTLSeconds)
	default:
		return ""
	}
}

// GetConfigInt returns the configured value or def when unset or invalid.
func GetConfigInt(key string, def int) int {
	v, err := strconv.Atoi(GetConfig(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
