// Package config reads process settings from the environment.
// A .env file, if present, is loaded by main via godotenv before Load runs.
package config

import (
	"os"
	"strconv"
)

// Config holds every setting the server and CLI read at startup.
type Config struct {
	Port           string // PORT
	LogLevel       string // LOG_LEVEL: trace|debug|info|warn|error
	LogPretty      bool   // LOG_PRETTY: console writer instead of JSON
	DBPath         string // DB_PATH
	WordsFile      string // WORDS_FILE: base word list, embedded if empty
	DictionaryFile string // DICTIONARY_FILE: spell-check list, embedded if empty
	DailySalt      string // DAILY_SALT
	JWTSecret      string // JWT_SECRET
	JWTExpiresDays int    // JWT_EXPIRES_DAYS
	CookieName     string // COOKIE_NAME
	ClientOrigin   string // CLIENT_ORIGIN
	Production     bool   // APP_ENV=production
}

// Load returns the configuration with defaults applied.
func Load() Config {
	return Config{
		Port:           getEnv("PORT", "5175"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPretty:      getEnvBool("LOG_PRETTY", false),
		DBPath:         getEnv("DB_PATH", "./data/scramble.db"),
		WordsFile:      os.Getenv("WORDS_FILE"),
		DictionaryFile: os.Getenv("DICTIONARY_FILE"),
		DailySalt:      getEnv("DAILY_SALT", "local_dev_salt"),
		JWTSecret:      getEnv("JWT_SECRET", "dev_secret_change_me"),
		JWTExpiresDays: getEnvInt("JWT_EXPIRES_DAYS", 14),
		CookieName:     getEnv("COOKIE_NAME", "scramble_token"),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:     os.Getenv("APP_ENV") == "production",
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
