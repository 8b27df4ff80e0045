package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8080"
	defaultTimeZone        = "UTC"
	defaultLanguage        = "hi"
	defaultRefreshInterval = 60 * time.Second
)

type Config struct {
	Port            string
	DBPath          string
	TimeZone        string
	Location        *time.Location
	DefaultLanguage string
	MenuPath        string
	TemplatesDir    string
	CookieSecure    bool
	RefreshInterval time.Duration
}

// Load reads .env files (if present) into the environment and then resolves Config.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
		log.Printf("config: no .env file loaded")
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	port, err := ResolvePort()
	if err != nil {
		return nil, err
	}

	refreshInterval, err := resolveRefreshInterval()
	if err != nil {
		return nil, err
	}

	timeZone := getEnv("TZ", defaultTimeZone)
	return &Config{
		Port:            port,
		DBPath:          getEnv("DB_PATH", filepath.Join("data", "aajkakhana.db")),
		TimeZone:        timeZone,
		Location:        LoadLocation(timeZone),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", defaultLanguage),
		MenuPath:        strings.TrimSpace(os.Getenv("MENU_PATH")),
		TemplatesDir:    getEnv("TEMPLATES_DIR", filepath.Join("internal", "templates")),
		CookieSecure:    getEnvBool("COOKIE_SECURE", false),
		RefreshInterval: refreshInterval,
	}, nil
}

func ResolvePort() (string, error) {
	raw := getEnv("PORT", defaultPort)
	port, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("invalid PORT %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q: must be between 1 and 65535", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveRefreshInterval() (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv("REFRESH_INTERVAL"))
	if raw == "" {
		return defaultRefreshInterval, nil
	}
	interval, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid REFRESH_INTERVAL %q: %w", raw, err)
	}
	if interval < time.Second {
		return 0, fmt.Errorf("invalid REFRESH_INTERVAL %q: must be at least 1s", raw)
	}
	return interval, nil
}

// LoadLocation falls back to UTC for unknown zone names.
func LoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("config: invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("config: invalid %s %q, using %t", key, raw, fallback)
		return fallback
	}
	return value
}
