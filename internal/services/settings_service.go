package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/terraincognita07/aajkakhana/internal/models"
)

var ErrUnsupportedLocale = errors.New("unsupported locale")

type PreferenceRepository interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
}

type PreferenceWriteObserver interface {
	ObservePreferenceWrite(key string)
}

type Preferences struct {
	Locale   string `json:"locale"`
	DarkMode bool   `json:"dark_mode"`
}

type SettingsService struct {
	preferences   PreferenceRepository
	defaultLocale string
	observer      PreferenceWriteObserver
}

func NewSettingsService(preferences PreferenceRepository, defaultLocale string, observer PreferenceWriteObserver) *SettingsService {
	locale, ok := normalizeLocale(defaultLocale)
	if !ok {
		locale = models.LocaleHindi
	}
	return &SettingsService{
		preferences:   preferences,
		defaultLocale: locale,
		observer:      observer,
	}
}

func (service *SettingsService) DefaultLocale() string {
	return service.defaultLocale
}

// Locale falls back to the default when nothing usable is stored.
func (service *SettingsService) Locale() (string, error) {
	raw, found, err := service.preferences.Get(models.PreferenceLocale)
	if err != nil {
		return service.defaultLocale, fmt.Errorf("load locale: %w", err)
	}
	if !found {
		return service.defaultLocale, nil
	}
	locale, ok := normalizeLocale(raw)
	if !ok {
		return service.defaultLocale, nil
	}
	return locale, nil
}

func (service *SettingsService) SetLocale(raw string) (string, error) {
	locale, ok := normalizeLocale(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, raw)
	}
	if err := service.write(models.PreferenceLocale, locale); err != nil {
		return "", err
	}
	return locale, nil
}

func (service *SettingsService) DarkMode() (bool, error) {
	raw, found, err := service.preferences.Get(models.PreferenceDarkMode)
	if err != nil {
		return false, fmt.Errorf("load dark mode: %w", err)
	}
	if !found {
		return false, nil
	}
	enabled, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, nil
	}
	return enabled, nil
}

func (service *SettingsService) SetDarkMode(enabled bool) error {
	return service.write(models.PreferenceDarkMode, strconv.FormatBool(enabled))
}

func (service *SettingsService) Preferences() (Preferences, error) {
	locale, err := service.Locale()
	if err != nil {
		return Preferences{Locale: locale}, err
	}
	darkMode, err := service.DarkMode()
	if err != nil {
		return Preferences{Locale: locale}, err
	}
	return Preferences{Locale: locale, DarkMode: darkMode}, nil
}

func (service *SettingsService) write(key string, value string) error {
	if err := service.preferences.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if service.observer != nil {
		service.observer.ObservePreferenceWrite(key)
	}
	return nil
}

func normalizeLocale(raw string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if index := strings.IndexAny(normalized, "-_"); index > 0 {
		normalized = normalized[:index]
	}
	switch normalized {
	case models.LocaleEnglish, models.LocaleHindi:
		return normalized, true
	default:
		return "", false
	}
}
