package models

import "time"

const (
	PreferenceLocale   = "locale"
	PreferenceDarkMode = "darkMode"
)

type Preference struct {
	Key       string    `gorm:"primaryKey"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

const (
	LocaleEnglish = "en"
	LocaleHindi   = "hi"
)
