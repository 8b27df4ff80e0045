package db

import "gorm.io/gorm"

type Repositories struct {
	Preferences *PreferenceRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Preferences: NewPreferenceRepository(database),
	}
}
