package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/aajkakhana/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	database *gorm.DB
}

func NewPreferenceRepository(database *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{database: database}
}

func (repo *PreferenceRepository) Get(key string) (string, bool, error) {
	var preference models.Preference
	err := repo.database.Where(&models.Preference{Key: key}).First(&preference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return preference.Value, true, nil
}

// Set overwrites any previous value for key.
func (repo *PreferenceRepository) Set(key string, value string) error {
	preference := models.Preference{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&preference).Error
}

func (repo *PreferenceRepository) All() ([]models.Preference, error) {
	preferences := make([]models.Preference, 0)
	if err := repo.database.Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&preferences).Error; err != nil {
		return nil, err
	}
	return preferences, nil
}

func (repo *PreferenceRepository) DeleteAll() (int64, error) {
	result := repo.database.Where("1 = 1").Delete(&models.Preference{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
