package services

import (
	"errors"

	"github.com/Vinish1987/2pcinvestorbook/database"
	"github.com/Vinish1987/2pcinvestorbook/models"
	"gorm.io/gorm"
)

// SettingsUpdate carries the fields an operator may change. Nil fields are
// left alone.
type SettingsUpdate struct {
	DefaultReturnPercentage *float64
	AdminEmail              *string
	AdminContactInfo        *string
}

// GetSettings returns the singleton settings row, or nil when none has been
// created yet. Callers must treat nil as "defaults apply", not an error.
func GetSettings() (*models.Settings, error) {
	var settings models.Settings
	err := database.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// DefaultReturnPercentage resolves the percentage applied to new investments
// when the operator leaves it blank.
func DefaultReturnPercentage() (float64, error) {
	settings, err := GetSettings()
	if err != nil {
		return 0, err
	}
	if settings == nil {
		return models.DefaultReturnPercentage, nil
	}
	return settings.DefaultReturnPercentage, nil
}

// UpsertSettings applies an update to the singleton row, creating it on
// first write.
func UpsertSettings(update SettingsUpdate) (models.Settings, error) {
	existing, err := GetSettings()
	if err != nil {
		return models.Settings{}, err
	}

	if existing == nil {
		created := models.Settings{
			DefaultReturnPercentage: models.DefaultReturnPercentage,
			AdminEmail:              update.AdminEmail,
			AdminContactInfo:        update.AdminContactInfo,
		}
		if update.DefaultReturnPercentage != nil {
			created.DefaultReturnPercentage = *update.DefaultReturnPercentage
		}
		if err := database.DB.Create(&created).Error; err != nil {
			return models.Settings{}, err
		}
		return created, nil
	}

	if update.DefaultReturnPercentage != nil {
		existing.DefaultReturnPercentage = *update.DefaultReturnPercentage
	}
	if update.AdminEmail != nil {
		existing.AdminEmail = update.AdminEmail
	}
	if update.AdminContactInfo != nil {
		existing.AdminContactInfo = update.AdminContactInfo
	}
	if err := database.DB.Save(existing).Error; err != nil {
		return models.Settings{}, err
	}
	return *existing, nil
}
