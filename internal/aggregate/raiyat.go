package aggregate

import (
	"errors"
	"strings"

	"github.com/bhulekh-dev/bhulekh/internal/models"
	"gorm.io/gorm"
)

// AddRaiyat attaches a new raiyat to the project. Names are unique within a
// project after trimming, compared case-insensitively. Two writers racing past
// the pre-check are separated by the store's unique index, which is still
// reported as a conflict.
func AddRaiyat(gdb *gorm.DB, ownerID, projectID uint, name string) (*ProjectView, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, invalidInput("रैयत नाम आवश्यक है")
	}

	if _, err := findProject(gdb, ownerID, projectID); err != nil {
		return nil, err
	}

	var existing []models.Raiyat

	if err := gdb.Where("project_id = ?", projectID).Find(&existing).Error; err != nil {
		return nil, unexpected("रैयत नाम जोड़ने में विफल", err)
	}

	for _, raiyat := range existing {
		if strings.EqualFold(strings.TrimSpace(raiyat.Name), name) {
			return nil, conflict("यह रैयत नाम पहले से मौजूद है")
		}
	}

	raiyat := models.Raiyat{
		ProjectID: projectID,
		Name:      name,
	}

	if err := gdb.Create(&raiyat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("यह रैयत नाम पहले से मौजूद है")
		}
		return nil, unexpected("रैयत नाम जोड़ने में विफल", err)
	}

	return LoadProject(gdb, ownerID, projectID)
}

// DeleteRaiyat removes a raiyat and cascades to its land records. Callers are
// expected to warn the user: records under the raiyat disappear with it.
func DeleteRaiyat(gdb *gorm.DB, ownerID, projectID, raiyatID uint) (*ProjectView, error) {
	if _, err := findProject(gdb, ownerID, projectID); err != nil {
		return nil, err
	}

	raiyat, err := findRaiyat(gdb, projectID, raiyatID)
	if err != nil {
		return nil, err
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("raiyat_id = ?", raiyat.ID).Delete(&models.LandRecord{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(raiyat).Error
	})

	if err != nil {
		return nil, unexpected("रैयत नाम डिलीट करने में विफल", err)
	}

	return LoadProject(gdb, ownerID, projectID)
}

func findRaiyat(gdb *gorm.DB, projectID, raiyatID uint) (*models.Raiyat, error) {
	var raiyat models.Raiyat

	if err := gdb.Where("id = ? AND project_id = ?", raiyatID, projectID).First(&raiyat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("रैयत नहीं मिला")
		}
		return nil, unexpected("रैयत लोड करने में विफल", err)
	}

	return &raiyat, nil
}
