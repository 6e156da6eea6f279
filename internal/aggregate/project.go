package aggregate

import (
	"errors"
	"strings"

	"github.com/bhulekh-dev/bhulekh/internal/models"
	"gorm.io/gorm"
)

// SeedRaiyatNames are attached to every new project so users start from a
// non-empty roster.
var SeedRaiyatNames = []string{
	"राम कुमार",
	"सुरेश यादव",
	"अनीता देवी",
	"मोहन लाल",
	"गीता सिंह",
}

// CreateProject creates a project with the seed raiyat roster and returns the
// reassembled aggregate.
func CreateProject(gdb *gorm.DB, ownerID uint, name string) (*ProjectView, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, invalidInput("प्रोजेक्ट नाम आवश्यक है")
	}

	project := models.Project{
		Name:    name,
		OwnerID: ownerID,
	}

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		for _, raiyatName := range SeedRaiyatNames {
			raiyat := models.Raiyat{
				ProjectID: project.ID,
				Name:      raiyatName,
			}
			if err := tx.Create(&raiyat).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, unexpected("प्रोजेक्ट बनाने में विफल", err)
	}

	return LoadProject(gdb, ownerID, project.ID)
}

// ListProjects reassembles every project owned by the user, newest first.
func ListProjects(gdb *gorm.DB, ownerID uint) ([]*ProjectView, error) {
	var projects []models.Project

	if err := gdb.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, unexpected("प्रोजेक्ट्स लोड करने में विफल", err)
	}

	views := make([]*ProjectView, 0, len(projects))

	for i := range projects {
		view, err := assembleView(gdb, &projects[i])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// RenameProject updates the project name and returns the reassembled
// aggregate.
func RenameProject(gdb *gorm.DB, ownerID, projectID uint, name string) (*ProjectView, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, invalidInput("प्रोजेक्ट नाम आवश्यक है")
	}

	project, err := findProject(gdb, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	project.Name = name

	if err := gdb.Save(project).Error; err != nil {
		return nil, unexpected("प्रोजेक्ट अपडेट करने में विफल", err)
	}

	return LoadProject(gdb, ownerID, projectID)
}

// DeleteProject removes the project together with its raiyats and land
// records. There is nothing left to reassemble afterwards.
func DeleteProject(gdb *gorm.DB, ownerID, projectID uint) error {
	project, err := findProject(gdb, ownerID, projectID)
	if err != nil {
		return err
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("project_id = ?", project.ID).Delete(&models.LandRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("project_id = ?", project.ID).Delete(&models.Raiyat{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(project).Error
	})

	if err != nil {
		return unexpected("प्रोजेक्ट डिलीट करने में विफल", err)
	}

	return nil
}

func findProject(gdb *gorm.DB, ownerID, projectID uint) (*models.Project, error) {
	var project models.Project

	if err := gdb.Where("id = ? AND owner_id = ?", projectID, ownerID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("प्रोजेक्ट नहीं मिला")
		}
		return nil, unexpected("प्रोजेक्ट लोड करने में विफल", err)
	}

	return &project, nil
}
