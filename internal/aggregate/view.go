package aggregate

import (
	"errors"
	"time"

	"github.com/bhulekh-dev/bhulekh/internal/models"
	"gorm.io/gorm"
)

// ProjectView is the denormalized aggregate returned after every successful
// mutation: the project row, its full raiyat roster and every land record with
// the owning raiyat's display name already resolved, so the presentation layer
// never needs a second lookup.
type ProjectView struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Created     string       `json:"created"`
	RaiyatNames []RaiyatView `json:"raiyatNames"`
	LandRecords []RecordView `json:"landRecords"`
}

type RaiyatView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type RecordView struct {
	ID              uint    `json:"id"`
	Timestamp       string  `json:"timestamp"`
	RaiyatID        uint    `json:"raiyatId"`
	RaiyatName      string  `json:"raiyatName"`
	JamabandiNumber *string `json:"jamabandiNumber"`
	KhataNumber     *string `json:"khataNumber"`
	KhesraNumber    string  `json:"khesraNumber"`
	Rakwa           *string `json:"rakwa"`
	Uttar           *string `json:"uttar"`
	Dakshin         *string `json:"dakshin"`
	Purab           *string `json:"purab"`
	Paschim         *string `json:"paschim"`
	Remarks         *string `json:"remarks"`
}

// LoadProject reassembles the full aggregate for one project. Ownership is
// checked here so every operation built on top of it inherits the
// record-belongs-to-project-belongs-to-user scoping.
func LoadProject(gdb *gorm.DB, ownerID, projectID uint) (*ProjectView, error) {
	var project models.Project

	if err := gdb.Where("id = ? AND owner_id = ?", projectID, ownerID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("प्रोजेक्ट नहीं मिला")
		}
		return nil, unexpected("प्रोजेक्ट लोड करने में विफल", err)
	}

	return assembleView(gdb, &project)
}

func assembleView(gdb *gorm.DB, project *models.Project) (*ProjectView, error) {
	var raiyats []models.Raiyat

	if err := gdb.Where("project_id = ?", project.ID).Order("id").Find(&raiyats).Error; err != nil {
		return nil, unexpected("प्रोजेक्ट लोड करने में विफल", err)
	}

	var records []models.LandRecord

	if err := gdb.Preload("Raiyat").Where("project_id = ?", project.ID).Order("id").Find(&records).Error; err != nil {
		return nil, unexpected("प्रोजेक्ट लोड करने में विफल", err)
	}

	view := &ProjectView{
		ID:          project.ID,
		Name:        project.Name,
		Created:     project.CreatedAt.UTC().Format(time.RFC3339),
		RaiyatNames: make([]RaiyatView, 0, len(raiyats)),
		LandRecords: make([]RecordView, 0, len(records)),
	}

	for _, raiyat := range raiyats {
		view.RaiyatNames = append(view.RaiyatNames, RaiyatView{
			ID:   raiyat.ID,
			Name: raiyat.Name,
		})
	}

	for _, record := range records {
		view.LandRecords = append(view.LandRecords, RecordView{
			ID:              record.ID,
			Timestamp:       record.Timestamp,
			RaiyatID:        record.RaiyatID,
			RaiyatName:      record.Raiyat.Name,
			JamabandiNumber: record.JamabandiNumber,
			KhataNumber:     record.KhataNumber,
			KhesraNumber:    record.KhesraNumber,
			Rakwa:           record.Rakwa,
			Uttar:           record.Uttar,
			Dakshin:         record.Dakshin,
			Purab:           record.Purab,
			Paschim:         record.Paschim,
			Remarks:         record.Remarks,
		})
	}

	return view, nil
}
