package aggregate

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bhulekh-dev/bhulekh/internal/models"
	"gorm.io/gorm"
)

// ImportRow is one externally-decoded spreadsheet row. Rakwa is left untyped
// because spreadsheet decoders hand back numbers or strings depending on the
// cell; it is coerced to its string form before storage.
type ImportRow struct {
	RaiyatName      string      `json:"raiyatName"`
	JamabandiNumber string      `json:"jamabandiNumber"`
	KhataNumber     string      `json:"khataNumber"`
	KhesraNumber    string      `json:"khesraNumber"`
	Rakwa           interface{} `json:"rakwa"`
	Uttar           string      `json:"uttar"`
	Dakshin         string      `json:"dakshin"`
	Purab           string      `json:"purab"`
	Paschim         string      `json:"paschim"`
	Remarks         string      `json:"remarks"`
}

// ImportResult reports a partial-success batch: created and failed row counts
// plus the ordered row-level error messages, alongside the reassembled
// aggregate fetched once at the end.
type ImportResult struct {
	Project      *ProjectView `json:"project"`
	CreatedCount int          `json:"createdCount"`
	ErrorCount   int          `json:"errorCount"`
	Errors       []string     `json:"errors"`
}

// ImportRecords applies the rows in input order against one project. Each row
// resolves its raiyat by exact-name match against a working set loaded at
// batch start; unknown names create a new raiyat that later rows can reuse. A
// bad row is reported and skipped, never aborting the batch.
func ImportRecords(gdb *gorm.DB, ownerID, projectID uint, rows []ImportRow) (*ImportResult, error) {
	if _, err := findProject(gdb, ownerID, projectID); err != nil {
		return nil, err
	}

	var existing []models.Raiyat

	if err := gdb.Where("project_id = ?", projectID).Find(&existing).Error; err != nil {
		return nil, unexpected("रिकॉर्ड इंपोर्ट करने में विफल", err)
	}

	workingSet := make(map[string]uint, len(existing))
	for _, raiyat := range existing {
		workingSet[raiyat.Name] = raiyat.ID
	}

	created := 0
	importErrors := []string{}

	for i, row := range rows {
		rowNumber := i + 1

		raiyatID, ok := workingSet[row.RaiyatName]
		if !ok {
			raiyat := models.Raiyat{
				ProjectID: projectID,
				Name:      row.RaiyatName,
			}
			if err := gdb.Create(&raiyat).Error; err != nil {
				importErrors = append(importErrors, fmt.Sprintf("पंक्ति %d: %v", rowNumber, err))
				continue
			}
			workingSet[raiyat.Name] = raiyat.ID
			raiyatID = raiyat.ID
		}

		taken, err := parcelTaken(gdb, projectID, raiyatID, row.KhesraNumber, 0)
		if err != nil {
			importErrors = append(importErrors, fmt.Sprintf("पंक्ति %d: %v", rowNumber, err))
			continue
		}
		if taken {
			importErrors = append(importErrors, fmt.Sprintf(
				"पंक्ति %d: रैयत %s के लिए खेसरा नंबर %s पहले से मौजूद है",
				rowNumber, row.RaiyatName, row.KhesraNumber))
			continue
		}

		record := models.LandRecord{
			ProjectID:       projectID,
			RaiyatID:        raiyatID,
			KhesraNumber:    row.KhesraNumber,
			JamabandiNumber: nullable(row.JamabandiNumber),
			KhataNumber:     nullable(row.KhataNumber),
			Rakwa:           nullable(coerceRakwa(row.Rakwa)),
			Uttar:           nullable(row.Uttar),
			Dakshin:         nullable(row.Dakshin),
			Purab:           nullable(row.Purab),
			Paschim:         nullable(row.Paschim),
			Remarks:         nullable(row.Remarks),
			Timestamp:       time.Now().UTC().Format(time.RFC3339),
		}

		if err := gdb.Create(&record).Error; err != nil {
			importErrors = append(importErrors, fmt.Sprintf("पंक्ति %d: %v", rowNumber, err))
			continue
		}

		created++
	}

	view, err := LoadProject(gdb, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Project:      view,
		CreatedCount: created,
		ErrorCount:   len(importErrors),
		Errors:       importErrors,
	}, nil
}

func coerceRakwa(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
