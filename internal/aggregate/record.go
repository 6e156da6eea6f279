package aggregate

import (
	"errors"
	"strings"
	"time"

	"github.com/bhulekh-dev/bhulekh/internal/models"
	"gorm.io/gorm"
)

// CreateRecordInput carries the required parcel identity plus the optional
// registry, area, boundary and remarks fields. Blank optionals are stored as
// NULL.
type CreateRecordInput struct {
	RaiyatID        uint
	KhesraNumber    string
	JamabandiNumber string
	KhataNumber     string
	Rakwa           string
	Uttar           string
	Dakshin         string
	Purab           string
	Paschim         string
	Remarks         string
}

// UpdateRecordInput is a partial patch: nil means "leave untouched", a present
// empty string clears the field. KhesraNumber and RaiyatID cannot be cleared,
// only replaced.
type UpdateRecordInput struct {
	RaiyatID        *uint
	KhesraNumber    *string
	JamabandiNumber *string
	KhataNumber     *string
	Rakwa           *string
	Uttar           *string
	Dakshin         *string
	Purab           *string
	Paschim         *string
	Remarks         *string
}

// CreateRecord validates and stores one land record, then returns the
// reassembled aggregate. The (raiyat, khesra) pair must be unique within the
// project; khesra numbers are compared as exact strings.
func CreateRecord(gdb *gorm.DB, ownerID, projectID uint, input CreateRecordInput) (*ProjectView, error) {
	if input.RaiyatID == 0 || strings.TrimSpace(input.KhesraNumber) == "" {
		return nil, invalidInput("रैयत नाम और खेसरा नंबर आवश्यक हैं")
	}

	if _, err := findProject(gdb, ownerID, projectID); err != nil {
		return nil, err
	}

	raiyat, err := findRaiyat(gdb, projectID, input.RaiyatID)
	if err != nil {
		return nil, err
	}

	taken, err := parcelTaken(gdb, projectID, raiyat.ID, input.KhesraNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict("इस रैयत के लिए यह खेसरा नंबर पहले से मौजूद है")
	}

	record := models.LandRecord{
		ProjectID:       projectID,
		RaiyatID:        raiyat.ID,
		KhesraNumber:    input.KhesraNumber,
		JamabandiNumber: nullable(input.JamabandiNumber),
		KhataNumber:     nullable(input.KhataNumber),
		Rakwa:           nullable(input.Rakwa),
		Uttar:           nullable(input.Uttar),
		Dakshin:         nullable(input.Dakshin),
		Purab:           nullable(input.Purab),
		Paschim:         nullable(input.Paschim),
		Remarks:         nullable(input.Remarks),
		Timestamp:       localeTimestamp(),
	}

	if err := gdb.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("इस रैयत के लिए यह खेसरा नंबर पहले से मौजूद है")
		}
		return nil, unexpected("रिकॉर्ड सेव करने में विफल", err)
	}

	return LoadProject(gdb, ownerID, projectID)
}

// UpdateRecord applies only the supplied fields. When the patch changes raiyat
// or khesra, the effective pair is re-checked against every other record in
// the project.
func UpdateRecord(gdb *gorm.DB, ownerID, projectID, recordID uint, patch UpdateRecordInput) (*ProjectView, error) {
	if _, err := findProject(gdb, ownerID, projectID); err != nil {
		return nil, err
	}

	var record models.LandRecord

	if err := gdb.Where("id = ? AND project_id = ?", recordID, projectID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("रिकॉर्ड नहीं मिला")
		}
		return nil, unexpected("रिकॉर्ड लोड करने में विफल", err)
	}

	if patch.RaiyatID != nil {
		if _, err := findRaiyat(gdb, projectID, *patch.RaiyatID); err != nil {
			return nil, err
		}
	}

	newKhesra := patch.KhesraNumber != nil && strings.TrimSpace(*patch.KhesraNumber) != ""

	if newKhesra || patch.RaiyatID != nil {
		effectiveRaiyat := record.RaiyatID
		if patch.RaiyatID != nil {
			effectiveRaiyat = *patch.RaiyatID
		}

		effectiveKhesra := record.KhesraNumber
		if newKhesra {
			effectiveKhesra = *patch.KhesraNumber
		}

		taken, err := parcelTaken(gdb, projectID, effectiveRaiyat, effectiveKhesra, record.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, conflict("इस रैयत के लिए यह खेसरा नंबर पहले से मौजूद है")
		}
	}

	updates := map[string]interface{}{
		"timestamp": localeTimestamp(),
	}

	if patch.RaiyatID != nil {
		updates["raiyat_id"] = *patch.RaiyatID
	}
	if newKhesra {
		updates["khesra_number"] = *patch.KhesraNumber
	}
	if patch.JamabandiNumber != nil {
		updates["jamabandi_number"] = nullable(*patch.JamabandiNumber)
	}
	if patch.KhataNumber != nil {
		updates["khata_number"] = nullable(*patch.KhataNumber)
	}
	if patch.Rakwa != nil {
		updates["rakwa"] = nullable(*patch.Rakwa)
	}
	if patch.Uttar != nil {
		updates["uttar"] = nullable(*patch.Uttar)
	}
	if patch.Dakshin != nil {
		updates["dakshin"] = nullable(*patch.Dakshin)
	}
	if patch.Purab != nil {
		updates["purab"] = nullable(*patch.Purab)
	}
	if patch.Paschim != nil {
		updates["paschim"] = nullable(*patch.Paschim)
	}
	if patch.Remarks != nil {
		updates["remarks"] = nullable(*patch.Remarks)
	}

	if err := gdb.Model(&record).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("इस रैयत के लिए यह खेसरा नंबर पहले से मौजूद है")
		}
		return nil, unexpected("रिकॉर्ड अपडेट करने में विफल", err)
	}

	return LoadProject(gdb, ownerID, projectID)
}

// DeleteRecord removes one land record and returns the reassembled aggregate.
func DeleteRecord(gdb *gorm.DB, ownerID, projectID, recordID uint) (*ProjectView, error) {
	if _, err := findProject(gdb, ownerID, projectID); err != nil {
		return nil, err
	}

	var record models.LandRecord

	if err := gdb.Where("id = ? AND project_id = ?", recordID, projectID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("रिकॉर्ड नहीं मिला")
		}
		return nil, unexpected("रिकॉर्ड लोड करने में विफल", err)
	}

	if err := gdb.Unscoped().Delete(&record).Error; err != nil {
		return nil, unexpected("रिकॉर्ड डिलीट करने में विफल", err)
	}

	return LoadProject(gdb, ownerID, projectID)
}

func parcelTaken(gdb *gorm.DB, projectID, raiyatID uint, khesra string, excludeID uint) (bool, error) {
	query := gdb.Model(&models.LandRecord{}).
		Where("project_id = ? AND raiyat_id = ? AND khesra_number = ?", projectID, raiyatID, khesra)

	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var count int64

	if err := query.Count(&count).Error; err != nil {
		return false, unexpected("रिकॉर्ड जांचने में विफल", err)
	}

	return count > 0, nil
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// localeTimestamp renders the human-readable stamp shown in record tables,
// e.g. "1/9/2026, 10:30:45 am".
func localeTimestamp() string {
	return time.Now().Format("2/1/2006, 3:04:05 pm")
}
