package models

import "gorm.io/gorm"

// LandRecord describes one parcel held by a raiyat. Khesra numbers are kept
// as strings and compared by exact equality: "7" and "07" are distinct parcels.
type LandRecord struct {
	gorm.Model

	ProjectID    uint   `gorm:"not null;index;uniqueIndex:idx_raiyat_khesra"`
	RaiyatID     uint   `gorm:"not null;index;uniqueIndex:idx_raiyat_khesra"`
	KhesraNumber string `gorm:"not null;uniqueIndex:idx_raiyat_khesra"`

	JamabandiNumber *string
	KhataNumber     *string
	Rakwa           *string
	Uttar           *string
	Dakshin         *string
	Purab           *string
	Paschim         *string
	Remarks         *string

	// Human-readable creation/modification stamp, not a sortable time.
	Timestamp string `gorm:"not null"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Raiyat  Raiyat  `gorm:"foreignKey:RaiyatID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
