package models

import "gorm.io/gorm"

type Raiyat struct {
	gorm.Model

	ProjectID uint   `gorm:"not null;index;uniqueIndex:idx_project_raiyat_name"`
	Name      string `gorm:"not null;uniqueIndex:idx_project_raiyat_name"`

	// Relationships
	Project     Project      `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	LandRecords []LandRecord `gorm:"foreignKey:RaiyatID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
