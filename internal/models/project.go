package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model

	Name    string `gorm:"not null"`
	OwnerID uint   `gorm:"not null;index"`

	// Relationships
	Owner       User         `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Raiyats     []Raiyat     `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	LandRecords []LandRecord `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
