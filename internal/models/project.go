package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model

	Name             string `gorm:"not null"`
	Description      string
	MaxCollaborators int  `gorm:"not null"`
	IsCompleted      bool `gorm:"not null;default:false"`
	CreatorID        uint `gorm:"not null;index"`

	// Relationships
	Creator       User                  `gorm:"foreignKey:CreatorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Interests     []ProjectInterest     `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Collaborators []ProjectCollaborator `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
