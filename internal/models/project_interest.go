package models

import "gorm.io/gorm"

// ProjectInterest is a pending join request. At most one live row exists
// per (project, user); resolution either promotes it into a
// ProjectCollaborator or removes it outright.
type ProjectInterest struct {
	gorm.Model

	ProjectID uint `gorm:"not null;uniqueIndex:idx_project_interest"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_project_interest"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
