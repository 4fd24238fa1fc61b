package models

import "gorm.io/gorm"

// ProjectCollaborator is an accepted membership occupying one of the
// project's seats. Rows are created only by accepting an interest.
type ProjectCollaborator struct {
	gorm.Model

	ProjectID uint `gorm:"not null;uniqueIndex:idx_project_collaborator"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_project_collaborator"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
