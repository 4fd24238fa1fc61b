package models

import "gorm.io/gorm"

// UserSkill links a user to a catalog entry. The 3-per-user cap and the
// one-entry-per-language rule live in the services layer, not here; the
// catalog is a shared dictionary and those rules are per-user properties.
type UserSkill struct {
	gorm.Model

	UserID  uint `gorm:"not null;uniqueIndex:idx_user_skill"`
	SkillID uint `gorm:"not null;uniqueIndex:idx_user_skill"`

	// Relationships
	User  User  `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Skill Skill `gorm:"foreignKey:SkillID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
