package models

import "gorm.io/gorm"

// Skill is a shared catalog entry. Two users with the same language and
// level reference the same row; entries are created lazily and never
// deleted, even once unreferenced.
type Skill struct {
	gorm.Model

	Language string `gorm:"not null;uniqueIndex:idx_language_level"`
	Level    string `gorm:"not null;uniqueIndex:idx_language_level"`
}
