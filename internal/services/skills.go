package services

import (
	"errors"
	"fmt"

	"github.com/grapevine-dev/grapevine/db"
	"github.com/grapevine-dev/grapevine/internal/models"
	"github.com/grapevine-dev/grapevine/internal/types"
	"gorm.io/gorm"
)

// MaxSkillsPerUser caps the number of skill associations a user may hold.
const MaxSkillsPerUser = 3

// AddSkill attaches a (language, level) catalog entry to the user and
// returns the full updated skill set. A user holds at most MaxSkillsPerUser
// associations and at most one per language; changing a level means
// removing the language and re-adding it.
func AddSkill(username, language, level string) ([]types.SkillEntry, error) {
	if !types.ValidLanguage(language) {
		return nil, invalidArgument(fmt.Sprintf("Unsupported language %q.", language))
	}

	if !types.ValidSkillLevel(level) {
		return nil, invalidArgument(fmt.Sprintf("Unsupported skill level %q.", level))
	}

	var skills []types.SkillEntry

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("User not found.")
			}
			return err
		}

		var count int64

		if err := tx.Model(&models.UserSkill{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
			return err
		}

		if count >= MaxSkillsPerUser {
			return limitExceeded("User already has 3 skills. Remove one before adding a new one.")
		}

		var existing models.UserSkill

		err := tx.Joins("JOIN skills ON skills.id = user_skills.skill_id").
			Where("user_skills.user_id = ? AND skills.language = ?", user.ID, language).
			First(&existing).Error

		if err == nil {
			return conflict("Skill with this language already exists.")
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		skill, err := findOrCreateSkill(tx, language, level)

		if err != nil {
			return err
		}

		userSkill := models.UserSkill{UserID: user.ID, SkillID: skill.ID}

		if err := tx.Create(&userSkill).Error; err != nil {
			return err
		}

		skills, err = listUserSkills(tx, user.ID)
		return err
	})

	if err != nil {
		return nil, err
	}

	return skills, nil
}

// RemoveSkill detaches the user's association for the given language. The
// catalog entry stays in place even if nothing references it anymore.
func RemoveSkill(username, language string) ([]types.SkillEntry, error) {
	var skills []types.SkillEntry

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("User not found.")
			}
			return err
		}

		var userSkill models.UserSkill

		err := tx.Joins("JOIN skills ON skills.id = user_skills.skill_id").
			Where("user_skills.user_id = ? AND skills.language = ?", user.ID, language).
			First(&userSkill).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(fmt.Sprintf("User does not have skill in %s.", language))
			}
			return err
		}

		// Hard delete so the (user, skill) unique index frees the pair
		// for a later re-add.
		if err := tx.Unscoped().Delete(&userSkill).Error; err != nil {
			return err
		}

		skills, err = listUserSkills(tx, user.ID)
		return err
	})

	if err != nil {
		return nil, err
	}

	return skills, nil
}

// ListSkills returns the user's current skill set in insertion order.
func ListSkills(username string) ([]types.SkillEntry, error) {
	var user models.User

	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found.")
		}
		return nil, err
	}

	return listUserSkills(db.DB, user.ID)
}

func findOrCreateSkill(tx *gorm.DB, language, level string) (*models.Skill, error) {
	var skill models.Skill

	err := tx.Where("language = ? AND level = ?", language, level).First(&skill).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		skill = models.Skill{Language: language, Level: level}
		if err := tx.Create(&skill).Error; err != nil {
			return nil, err
		}
		return &skill, nil
	}

	if err != nil {
		return nil, err
	}

	return &skill, nil
}

func listUserSkills(tx *gorm.DB, userID uint) ([]types.SkillEntry, error) {
	entries := []types.SkillEntry{}

	err := tx.Model(&models.UserSkill{}).
		Select("skills.language, skills.level").
		Joins("JOIN skills ON skills.id = user_skills.skill_id").
		Where("user_skills.user_id = ?", userID).
		Order("user_skills.id").
		Scan(&entries).Error

	if err != nil {
		return nil, err
	}

	return entries, nil
}
