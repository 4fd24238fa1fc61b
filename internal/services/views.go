package services

import (
	"errors"

	"github.com/grapevine-dev/grapevine/db"
	"github.com/grapevine-dev/grapevine/internal/models"
	"gorm.io/gorm"
)

// ProjectSummary is one row of the open-seats listing.
type ProjectSummary struct {
	ID               uint     `json:"project_id"`
	Name             string   `json:"project_name"`
	Description      string   `json:"description"`
	MaxCollaborators int      `json:"maximum_collaborators"`
	Collaborators    []string `json:"collaborators"`
	CreatedBy        string   `json:"created_by"`
	InterestRequests []string `json:"interest_requests"`
}

// UserStatsResult counts a user's footprint across all projects.
type UserStatsResult struct {
	Username            string `json:"username"`
	ProjectsCreated     int64  `json:"projects_created"`
	ProjectsContributed int64  `json:"projects_contributed"`
}

// ListOpenSeats returns every open project that still has a free seat,
// with its current collaborator and pending-interest usernames. The whole
// scan runs in one transaction so the listing is a consistent snapshot.
func ListOpenSeats() ([]ProjectSummary, error) {
	summaries := []ProjectSummary{}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var projects []models.Project

		if err := tx.Where("is_completed = ?", false).Order("id").Find(&projects).Error; err != nil {
			return err
		}

		for _, project := range projects {
			var count int64

			if err := tx.Model(&models.ProjectCollaborator{}).
				Where("project_id = ?", project.ID).
				Count(&count).Error; err != nil {
				return err
			}

			if count >= int64(project.MaxCollaborators) {
				continue
			}

			var creator models.User

			if err := tx.First(&creator, project.CreatorID).Error; err != nil {
				return err
			}

			collaborators, err := projectUsernames(tx, &models.ProjectCollaborator{}, "project_collaborators", project.ID)

			if err != nil {
				return err
			}

			interests, err := projectUsernames(tx, &models.ProjectInterest{}, "project_interests", project.ID)

			if err != nil {
				return err
			}

			summaries = append(summaries, ProjectSummary{
				ID:               project.ID,
				Name:             project.Name,
				Description:      project.Description,
				MaxCollaborators: project.MaxCollaborators,
				Collaborators:    collaborators,
				CreatedBy:        creator.Username,
				InterestRequests: interests,
			})
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return summaries, nil
}

// UserStats counts projects the user created and projects the user was
// accepted into, regardless of project state.
func UserStats(username string) (*UserStatsResult, error) {
	var stats UserStatsResult

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("User not found.")
			}
			return err
		}

		if err := tx.Model(&models.Project{}).
			Where("creator_id = ?", user.ID).
			Count(&stats.ProjectsCreated).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.ProjectCollaborator{}).
			Where("user_id = ?", user.ID).
			Count(&stats.ProjectsContributed).Error; err != nil {
			return err
		}

		stats.Username = user.Username
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func projectUsernames(tx *gorm.DB, model interface{}, table string, projectID uint) ([]string, error) {
	usernames := []string{}

	err := tx.Model(model).
		Joins("JOIN users ON users.id = "+table+".user_id").
		Where(table+".project_id = ?", projectID).
		Order(table + ".id").
		Pluck("users.username", &usernames).Error

	if err != nil {
		return nil, err
	}

	return usernames, nil
}
