package services

import (
	"errors"
	"strings"

	"github.com/grapevine-dev/grapevine/db"
	"github.com/grapevine-dev/grapevine/internal/metrics"
	"github.com/grapevine-dev/grapevine/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Decision resolves a pending interest one way or the other.
type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
)

// ParseDecision maps the caller-supplied string onto the closed decision
// set before any lifecycle logic runs. Matching is case-insensitive.
func ParseDecision(raw string) (Decision, error) {
	switch strings.ToLower(raw) {
	case "accept":
		return DecisionAccept, nil
	case "decline":
		return DecisionDecline, nil
	default:
		return "", invalidArgument("Decision must be either 'accept' or 'decline'.")
	}
}

// lockProject loads the project row under a FOR UPDATE lock so that
// completion state and the collaborator count cannot change underneath the
// transaction. SQLite (the test dialect) has no row locks and serializes
// writers on its own.
func lockProject(tx *gorm.DB, projectID uint, project *models.Project) error {
	query := tx
	if tx.Dialector.Name() != "sqlite" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.First(project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Project not found.")
		}
		return err
	}

	return nil
}

func findUserByID(tx *gorm.DB, userID uint) (*models.User, error) {
	var user models.User

	if err := tx.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found.")
		}
		return nil, err
	}

	return &user, nil
}

func findUserByUsername(tx *gorm.DB, username string) (*models.User, error) {
	var user models.User

	if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found.")
		}
		return nil, err
	}

	return &user, nil
}

// CreateProject opens a new project owned by the creator, with zero
// collaborators and no pending interests.
func CreateProject(creatorID uint, name, description string, maxCollaborators int) (*models.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalidArgument("Project name cannot be empty or whitespace only.")
	}

	if maxCollaborators < 1 {
		return nil, invalidArgument("Maximum collaborators must be at least 1.")
	}

	var project models.Project

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		creator, err := findUserByID(tx, creatorID)

		if err != nil {
			return err
		}

		project = models.Project{
			Name:             name,
			Description:      description,
			MaxCollaborators: maxCollaborators,
			CreatorID:        creator.ID,
		}

		return tx.Create(&project).Error
	})

	if err != nil {
		return nil, err
	}

	metrics.ProjectsCreated.Inc()

	return &project, nil
}

// DeleteProject removes the project and cascades over its interest and
// collaborator rows. Creator only.
func DeleteProject(projectID, requesterID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project

		if err := lockProject(tx, projectID, &project); err != nil {
			return err
		}

		requester, err := findUserByID(tx, requesterID)

		if err != nil {
			return err
		}

		if project.CreatorID != requester.ID {
			return forbidden("Only the creator of the project can delete it.")
		}

		// Join rows are hard-deleted so the (project, user) unique
		// indexes do not pin stale pairs.
		if err := tx.Unscoped().Where("project_id = ?", project.ID).Delete(&models.ProjectInterest{}).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("project_id = ?", project.ID).Delete(&models.ProjectCollaborator{}).Error; err != nil {
			return err
		}

		return tx.Delete(&project).Error
	})
}

// CompleteProject transitions the project from open to completed. The
// transition is terminal; completing an already-completed project is a
// no-op success.
func CompleteProject(projectID, requesterID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project

		if err := lockProject(tx, projectID, &project); err != nil {
			return err
		}

		requester, err := findUserByID(tx, requesterID)

		if err != nil {
			return err
		}

		if project.CreatorID != requester.ID {
			return forbidden("Only the creator of the project can complete it.")
		}

		return tx.Model(&project).Update("is_completed", true).Error
	})
}

// ExpressInterest records a pending join request for the user. Interest is
// cheap and not capacity-gated; seats are only checked at accept time.
func ExpressInterest(projectID, userID uint) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project

		if err := lockProject(tx, projectID, &project); err != nil {
			return err
		}

		user, err := findUserByID(tx, userID)

		if err != nil {
			return err
		}

		if project.CreatorID == user.ID {
			return invalidArgument("Project creator cannot express interest in their own project.")
		}

		if project.IsCompleted {
			return conflict("Cannot express interest in a completed project.")
		}

		var collaborator models.ProjectCollaborator

		err = tx.Where("project_id = ? AND user_id = ?", project.ID, user.ID).First(&collaborator).Error

		if err == nil {
			return conflict("User is already a collaborator on this project.")
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var interest models.ProjectInterest

		err = tx.Where("project_id = ? AND user_id = ?", project.ID, user.ID).First(&interest).Error

		if err == nil {
			return conflict("User has already expressed interest.")
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&models.ProjectInterest{ProjectID: project.ID, UserID: user.ID}).Error
	})

	if err != nil {
		return err
	}

	metrics.InterestsExpressed.Inc()

	return nil
}

// RespondInterest resolves a pending interest. Decline drops the request;
// accept re-checks capacity and promotes it into a collaborator row. The
// promotion and the interest removal commit as one transaction so a crash
// cannot leave a user both interested and accepted, or neither. Returns the
// collaborator count after an accept (unchanged count on decline).
func RespondInterest(projectID, requesterID uint, targetUsername string, decision Decision) (int64, error) {
	var collaborators int64

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project

		if err := lockProject(tx, projectID, &project); err != nil {
			return err
		}

		requester, err := findUserByID(tx, requesterID)

		if err != nil {
			return err
		}

		if project.CreatorID != requester.ID {
			return forbidden("Only the creator of the project can respond to interests.")
		}

		if project.IsCompleted {
			return conflict("Cannot accept or decline after the project is completed.")
		}

		target, err := findUserByUsername(tx, targetUsername)

		if err != nil {
			return err
		}

		var interest models.ProjectInterest

		if err := tx.Where("project_id = ? AND user_id = ?", project.ID, target.ID).First(&interest).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("User did not express interest or was already processed.")
			}
			return err
		}

		if decision == DecisionDecline {
			if err := tx.Unscoped().Delete(&interest).Error; err != nil {
				return err
			}

			return tx.Model(&models.ProjectCollaborator{}).
				Where("project_id = ?", project.ID).
				Count(&collaborators).Error
		}

		// Accept: the count and the insert stay inside this transaction,
		// under the project row lock, so two concurrent accepts cannot
		// both pass the capacity check.
		if err := tx.Model(&models.ProjectCollaborator{}).
			Where("project_id = ?", project.ID).
			Count(&collaborators).Error; err != nil {
			return err
		}

		if collaborators >= int64(project.MaxCollaborators) {
			return conflict("Project is already at maximum collaborator capacity.")
		}

		if err := tx.Create(&models.ProjectCollaborator{ProjectID: project.ID, UserID: target.ID}).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Delete(&interest).Error; err != nil {
			return err
		}

		collaborators++
		return nil
	})

	if err != nil {
		return 0, err
	}

	switch decision {
	case DecisionAccept:
		metrics.CollaboratorsAccepted.Inc()
	case DecisionDecline:
		metrics.InterestsDeclined.Inc()
	}

	return collaborators, nil
}
