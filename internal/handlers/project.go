package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grapevine-dev/grapevine/internal/services"
	"github.com/grapevine-dev/grapevine/internal/utils"
)

type CreateProjectRequest struct {
	Name             string `json:"project_name" binding:"required"`
	Description      string `json:"description"`
	MaxCollaborators int    `json:"maximum_collaborators" binding:"required"`
}

type RespondInterestRequest struct {
	Username string `json:"username" binding:"required"`
	Decision string `json:"decision" binding:"required"`
}

type ProjectResponse struct {
	ID               uint   `json:"project_id"`
	Name             string `json:"project_name"`
	Description      string `json:"description"`
	MaxCollaborators int    `json:"maximum_collaborators"`
	CreatedBy        string `json:"created_by"`
	IsCompleted      bool   `json:"is_completed"`
}

func CreateProject(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := services.CreateProject(currentUser.ID, req.Name, req.Description, req.MaxCollaborators)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, ProjectResponse{
		ID:               project.ID,
		Name:             project.Name,
		Description:      project.Description,
		MaxCollaborators: project.MaxCollaborators,
		CreatedBy:        currentUser.Username,
		IsCompleted:      project.IsCompleted,
	})
}

func DeleteProject(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.DeleteProject(projectID, currentUser.ID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func CompleteProject(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.CompleteProject(projectID, currentUser.ID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project is now marked as completed"})
}

func ExpressInterest(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.ExpressInterest(projectID, currentUser.ID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "User " + currentUser.Username + " expressed interest in the project",
	})
}

func RespondInterest(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req RespondInterestRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	decision, err := services.ParseDecision(req.Decision)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	collaborators, err := services.RespondInterest(projectID, currentUser.ID, req.Username, decision)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	if decision == services.DecisionAccept {
		ctx.JSON(http.StatusOK, gin.H{
			"message":             "User " + req.Username + " accepted to the project",
			"collaborators_count": collaborators,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "User " + req.Username + " has been declined for the project",
	})
}

func ListOpenSeats(ctx *gin.Context) {
	summaries, err := services.ListOpenSeats()

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summaries)
}
