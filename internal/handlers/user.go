package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grapevine-dev/grapevine/db"
	"github.com/grapevine-dev/grapevine/internal/models"
	"github.com/grapevine-dev/grapevine/internal/services"
	"github.com/grapevine-dev/grapevine/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type AddSkillRequest struct {
	Language string `json:"language" binding:"required"`
	Level    string `json:"level" binding:"required"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func AddSkill(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req AddSkillRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	skills, err := services.AddSkill(currentUser.Username, req.Language, req.Level)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Skill added successfully",
		"skills":  skills,
	})
}

func RemoveSkill(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	language := ctx.Param("language")

	skills, err := services.RemoveSkill(currentUser.Username, language)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Removed " + language + " skill from user " + currentUser.Username,
		"skills":  skills,
	})
}

func ResetPassword(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req ResetPasswordRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Model(&models.User{}).
		Where("id = ?", currentUser.ID).
		Update("password_hash", string(passwordHash)).Error; err != nil {
		log.Printf("Failed to update password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Password for " + currentUser.Username + " has been updated",
	})
}

func UserStats(ctx *gin.Context) {
	username := ctx.Param("username")

	stats, err := services.UserStats(username)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
