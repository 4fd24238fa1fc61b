package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetProjectID(ctx *gin.Context) (uint, error) {
	projectIDStr := ctx.Param("project_id")

	if projectIDStr == "" {
		return 0, errors.New("Project ID not found")
	}

	projectID, err := strconv.ParseUint(projectIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Project ID")
	}

	return uint(projectID), nil
}
