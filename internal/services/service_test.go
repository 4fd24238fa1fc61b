package services

import (
	"testing"

	"github.com/grapevine-dev/grapevine/db"
	"github.com/grapevine-dev/grapevine/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive across the
	// test and serializes transactions the way postgres row locks do in
	// production.
	sqlDB.SetMaxOpenConns(1)

	db.DB = gdb
	require.NoError(t, db.MigrateDatabase())
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()

	user := models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        username + "@example.com",
		Age:          30,
		Country:      "Test Country",
		Residence:    "Test City",
		Username:     username,
		PasswordHash: "not-a-real-hash",
	}

	require.NoError(t, db.DB.Create(&user).Error)
	return &user
}

func createTestProject(t *testing.T, creator *models.User, maxCollaborators int) *models.Project {
	t.Helper()

	project, err := CreateProject(creator.ID, "Test Project", "A test project", maxCollaborators)
	require.NoError(t, err)
	return project
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()

	require.Error(t, err)

	svcErr, ok := err.(*Error)
	require.True(t, ok, "expected *services.Error, got %T: %v", err, err)
	require.Equal(t, kind, svcErr.Kind, "unexpected error kind for %q", svcErr.Message)
}

func collaboratorCount(t *testing.T, projectID uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.DB.Model(&models.ProjectCollaborator{}).
		Where("project_id = ?", projectID).
		Count(&count).Error)
	return count
}

func interestCount(t *testing.T, projectID uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.DB.Model(&models.ProjectInterest{}).
		Where("project_id = ?", projectID).
		Count(&count).Error)
	return count
}
