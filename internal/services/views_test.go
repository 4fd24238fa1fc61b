package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOpenSeats(t *testing.T) {
	t.Run("excludes completed and full projects", func(t *testing.T) {
		setupTestDB(t)
		creator := createTestUser(t, "creator")
		member := createTestUser(t, "member")

		open := createTestProject(t, creator, 2)

		completed := createTestProject(t, creator, 2)
		require.NoError(t, CompleteProject(completed.ID, creator.ID))

		full := createTestProject(t, creator, 1)
		require.NoError(t, ExpressInterest(full.ID, member.ID))
		_, err := RespondInterest(full.ID, creator.ID, "member", DecisionAccept)
		require.NoError(t, err)

		summaries, err := ListOpenSeats()
		require.NoError(t, err)

		require.Len(t, summaries, 1)
		assert.Equal(t, open.ID, summaries[0].ID)
	})

	t.Run("includes collaborator and pending interest usernames", func(t *testing.T) {
		setupTestDB(t)
		creator := createTestUser(t, "creator")
		member := createTestUser(t, "member")
		pending := createTestUser(t, "pending")

		project := createTestProject(t, creator, 3)
		require.NoError(t, ExpressInterest(project.ID, member.ID))
		_, err := RespondInterest(project.ID, creator.ID, "member", DecisionAccept)
		require.NoError(t, err)
		require.NoError(t, ExpressInterest(project.ID, pending.ID))

		summaries, err := ListOpenSeats()
		require.NoError(t, err)
		require.Len(t, summaries, 1)

		summary := summaries[0]
		assert.Equal(t, "creator", summary.CreatedBy)
		assert.Equal(t, []string{"member"}, summary.Collaborators)
		assert.Equal(t, []string{"pending"}, summary.InterestRequests)
		assert.Equal(t, 3, summary.MaxCollaborators)
	})

	t.Run("empty store yields an empty listing", func(t *testing.T) {
		setupTestDB(t)

		summaries, err := ListOpenSeats()
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}

func TestUserStats(t *testing.T) {
	t.Run("counts created and contributed projects in any state", func(t *testing.T) {
		setupTestDB(t)
		creator := createTestUser(t, "creator")
		contributor := createTestUser(t, "contributor")

		first := createTestProject(t, creator, 2)
		createTestProject(t, creator, 2)

		require.NoError(t, ExpressInterest(first.ID, contributor.ID))
		_, err := RespondInterest(first.ID, creator.ID, "contributor", DecisionAccept)
		require.NoError(t, err)

		// Completion does not remove the contribution from the count.
		require.NoError(t, CompleteProject(first.ID, creator.ID))

		stats, err := UserStats("creator")
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.ProjectsCreated)
		assert.Equal(t, int64(0), stats.ProjectsContributed)

		stats, err = UserStats("contributor")
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.ProjectsCreated)
		assert.Equal(t, int64(1), stats.ProjectsContributed)
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		setupTestDB(t)

		_, err := UserStats("ghost")
		requireKind(t, err, KindNotFound)
	})
}
