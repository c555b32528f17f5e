package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/db"
)

func candidate(campaignID int64, action domain.ActionType, priority domain.Priority) port.TaskCandidate {
	return port.TaskCandidate{
		Recommendation: domain.Recommendation{
			CampaignID:     campaignID,
			CampaignName:   fmt.Sprintf("campaign %d", campaignID),
			Priority:       priority,
			Type:           action,
			Reason:         "reason",
			Action:         "action",
			ExpectedImpact: "impact",
		},
		MetricsSnapshot: "{}",
	}
}

// TestFilterNewCandidatesIsIdempotent runs a batch against an empty key
// set, then the same batch against the keys the first pass recorded:
// each (campaign, type) pair may be kept at most once across both
// passes, and duplicates inside one batch collapse to the first
// occurrence.
func TestFilterNewCandidatesIsIdempotent(t *testing.T) {
	batch := []port.TaskCandidate{
		candidate(1, domain.ActionPauseCampaign, domain.PriorityHigh),
		candidate(1, domain.ActionPauseCampaign, domain.PriorityHigh),
		candidate(1, domain.ActionLowerCPC, domain.PriorityMedium),
		candidate(2, domain.ActionPauseCampaign, domain.PriorityHigh),
	}

	existing := make(map[domain.TaskKey]struct{})

	first := filterNewCandidates(existing, batch)
	require.Len(t, first, 3, "intra-batch duplicate must collapse")

	second := filterNewCandidates(existing, batch)
	assert.Empty(t, second, "a rerun of the same batch must keep nothing")

	// A key outside the recorded set still passes.
	third := filterNewCandidates(existing, []port.TaskCandidate{
		candidate(3, domain.ActionExpandTargeting, domain.PriorityMedium),
	})
	assert.Len(t, third, 1)
}

func TestFilterNewCandidatesSkipsPendingKeys(t *testing.T) {
	existing := map[domain.TaskKey]struct{}{
		{CampaignID: 5, TaskType: domain.ActionPauseCampaign}: {},
	}

	kept := filterNewCandidates(existing, []port.TaskCandidate{
		candidate(5, domain.ActionPauseCampaign, domain.PriorityHigh),
		candidate(5, domain.ActionLowerCPC, domain.PriorityMedium),
	})
	require.Len(t, kept, 1)
	assert.Equal(t, domain.ActionLowerCPC, kept[0].Recommendation.Type)
}

// testPool connects to the database named by TEST_PSQL_ADDRESS and
// applies migrations. Tests using it are skipped when the variable is
// not set.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("TEST_PSQL_ADDRESS")
	if addr == "" {
		t.Skip("TEST_PSQL_ADDRESS is not set")
	}
	require.NoError(t, db.Migrate(addr))
	pool, err := pgxpool.New(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedCampaign(t *testing.T, pool *pgxpool.Pool, userID int64) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `
        INSERT INTO campaigns (user_id, campaign_name, status)
        VALUES ($1, $2, 'ENABLED')
        RETURNING id`,
		userID, fmt.Sprintf("integration %d", userID)).Scan(&id)
	require.NoError(t, err)
	return id
}

// TestTaskLifecycleIntegration walks tasks through insert, dedup,
// single completion, bulk dismissal and statistics against a real
// database, checking the timestamp stamping the SQL performs.
func TestTaskLifecycleIntegration(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewTaskRepository(pool)

	userID := time.Now().UnixNano()
	campaignID := seedCampaign(t, pool, userID)

	dedupSince := time.Now().UTC().AddDate(0, 0, -7)
	batch := []port.TaskCandidate{
		candidate(campaignID, domain.ActionPauseCampaign, domain.PriorityHigh),
		candidate(campaignID, domain.ActionLowerCPC, domain.PriorityMedium),
	}

	inserted, err := repo.InsertTasks(ctx, userID, batch, dedupSince)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// A rerun inside the window inserts nothing.
	inserted, err = repo.InsertTasks(ctx, userID, batch, dedupSince)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	tasks, err := repo.UserTasks(ctx, userID, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)

	// Completing stamps completed_at and stores the note, and leaves
	// dismissed_at untouched.
	note := "fixed the creatives"
	ok, err := repo.UpdateTaskStatus(ctx, tasks[0].ID, userID, domain.TaskStatusCompleted, &note)
	require.NoError(t, err)
	require.True(t, ok)

	completed := domain.TaskStatusCompleted
	got, err := repo.UserTasks(ctx, userID, &completed)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].CompletedAt)
	assert.WithinDuration(t, time.Now(), *got[0].CompletedAt, time.Minute)
	assert.Nil(t, got[0].DismissedAt)
	require.NotNil(t, got[0].CompletionNote)
	assert.Equal(t, note, *got[0].CompletionNote)

	// Terminal tasks are frozen.
	ok, err = repo.UpdateTaskStatus(ctx, got[0].ID, userID, domain.TaskStatusDismissed, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	// Bulk dismissal picks up the remaining pending task and stamps
	// dismissed_at.
	count, err := repo.UpdateCampaignTasks(ctx, campaignID, userID, domain.TaskStatusDismissed, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	dismissed := domain.TaskStatusDismissed
	got, err = repo.UserTasks(ctx, userID, &dismissed)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].DismissedAt)
	assert.Nil(t, got[0].CompletedAt)

	stats, err := repo.TaskStatistics(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(1), stats.Dismissed)
	assert.Zero(t, stats.Pending)
	assert.Zero(t, stats.ByPriority.High)
}

func TestCleanupOldTasksIntegration(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewTaskRepository(pool)

	userID := time.Now().UnixNano()
	campaignID := seedCampaign(t, pool, userID)

	_, err := repo.InsertTasks(ctx, userID, []port.TaskCandidate{
		candidate(campaignID, domain.ActionPauseCampaign, domain.PriorityHigh),
	}, time.Now().UTC().AddDate(0, 0, -7))
	require.NoError(t, err)

	tasks, err := repo.UserTasks(ctx, userID, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	ok, err := repo.UpdateTaskStatus(ctx, tasks[0].ID, userID, domain.TaskStatusCompleted, nil)
	require.NoError(t, err)
	require.True(t, ok)

	// Backdate the completion past the retention horizon.
	_, err = pool.Exec(ctx, `
        UPDATE optimization_tasks
        SET completed_at = now() - interval '40 days'
        WHERE user_id = $1`, userID)
	require.NoError(t, err)

	deleted, err := repo.CleanupOldTasks(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, deleted, int64(1))

	tasks, err = repo.UserTasks(ctx, userID, nil)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
