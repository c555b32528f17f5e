package port

import (
	"context"
	"errors"
	"time"

	"adpilot/internal/core/domain"
)

// ErrInvalidStatus is returned when a caller asks for a status
// transition outside the allowed set.
var ErrInvalidStatus = errors.New("invalid task status")

// TaskCandidate is a recommendation ready for persistence, paired with
// the serialized metrics snapshot captured at generation time.
type TaskCandidate struct {
	Recommendation  domain.Recommendation
	MetricsSnapshot string
}

// TaskRepository is the outbound port for campaign data, trailing
// performance aggregates and optimization-task persistence. The
// repository exclusively owns task storage; the rules engine never
// touches it.
type TaskRepository interface {
	// ActiveCampaigns returns the user's campaigns in status ENABLED or
	// PAUSED, joined to the owning offer's pricing fields.
	ActiveCampaigns(ctx context.Context, userID int64) ([]domain.Campaign, error)

	// TrailingPerformance aggregates performance rows for the campaign
	// over the inclusive date range. Missing data yields zero totals,
	// not an error.
	TrailingPerformance(ctx context.Context, campaignID, userID int64, from, to time.Time) (domain.PerformanceTotals, error)

	// ActiveUserIDs returns every distinct user owning at least one
	// ENABLED or PAUSED campaign.
	ActiveUserIDs(ctx context.Context) ([]int64, error)

	// InsertTasks persists candidates as pending tasks, skipping any
	// whose (campaignID, taskType) key already exists among the user's
	// pending tasks created at or after dedupSince. The duplicate check
	// and the inserts run in a single transaction. Returns the number
	// of tasks inserted.
	InsertTasks(ctx context.Context, userID int64, candidates []TaskCandidate, dedupSince time.Time) (int, error)

	// UserTasks lists the user's tasks joined to campaign display
	// fields, optionally filtered by status, ordered by priority then
	// creation time descending.
	UserTasks(ctx context.Context, userID int64, status *domain.TaskStatus) ([]domain.TaskWithCampaign, error)

	// UpdateTaskStatus transitions one task scoped to (taskID, userID).
	// Rows already in a terminal state are never matched. Returns false
	// when nothing matched, which is not an error.
	UpdateTaskStatus(ctx context.Context, taskID, userID int64, status domain.TaskStatus, note *string) (bool, error)

	// UpdateCampaignTasks bulk-transitions the campaign's pending tasks
	// for the owning user and returns the number of rows affected.
	UpdateCampaignTasks(ctx context.Context, campaignID, userID int64, status domain.TaskStatus, note *string) (int64, error)

	// TaskStatistics aggregates the user's tasks over the trailing 30
	// days.
	TaskStatistics(ctx context.Context, userID int64) (domain.TaskStatistics, error)

	// CleanupOldTasks deletes tasks that reached a terminal state more
	// than 30 days ago, across all users. Returns the number deleted.
	CleanupOldTasks(ctx context.Context) (int64, error)
}
