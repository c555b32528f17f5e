package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// Optimizer is the inbound port of the optimization core: task
// generation plus the task lifecycle operations. These seven methods
// are the entire external surface; UI and API layers consume nothing
// else. Mock implementations can be generated from this interface for
// testing.
type Optimizer interface {
	// GenerateTasksForUser assembles trailing-7-day metrics for the
	// user's active campaigns, runs the rules engine and persists the
	// surviving recommendations as pending tasks. Returns the number of
	// tasks inserted.
	GenerateTasksForUser(ctx context.Context, userID int64) (int, error)

	// GenerateWeeklyTasks runs GenerateTasksForUser for every user with
	// at least one active campaign. Users are processed concurrently
	// with a bounded pool; one user's failure never aborts the others.
	GenerateWeeklyTasks(ctx context.Context) (*SweepResult, error)

	// UserTasks lists the user's tasks, optionally filtered by status.
	UserTasks(ctx context.Context, userID int64, status *domain.TaskStatus) ([]domain.TaskWithCampaign, error)

	// UpdateTaskStatus transitions a single task. Only in_progress,
	// completed and dismissed are accepted; anything else returns
	// ErrInvalidStatus. A false return means no row matched.
	UpdateTaskStatus(ctx context.Context, taskID, userID int64, status domain.TaskStatus, note *string) (bool, error)

	// UpdateCampaignTasks bulk-completes or bulk-dismisses the
	// campaign's pending tasks and returns the affected count.
	UpdateCampaignTasks(ctx context.Context, campaignID, userID int64, status domain.TaskStatus, note *string) (int64, error)

	// TaskStatistics returns the user's trailing-30-day task counts.
	TaskStatistics(ctx context.Context, userID int64) (domain.TaskStatistics, error)

	// CleanupOldTasks removes tasks terminal for more than 30 days.
	CleanupOldTasks(ctx context.Context) (int64, error)
}

// SweepResult reports the outcome of a whole-system generation sweep.
// Failed maps user id to the error text for users whose processing
// failed; their absence from UserTasks is deliberate.
type SweepResult struct {
	TotalUsers int              `json:"totalUsers"`
	TotalTasks int              `json:"totalTasks"`
	UserTasks  map[int64]int    `json:"userTasks"`
	Failed     map[int64]string `json:"failed,omitempty"`
}
