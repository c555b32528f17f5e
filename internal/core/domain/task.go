package domain

import "time"

// TaskStatus is the lifecycle state of an optimization task. A task is
// created as pending and ends in completed or dismissed; terminal
// states are never left again.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusDismissed  TaskStatus = "dismissed"
)

// Valid reports whether s is one of the four known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusDismissed:
		return true
	}
	return false
}

// Terminal reports whether s is a terminal state.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusDismissed
}

// OptimizationTask is a durable, user-owned unit of optimization work
// produced from a recommendation. MetricsSnapshot is the serialized
// MetricsSnapshot captured at generation time and is immutable after
// insert.
type OptimizationTask struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"userId"`
	CampaignID      int64      `json:"campaignId"`
	TaskType        ActionType `json:"taskType"`
	Priority        Priority   `json:"priority"`
	Reason          string     `json:"reason"`
	Action          string     `json:"action"`
	ExpectedImpact  string     `json:"expectedImpact"`
	MetricsSnapshot string     `json:"metricsSnapshot"`
	Status          TaskStatus `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	CompletedAt     *time.Time `json:"completedAt"`
	DismissedAt     *time.Time `json:"dismissedAt"`
	CompletionNote  *string    `json:"completionNote"`
}

// TaskWithCampaign joins a task to its owning campaign's display
// fields for list endpoints.
type TaskWithCampaign struct {
	OptimizationTask
	CampaignName   string `json:"campaignName"`
	CampaignStatus string `json:"campaignStatus"`
}

// TaskStatistics aggregates a user's tasks over the trailing 30 days.
// ByPriority counts pending tasks only.
type TaskStatistics struct {
	Total      int64         `json:"total"`
	Pending    int64         `json:"pending"`
	InProgress int64         `json:"inProgress"`
	Completed  int64         `json:"completed"`
	Dismissed  int64         `json:"dismissed"`
	ByPriority PriorityCount `json:"byPriority"`
}

// PriorityCount breaks a task count down by priority.
type PriorityCount struct {
	High   int64 `json:"high"`
	Medium int64 `json:"medium"`
	Low    int64 `json:"low"`
}

// TaskKey identifies a (campaign, action) pair within the dedup
// window. Two pending tasks with the same key within the window are
// considered duplicates.
type TaskKey struct {
	CampaignID int64
	TaskType   ActionType
}
