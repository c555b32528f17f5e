package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// TaskRepository implements port.TaskRepository using pgxpool for
// PostgreSQL.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a new repository instance.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// ActiveCampaigns returns the user's ENABLED/PAUSED campaigns joined to
// offer pricing.
func (r *TaskRepository) ActiveCampaigns(ctx context.Context, userID int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT
            c.id,
            c.user_id,
            c.campaign_name,
            c.status,
            c.created_at,
            o.product_price,
            o.commission_payout
        FROM campaigns c
        LEFT JOIN offers o ON c.offer_id = o.id
        WHERE c.user_id = $1
          AND c.status IN ($2, $3)`,
		userID, domain.CampaignStatusEnabled, domain.CampaignStatusPaused)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Status, &c.CreatedAt, &c.ProductPrice, &c.CommissionPayout)
		return c, err
	})
}

// TrailingPerformance aggregates performance rows over the inclusive
// date range. Campaigns without data yield zero totals.
func (r *TaskRepository) TrailingPerformance(ctx context.Context, campaignID, userID int64, from, to time.Time) (domain.PerformanceTotals, error) {
	var t domain.PerformanceTotals
	err := r.pool.QueryRow(ctx, `
        SELECT
            COALESCE(SUM(impressions), 0),
            COALESCE(SUM(clicks), 0),
            COALESCE(SUM(cost), 0),
            COALESCE(SUM(conversions), 0)
        FROM campaign_performance
        WHERE campaign_id = $1 AND user_id = $2 AND date >= $3 AND date <= $4`,
		campaignID, userID, from, to).
		Scan(&t.Impressions, &t.Clicks, &t.Cost, &t.Conversions)
	return t, err
}

// ActiveUserIDs returns every user owning at least one active campaign.
func (r *TaskRepository) ActiveUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT DISTINCT user_id FROM campaigns WHERE status IN ($1, $2)`,
		domain.CampaignStatusEnabled, domain.CampaignStatusPaused)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (int64, error) {
		var id int64
		err := row.Scan(&id)
		return id, err
	})
}

// InsertTasks persists candidates as pending tasks, skipping keys
// already pending within the dedup window. The duplicate check and the
// inserts share one transaction so overlapping generation runs for the
// same user cannot interleave between check and insert.
func (r *TaskRepository) InsertTasks(ctx context.Context, userID int64, candidates []port.TaskCandidate, dedupSince time.Time) (int, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	rows, err := tx.Query(ctx, `
        SELECT campaign_id, task_type
        FROM optimization_tasks
        WHERE user_id = $1 AND status = $2 AND created_at >= $3`,
		userID, domain.TaskStatusPending, dedupSince)
	if err != nil {
		return 0, err
	}
	keys, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TaskKey, error) {
		var k domain.TaskKey
		err := row.Scan(&k.CampaignID, &k.TaskType)
		return k, err
	})
	if err != nil {
		return 0, err
	}
	existing := make(map[domain.TaskKey]struct{}, len(keys))
	for _, k := range keys {
		existing[k] = struct{}{}
	}

	inserted := 0
	now := time.Now().UTC()
	for _, cand := range filterNewCandidates(existing, candidates) {
		rec := cand.Recommendation
		_, err = tx.Exec(ctx, `
            INSERT INTO optimization_tasks
                (user_id, campaign_id, task_type, priority, reason, action, expected_impact, metrics_snapshot, status, created_at)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			userID, rec.CampaignID, rec.Type, rec.Priority, rec.Reason, rec.Action,
			rec.ExpectedImpact, cand.MetricsSnapshot, domain.TaskStatusPending, now)
		if err != nil {
			return 0, err
		}
		inserted++
	}
	return inserted, nil
}

// filterNewCandidates returns the candidates whose (campaign, type) key
// is not in existing. Kept keys are recorded in existing as they pass,
// so duplicates within a single batch collapse to the first occurrence.
func filterNewCandidates(existing map[domain.TaskKey]struct{}, candidates []port.TaskCandidate) []port.TaskCandidate {
	kept := make([]port.TaskCandidate, 0, len(candidates))
	for _, cand := range candidates {
		key := domain.TaskKey{CampaignID: cand.Recommendation.CampaignID, TaskType: cand.Recommendation.Type}
		if _, ok := existing[key]; ok {
			continue
		}
		existing[key] = struct{}{}
		kept = append(kept, cand)
	}
	return kept
}

// UserTasks lists the user's tasks joined to campaign display fields,
// ordered by priority then creation time descending.
func (r *TaskRepository) UserTasks(ctx context.Context, userID int64, status *domain.TaskStatus) ([]domain.TaskWithCampaign, error) {
	args := []interface{}{userID}
	whereStatus := ""
	if status != nil {
		whereStatus = "AND t.status = $2"
		args = append(args, *status)
	}
	query := fmt.Sprintf(`
        SELECT
            t.id, t.user_id, t.campaign_id, t.task_type, t.priority,
            t.reason, t.action, t.expected_impact, t.metrics_snapshot,
            t.status, t.created_at, t.completed_at, t.dismissed_at, t.completion_note,
            c.campaign_name, c.status
        FROM optimization_tasks t
        JOIN campaigns c ON t.campaign_id = c.id
        WHERE t.user_id = $1 %s
        ORDER BY
            CASE t.priority
                WHEN 'high' THEN 0
                WHEN 'medium' THEN 1
                WHEN 'low' THEN 2
            END,
            t.created_at DESC`, whereStatus)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TaskWithCampaign, error) {
		var t domain.TaskWithCampaign
		err := row.Scan(
			&t.ID, &t.UserID, &t.CampaignID, &t.TaskType, &t.Priority,
			&t.Reason, &t.Action, &t.ExpectedImpact, &t.MetricsSnapshot,
			&t.Status, &t.CreatedAt, &t.CompletedAt, &t.DismissedAt, &t.CompletionNote,
			&t.CampaignName, &t.CampaignStatus,
		)
		return t, err
	})
}

// UpdateTaskStatus transitions one task scoped to its owner. Terminal
// rows are excluded from the match, so completed and dismissed tasks
// stay frozen. Zero rows matched returns (false, nil).
func (r *TaskRepository) UpdateTaskStatus(ctx context.Context, taskID, userID int64, status domain.TaskStatus, note *string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE optimization_tasks
        SET status = $1,
            completed_at = CASE WHEN $1 = 'completed' THEN now() ELSE completed_at END,
            dismissed_at = CASE WHEN $1 = 'dismissed' THEN now() ELSE dismissed_at END,
            completion_note = $2
        WHERE id = $3 AND user_id = $4
          AND status IN ('pending', 'in_progress')`,
		status, note, taskID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateCampaignTasks bulk-transitions only the campaign's pending
// tasks; in_progress tasks are left for the single-task API.
func (r *TaskRepository) UpdateCampaignTasks(ctx context.Context, campaignID, userID int64, status domain.TaskStatus, note *string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE optimization_tasks
        SET status = $1,
            completed_at = CASE WHEN $1 = 'completed' THEN now() ELSE completed_at END,
            dismissed_at = CASE WHEN $1 = 'dismissed' THEN now() ELSE dismissed_at END,
            completion_note = $2
        WHERE campaign_id = $3 AND user_id = $4 AND status = $5`,
		status, note, campaignID, userID, domain.TaskStatusPending)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// TaskStatistics aggregates the user's tasks over the trailing 30
// days. The by-priority breakdown covers pending tasks only.
func (r *TaskRepository) TaskStatistics(ctx context.Context, userID int64) (domain.TaskStatistics, error) {
	var s domain.TaskStatistics
	err := r.pool.QueryRow(ctx, `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status = 'pending'),
            COUNT(*) FILTER (WHERE status = 'in_progress'),
            COUNT(*) FILTER (WHERE status = 'completed'),
            COUNT(*) FILTER (WHERE status = 'dismissed'),
            COUNT(*) FILTER (WHERE status = 'pending' AND priority = 'high'),
            COUNT(*) FILTER (WHERE status = 'pending' AND priority = 'medium'),
            COUNT(*) FILTER (WHERE status = 'pending' AND priority = 'low')
        FROM optimization_tasks
        WHERE user_id = $1
          AND created_at >= now() - interval '30 days'`,
		userID).
		Scan(&s.Total, &s.Pending, &s.InProgress, &s.Completed, &s.Dismissed,
			&s.ByPriority.High, &s.ByPriority.Medium, &s.ByPriority.Low)
	return s, err
}

// CleanupOldTasks deletes tasks that reached a terminal state more than
// 30 days ago. Global, not user-scoped.
func (r *TaskRepository) CleanupOldTasks(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
        DELETE FROM optimization_tasks
        WHERE status IN ('completed', 'dismissed')
          AND (
            completed_at < now() - interval '30 days'
            OR dismissed_at < now() - interval '30 days'
          )`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
