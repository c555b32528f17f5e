package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/rules"
)

const (
	// trailingWindow is the metrics aggregation range and at the same
	// time the dedup window for pending tasks.
	trailingWindow = 7 * 24 * time.Hour

	defaultWorkerLimit = 4
)

// numberPattern extracts the first numeric run from raw pricing fields
// such as "$49.99" or "70%".
var numberPattern = regexp.MustCompile(`[\d.]+`)

// Optimizer bridges the rules engine to durable task storage. It owns
// metrics assembly (ratio guards, conversion value, campaign age) and
// the batch sweep; all persistence goes through the repository port.
type Optimizer struct {
	repo   port.TaskRepository
	engine *rules.Engine
	logger *slog.Logger

	// workerLimit bounds the per-user concurrency of the weekly sweep.
	workerLimit int
}

// NewOptimizer creates the optimizer service. workerLimit <= 0 falls
// back to a small default.
func NewOptimizer(repo port.TaskRepository, engine *rules.Engine, logger *slog.Logger, workerLimit int) *Optimizer {
	if workerLimit <= 0 {
		workerLimit = defaultWorkerLimit
	}
	return &Optimizer{repo: repo, engine: engine, logger: logger, workerLimit: workerLimit}
}

// GenerateTasksForUser aggregates trailing-7-day metrics for the user's
// active campaigns, runs the rules engine and persists surviving
// recommendations as pending tasks. Returns the number inserted.
func (o *Optimizer) GenerateTasksForUser(ctx context.Context, userID int64) (int, error) {
	campaigns, err := o.repo.ActiveCampaigns(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(campaigns) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	from := dateOf(now.Add(-trailingWindow))

	metrics := make([]domain.CampaignMetrics, 0, len(campaigns))
	byCampaign := make(map[int64]domain.CampaignMetrics, len(campaigns))
	for _, c := range campaigns {
		totals, err := o.repo.TrailingPerformance(ctx, c.ID, userID, from, now)
		if err != nil {
			return 0, err
		}
		m := o.assembleMetrics(c, totals, now)
		metrics = append(metrics, m)
		byCampaign[c.ID] = m
	}

	recs := o.engine.GenerateBatchRecommendations(metrics)
	if len(recs) == 0 {
		return 0, nil
	}

	candidates := make([]port.TaskCandidate, 0, len(recs))
	for _, rec := range recs {
		m, ok := byCampaign[rec.CampaignID]
		if !ok {
			continue
		}
		snapshot, err := json.Marshal(m.Snapshot(now))
		if err != nil {
			return 0, err
		}
		candidates = append(candidates, port.TaskCandidate{
			Recommendation:  rec,
			MetricsSnapshot: string(snapshot),
		})
	}

	inserted, err := o.repo.InsertTasks(ctx, userID, candidates, from)
	if err != nil {
		return 0, err
	}
	o.logger.Info("optimization tasks generated",
		slog.Int64("user_id", userID),
		slog.Int("campaigns", len(campaigns)),
		slog.Int("recommendations", len(recs)),
		slog.Int("inserted", inserted))
	return inserted, nil
}

// GenerateWeeklyTasks runs the per-user generation for every user with
// an active campaign. Users are processed by a bounded worker pool and
// failures are isolated per user: a failed user is reported in the
// result, never propagated as the sweep's error.
func (o *Optimizer) GenerateWeeklyTasks(ctx context.Context) (*port.SweepResult, error) {
	users, err := o.repo.ActiveUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	o.logger.Info("weekly optimization sweep started",
		slog.String("run_id", runID), slog.Int("users", len(users)))

	result := &port.SweepResult{
		TotalUsers: len(users),
		UserTasks:  make(map[int64]int, len(users)),
		Failed:     make(map[int64]string),
	}

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.workerLimit)
	for _, userID := range users {
		userID := userID
		g.Go(func() error {
			count, err := o.GenerateTasksForUser(gCtx, userID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed[userID] = err.Error()
				o.logger.Error("user sweep failed",
					slog.String("run_id", runID),
					slog.Int64("user_id", userID),
					slog.Any("error", err))
				return nil
			}
			result.UserTasks[userID] = count
			result.TotalTasks += count
			return nil
		})
	}
	_ = g.Wait()

	o.logger.Info("weekly optimization sweep finished",
		slog.String("run_id", runID),
		slog.Int("total_tasks", result.TotalTasks),
		slog.Int("failed_users", len(result.Failed)))
	return result, nil
}

// UserTasks lists the user's tasks, optionally filtered by status.
func (o *Optimizer) UserTasks(ctx context.Context, userID int64, status *domain.TaskStatus) ([]domain.TaskWithCampaign, error) {
	return o.repo.UserTasks(ctx, userID, status)
}

// UpdateTaskStatus transitions a single task. Only in_progress,
// completed and dismissed may be set through the API; pending exists
// solely at creation.
func (o *Optimizer) UpdateTaskStatus(ctx context.Context, taskID, userID int64, status domain.TaskStatus, note *string) (bool, error) {
	switch status {
	case domain.TaskStatusInProgress, domain.TaskStatusCompleted, domain.TaskStatusDismissed:
	default:
		return false, port.ErrInvalidStatus
	}
	return o.repo.UpdateTaskStatus(ctx, taskID, userID, status, note)
}

// UpdateCampaignTasks bulk-transitions the campaign's pending tasks to
// completed or dismissed.
func (o *Optimizer) UpdateCampaignTasks(ctx context.Context, campaignID, userID int64, status domain.TaskStatus, note *string) (int64, error) {
	if !status.Terminal() {
		return 0, port.ErrInvalidStatus
	}
	return o.repo.UpdateCampaignTasks(ctx, campaignID, userID, status, note)
}

// TaskStatistics returns the user's trailing-30-day task counts.
func (o *Optimizer) TaskStatistics(ctx context.Context, userID int64) (domain.TaskStatistics, error) {
	return o.repo.TaskStatistics(ctx, userID)
}

// CleanupOldTasks deletes tasks terminal for more than 30 days.
func (o *Optimizer) CleanupOldTasks(ctx context.Context) (int64, error) {
	return o.repo.CleanupOldTasks(ctx)
}

// assembleMetrics derives the ratio metrics the rules read, guarding
// every division against zero denominators.
func (o *Optimizer) assembleMetrics(c domain.Campaign, t domain.PerformanceTotals, now time.Time) domain.CampaignMetrics {
	m := domain.CampaignMetrics{
		CampaignID:   c.ID,
		CampaignName: c.Name,
		Status:       c.Status,
		Impressions:  t.Impressions,
		Clicks:       t.Clicks,
		Cost:         t.Cost,
		Conversions:  t.Conversions,
		DaysRunning:  int(now.Sub(c.CreatedAt).Hours() / 24),
	}
	if t.Impressions > 0 {
		m.CTR = float64(t.Clicks) / float64(t.Impressions)
	}
	if t.Clicks > 0 {
		m.CPC = t.Cost / float64(t.Clicks)
		m.ConvRate = float64(t.Conversions) / float64(t.Clicks)
	}
	if t.Conversions > 0 {
		m.CPA = t.Cost / float64(t.Conversions)
	}

	m.ConversionValue, m.ConversionValueSource = o.conversionValue(c)
	if t.Cost > 0 {
		m.ROI = (float64(t.Conversions)*m.ConversionValue - t.Cost) / t.Cost
	}
	return m
}

// conversionValue derives the per-conversion value from the offer's
// product price and commission payout. When either field is missing or
// unparsable the fixed default applies; that degraded estimate is
// logged so it is never silently conflated with a derived figure.
func (o *Optimizer) conversionValue(c domain.Campaign) (float64, string) {
	if c.ProductPrice != nil && c.CommissionPayout != nil {
		price := firstNumber(*c.ProductPrice)
		payout := firstNumber(*c.CommissionPayout) / 100
		if price > 0 && payout > 0 {
			return price * payout, domain.ConversionValueDerived
		}
	}
	o.logger.Warn("conversion value falls back to default estimate",
		slog.Int64("campaign_id", c.ID),
		slog.Float64("default", domain.DefaultConversionValue))
	return domain.DefaultConversionValue, domain.ConversionValueEstimated
}

// dateOf truncates t to the start of its UTC day. Performance rows are
// keyed by calendar date, so the trailing range must start at a date
// boundary to include the whole day seven days back.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// firstNumber parses the first numeric run in s, returning 0 when none
// parses.
func firstNumber(s string) float64 {
	match := numberPattern.FindString(s)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return v
}
