package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// Seed inserts demo data into the adpilot database: a few offers and
// campaigns per demo user plus a week of performance rows, shaped so
// every optimizer rule has something to fire on (a dead campaign, a
// money burner, a high performer, a starved one and a fresh one).
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	type demoCampaign struct {
		name        string
		status      string
		ageDays     int
		impressions int64 // per day
		clicks      int64
		cost        float64
		conversions int64
	}
	demos := []demoCampaign{
		{"Dead CTR campaign", "ENABLED", 30, 8000, 10, 12, 0},
		{"Money burner", "ENABLED", 21, 3000, 40, 25, 0},
		{"High performer", "ENABLED", 45, 2000, 90, 20, 2},
		{"Starved campaign", "PAUSED", 14, 10, 1, 0.4, 0},
		{"Fresh launch", "ENABLED", 1, 500, 12, 4, 0},
	}

	for userID := int64(1); userID <= 2; userID++ {
		for i, d := range demos {
			offerID := (userID-1)*int64(len(demos)) + int64(i) + 1
			price := fmt.Sprintf("$%d.99", 29+r.Intn(70))
			payout := fmt.Sprintf("%d%%", 40+r.Intn(40))
			_, err := db.Exec(ctx, `INSERT INTO offers (id, product_price, commission_payout, created_at)
VALUES ($1,$2,$3,now()) ON CONFLICT DO NOTHING`, offerID, price, payout)
			if err != nil {
				return err
			}

			campaignID := offerID
			createdAt := time.Now().AddDate(0, 0, -d.ageDays)
			_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, user_id, offer_id, campaign_name, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now()) ON CONFLICT DO NOTHING`,
				campaignID, userID, offerID, fmt.Sprintf("%s (user %d)", d.name, userID), d.status, createdAt)
			if err != nil {
				return err
			}

			days := 7
			if d.ageDays < days {
				days = d.ageDays + 1
			}
			for day := 0; day < days; day++ {
				row := domain.PerformanceRow{
					CampaignID:  campaignID,
					UserID:      userID,
					Date:        time.Now().AddDate(0, 0, -day).Truncate(24 * time.Hour),
					Impressions: d.impressions + int64(r.Intn(50)),
					Clicks:      d.clicks,
					Cost:        d.cost,
					Conversions: d.conversions,
				}
				_, err = db.Exec(ctx, `INSERT INTO campaign_performance
    (campaign_id, user_id, date, impressions, clicks, cost, conversions)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
					row.CampaignID, row.UserID, row.Date,
					row.Impressions, row.Clicks, row.Cost, row.Conversions)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
