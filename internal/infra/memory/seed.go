package memory

import (
	"context"
	"time"

	"chatcart/internal/domain/model"
)

// SeedSubscriptions loads the demo subscriptions used for local development
// so the subscriptions view is not empty on first run.
func SeedSubscriptions(ctx context.Context, repo *SubscriptionRepo) error {
	now := time.Now()
	demo := []struct {
		name   string
		price  string
		freq   model.Frequency
		qty    int
		paused bool
	}{
		{"AG1 Athletic Greens", "$79.00", model.FrequencyMonthly, 1, false},
		{"Hims Daily Vitamins", "$34.00", model.FrequencyBiweekly, 2, false},
		{"Soylent Complete Powder", "$55.00", model.FrequencyWeekly, 1, true},
	}

	// Insert in reverse so the first demo item ends up at the front.
	for i := len(demo) - 1; i >= 0; i-- {
		d := demo[i]
		sub, err := model.NewSubscription(d.name, d.price, d.freq, d.qty, now)
		if err != nil {
			return err
		}
		stored, err := repo.Insert(ctx, sub)
		if err != nil {
			return err
		}
		if d.paused {
			stored.TogglePause()
			if err := repo.Update(ctx, stored); err != nil {
				return err
			}
		}
	}
	return nil
}
