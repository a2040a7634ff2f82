package repository

import (
	"context"

	"chatcart/internal/domain/model"
)

// SubscriptionRepository owns the subscription collection. Implementations
// must assign ids in strictly increasing order and never reuse them, and
// must keep the visible list most-recent-first.
type SubscriptionRepository interface {
	// Insert assigns the next id, places the subscription at the front of
	// the list and returns the stored copy.
	Insert(ctx context.Context, sub *model.Subscription) (*model.Subscription, error)
	// FindByID returns a copy, or domain.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Subscription, error)
	// Update replaces the stored entity with the same id, or returns
	// domain.ErrNotFound.
	Update(ctx context.Context, sub *model.Subscription) error
	// Delete removes the entity permanently, or returns domain.ErrNotFound.
	Delete(ctx context.Context, id int64) error
	// List returns copies, most-recent-first.
	List(ctx context.Context) ([]*model.Subscription, error)
	// CountByStatus returns the number of subscriptions per status.
	CountByStatus(ctx context.Context) (map[model.SubscriptionStatus]int, error)
}
