// Package memory holds the process-local repositories. Subscription state
// deliberately lives only for the lifetime of the process.
package memory

import (
	"context"
	"sync"

	"chatcart/internal/domain"
	"chatcart/internal/domain/model"
	"chatcart/internal/domain/ports/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo keeps subscriptions in insertion order, newest first.
// Ids are strictly increasing and never reused within a process.
type SubscriptionRepo struct {
	mu     sync.RWMutex
	subs   []*model.Subscription
	nextID int64
}

func NewSubscriptionRepo() *SubscriptionRepo {
	return &SubscriptionRepo{nextID: 1}
}

func (r *SubscriptionRepo) Insert(ctx context.Context, sub *model.Subscription) (*model.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *sub
	cp.ID = r.nextID
	r.nextID++
	r.subs = append([]*model.Subscription{&cp}, r.subs...)

	out := cp
	return &out, nil
}

func (r *SubscriptionRepo) FindByID(ctx context.Context, id int64) (*model.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.subs {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *SubscriptionRepo) Update(ctx context.Context, sub *model.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subs {
		if s.ID == sub.ID {
			cp := *sub
			r.subs[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *SubscriptionRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subs {
		if s.ID == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *SubscriptionRepo) List(ctx context.Context) ([]*model.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Subscription, 0, len(r.subs))
	for _, s := range r.subs {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *SubscriptionRepo) CountByStatus(ctx context.Context) (map[model.SubscriptionStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[model.SubscriptionStatus]int)
	for _, s := range r.subs {
		counts[s.Status]++
	}
	return counts, nil
}
