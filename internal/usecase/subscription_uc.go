// File: internal/usecase/subscription_uc.go
package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"chatcart/internal/domain"
	"chatcart/internal/domain/model"
	"chatcart/internal/domain/ports/repository"
	"chatcart/internal/infra/metrics"
)

// Compile-time check
var _ SubscriptionUseCase = (*subscriptionUC)(nil)

// SubscriptionUseCase is the sole owner and mutator of the subscription
// collection. Every mutation notifies the registered change listeners so the
// view layer can re-render the whole list.
//
// Mutations of an unknown id return domain.ErrNotFound and never touch
// state; callers decide whether to surface that.
type SubscriptionUseCase interface {
	Create(ctx context.Context, name, price string, freq model.Frequency, qty int) (*model.Subscription, error)
	TogglePause(ctx context.Context, id int64) (*model.Subscription, error)
	// Cancel removes the subscription permanently. confirmed=false means the
	// user declined the confirmation prompt: nothing changes and the first
	// return value is false.
	Cancel(ctx context.Context, id int64, confirmed bool) (bool, error)
	SetFrequency(ctx context.Context, id int64, freq model.Frequency) (*model.Subscription, error)
	List(ctx context.Context) ([]*model.Subscription, error)
	CountByStatus(ctx context.Context) (map[model.SubscriptionStatus]int, error)
	// OnChange registers a listener invoked synchronously after every
	// applied mutation.
	OnChange(fn func())
}

type subscriptionUC struct {
	repo repository.SubscriptionRepository
	log  *zerolog.Logger

	mu        sync.RWMutex
	listeners []func()
}

func NewSubscriptionUseCase(repo repository.SubscriptionRepository, logger *zerolog.Logger) *subscriptionUC {
	l := logger.With().Str("component", "SubscriptionUC").Logger()
	return &subscriptionUC{repo: repo, log: &l}
}

func (uc *subscriptionUC) OnChange(fn func()) {
	if fn == nil {
		return
	}
	uc.mu.Lock()
	uc.listeners = append(uc.listeners, fn)
	uc.mu.Unlock()
}

func (uc *subscriptionUC) notify() {
	uc.mu.RLock()
	listeners := uc.listeners
	uc.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}

func (uc *subscriptionUC) Create(ctx context.Context, name, price string, freq model.Frequency, qty int) (*model.Subscription, error) {
	sub, err := model.NewSubscription(name, price, freq, qty, time.Now())
	if err != nil {
		return nil, err
	}
	stored, err := uc.repo.Insert(ctx, sub)
	if err != nil {
		return nil, err
	}
	metrics.IncSubscriptionAction("create")
	uc.log.Info().Int64("id", stored.ID).Str("frequency", string(stored.Frequency)).Msg("subscription created")
	uc.notify()
	return stored, nil
}

func (uc *subscriptionUC) TogglePause(ctx context.Context, id int64) (*model.Subscription, error) {
	sub, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sub.TogglePause()
	if err := uc.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	if sub.Status == model.SubscriptionStatusPaused {
		metrics.IncSubscriptionAction("pause")
	} else {
		metrics.IncSubscriptionAction("resume")
	}
	uc.log.Info().Int64("id", id).Str("status", string(sub.Status)).Msg("subscription toggled")
	uc.notify()
	return sub, nil
}

func (uc *subscriptionUC) Cancel(ctx context.Context, id int64, confirmed bool) (bool, error) {
	if !confirmed {
		uc.log.Debug().Int64("id", id).Msg("cancel declined")
		return false, nil
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return false, err
	}
	metrics.IncSubscriptionAction("cancel")
	uc.log.Info().Int64("id", id).Msg("subscription cancelled")
	uc.notify()
	return true, nil
}

func (uc *subscriptionUC) SetFrequency(ctx context.Context, id int64, freq model.Frequency) (*model.Subscription, error) {
	if !freq.Recurring() {
		return nil, domain.ErrInvalidArgument
	}
	sub, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sub.Reschedule(freq, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	metrics.IncSubscriptionAction("reschedule")
	uc.log.Info().Int64("id", id).Str("frequency", string(freq)).Msg("subscription rescheduled")
	uc.notify()
	return sub, nil
}

func (uc *subscriptionUC) List(ctx context.Context) ([]*model.Subscription, error) {
	return uc.repo.List(ctx)
}

func (uc *subscriptionUC) CountByStatus(ctx context.Context) (map[model.SubscriptionStatus]int, error) {
	return uc.repo.CountByStatus(ctx)
}
