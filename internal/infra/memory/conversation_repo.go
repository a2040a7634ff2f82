package memory

import (
	"context"
	"sync"

	"chatcart/internal/domain/model"
	"chatcart/internal/domain/ports/repository"
)

var _ repository.ConversationRepository = (*ConversationRepo)(nil)

// ConversationRepo is the append-only conversation log, oldest first.
type ConversationRepo struct {
	mu      sync.RWMutex
	entries []*model.ConversationEntry
}

func NewConversationRepo() *ConversationRepo {
	return &ConversationRepo{}
}

func (r *ConversationRepo) Append(ctx context.Context, entry *model.ConversationEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *ConversationRepo) List(ctx context.Context) ([]*model.ConversationEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.ConversationEntry, 0, len(r.entries))
	for _, e := range r.entries {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}
