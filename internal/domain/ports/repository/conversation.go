package repository

import (
	"context"

	"chatcart/internal/domain/model"
)

// ConversationRepository is the append-only conversation log.
type ConversationRepository interface {
	Append(ctx context.Context, entry *model.ConversationEntry) error
	// List returns entries oldest first.
	List(ctx context.Context) ([]*model.ConversationEntry, error)
}
