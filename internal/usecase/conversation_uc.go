// File: internal/usecase/conversation_uc.go
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"chatcart/internal/domain"
	"chatcart/internal/domain/model"
	"chatcart/internal/domain/ports/repository"
)

// Compile-time check
var _ ConversationUseCase = (*conversationUC)(nil)

// ConversationUseCase is the append-only conversation log consumed by the
// chat view.
type ConversationUseCase interface {
	AppendUser(ctx context.Context, body string) (*model.ConversationEntry, error)
	AppendBot(ctx context.Context, body string) (*model.ConversationEntry, error)
	AppendProduct(ctx context.Context, body string, product *model.Product) (*model.ConversationEntry, error)
	History(ctx context.Context) ([]*model.ConversationEntry, error)
}

type conversationUC struct {
	entries repository.ConversationRepository
}

func NewConversationUseCase(entries repository.ConversationRepository) *conversationUC {
	return &conversationUC{entries: entries}
}

func (c *conversationUC) append(ctx context.Context, kind model.EntryKind, body string, product *model.Product) (*model.ConversationEntry, error) {
	entry := &model.ConversationEntry{
		ID:        ulid.Make().String(),
		Kind:      kind,
		Body:      body,
		Product:   product,
		CreatedAt: time.Now(),
	}
	if err := c.entries.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (c *conversationUC) AppendUser(ctx context.Context, body string) (*model.ConversationEntry, error) {
	if strings.TrimSpace(body) == "" {
		return nil, domain.ErrInvalidArgument
	}
	return c.append(ctx, model.EntryKindUser, body, nil)
}

func (c *conversationUC) AppendBot(ctx context.Context, body string) (*model.ConversationEntry, error) {
	return c.append(ctx, model.EntryKindBot, body, nil)
}

func (c *conversationUC) AppendProduct(ctx context.Context, body string, product *model.Product) (*model.ConversationEntry, error) {
	if product == nil {
		return nil, domain.ErrInvalidArgument
	}
	return c.append(ctx, model.EntryKindProduct, body, product)
}

func (c *conversationUC) History(ctx context.Context) ([]*model.ConversationEntry, error) {
	return c.entries.List(ctx)
}
