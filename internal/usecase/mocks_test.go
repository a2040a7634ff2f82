//go:build !integration

package usecase_test

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"chatcart/internal/domain"
	"chatcart/internal/domain/model"
)

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

//
// ---------------- in-memory repo mocks with overridable hooks ----------------
//

type MockSubscriptionRepo struct {
	mu     sync.Mutex
	subs   []*model.Subscription
	nextID int64

	InsertFunc func(ctx context.Context, sub *model.Subscription) (*model.Subscription, error)
	UpdateFunc func(ctx context.Context, sub *model.Subscription) error
	DeleteFunc func(ctx context.Context, id int64) error
}

func NewMockSubscriptionRepo() *MockSubscriptionRepo {
	return &MockSubscriptionRepo{nextID: 1}
}

func (m *MockSubscriptionRepo) Insert(ctx context.Context, sub *model.Subscription) (*model.Subscription, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, sub)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *sub
	cp.ID = m.nextID
	m.nextID++
	m.subs = append([]*model.Subscription{&cp}, m.subs...)
	out := cp
	return &out, nil
}

func (m *MockSubscriptionRepo) FindByID(ctx context.Context, id int64) (*model.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.subs {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockSubscriptionRepo) Update(ctx context.Context, sub *model.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.subs {
		if s.ID == sub.ID {
			cp := *sub
			m.subs[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MockSubscriptionRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.subs {
		if s.ID == id {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MockSubscriptionRepo) List(ctx context.Context) ([]*model.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Subscription, 0, len(m.subs))
	for _, s := range m.subs {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MockSubscriptionRepo) CountByStatus(ctx context.Context) (map[model.SubscriptionStatus]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[model.SubscriptionStatus]int)
	for _, s := range m.subs {
		counts[s.Status]++
	}
	return counts, nil
}

type MockConversationRepo struct {
	mu      sync.Mutex
	entries []*model.ConversationEntry

	AppendFunc func(ctx context.Context, entry *model.ConversationEntry) error
}

func NewMockConversationRepo() *MockConversationRepo {
	return &MockConversationRepo{}
}

func (m *MockConversationRepo) Append(ctx context.Context, entry *model.ConversationEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *entry
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *MockConversationRepo) List(ctx context.Context) ([]*model.ConversationEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.ConversationEntry, 0, len(m.entries))
	for _, e := range m.entries {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

type MockPreferenceRepo struct {
	mu    sync.Mutex
	theme string

	GetFunc func(ctx context.Context) (string, error)
	SetFunc func(ctx context.Context, theme string) error
}

func NewMockPreferenceRepo() *MockPreferenceRepo {
	return &MockPreferenceRepo{}
}

func (m *MockPreferenceRepo) GetTheme(ctx context.Context) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.theme == "" {
		return "", domain.ErrNotFound
	}
	return m.theme, nil
}

func (m *MockPreferenceRepo) SetTheme(ctx context.Context, theme string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, theme)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = theme
	return nil
}

type MockLookupAdapter struct {
	LookupFunc func(ctx context.Context, productURL string) (*model.Product, error)
}

func (m *MockLookupAdapter) Lookup(ctx context.Context, productURL string) (*model.Product, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, productURL)
	}
	return nil, domain.ErrProductNotFound
}
