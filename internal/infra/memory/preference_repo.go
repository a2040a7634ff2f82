package memory

import (
	"context"
	"sync"

	"chatcart/internal/domain"
	"chatcart/internal/domain/ports/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

// PreferenceRepo is the fallback theme store used when redis is not
// configured. The preference then lives only as long as the process.
type PreferenceRepo struct {
	mu    sync.RWMutex
	theme string
}

func NewPreferenceRepo() *PreferenceRepo {
	return &PreferenceRepo{}
}

func (r *PreferenceRepo) GetTheme(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.theme == "" {
		return "", domain.ErrNotFound
	}
	return r.theme, nil
}

func (r *PreferenceRepo) SetTheme(ctx context.Context, theme string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.theme = theme
	return nil
}
