package redis

import (
	"context"
	"errors"

	goredis "github.com/go-redis/redis/v8"

	"chatcart/internal/domain"
	"chatcart/internal/domain/ports/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

const themeKey = "pref:theme"

// PreferenceRepo persists the theme preference in Redis so it survives
// process restarts. No TTL: the preference lives until changed.
type PreferenceRepo struct {
	client RedisClient
}

func NewPreferenceRepo(client RedisClient) *PreferenceRepo {
	return &PreferenceRepo{client: client}
}

func (r *PreferenceRepo) GetTheme(ctx context.Context) (string, error) {
	theme, err := r.client.Get(ctx, themeKey)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return theme, nil
}

func (r *PreferenceRepo) SetTheme(ctx context.Context, theme string) error {
	return r.client.Set(ctx, themeKey, theme, 0)
}
