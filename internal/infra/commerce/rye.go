// Package commerce talks to the upstream commerce API that resolves product
// URLs into structured product records.
package commerce

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"chatcart/internal/domain"
	"chatcart/internal/domain/model"
	"chatcart/internal/domain/ports/adapter"
)

const defaultBaseURL = "https://api.rye.com/api/v1"

var _ adapter.ProductLookupAdapter = (*RyeAdapter)(nil)

// RyeAdapter resolves product URLs through Rye's lookup endpoint.
type RyeAdapter struct {
	baseURL string
	auth    string
	client  *http.Client
	log     *zerolog.Logger
}

func NewRyeAdapter(apiKey, baseURL string, timeout time.Duration, logger *zerolog.Logger) *RyeAdapter {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	l := logger.With().Str("component", "RyeAdapter").Logger()
	return &RyeAdapter{
		baseURL: baseURL,
		// Rye uses basic auth with the API key as username and no password.
		auth:   "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+":")),
		client: &http.Client{Timeout: timeout},
		log:    &l,
	}
}

func (a *RyeAdapter) Lookup(ctx context.Context, productURL string) (*model.Product, error) {
	endpoint := fmt.Sprintf("%s/products/lookup?url=%s", a.baseURL, url.QueryEscape(productURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}
	req.Header.Set("Authorization", a.auth)

	a.log.Debug().Str("url", productURL).Msg("upstream lookup")
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrProductNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: upstream status %d", domain.ErrLookupFailed, resp.StatusCode)
	}

	var product model.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrLookupFailed, err)
	}
	return &product, nil
}
