package adapter

import (
	"context"

	"chatcart/internal/domain/model"
)

// ProductLookupAdapter resolves a product URL to a structured product record
// through the upstream commerce API. A URL that does not resolve to a
// product yields domain.ErrProductNotFound; any other upstream failure is
// wrapped in domain.ErrLookupFailed.
type ProductLookupAdapter interface {
	Lookup(ctx context.Context, productURL string) (*model.Product, error)
}
