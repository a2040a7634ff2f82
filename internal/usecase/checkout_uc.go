// File: internal/usecase/checkout_uc.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"chatcart/internal/domain"
	"chatcart/internal/domain/model"
	"chatcart/internal/domain/ports/adapter"
	"chatcart/internal/format"
	"chatcart/internal/infra/metrics"
)

// Compile-time check
var _ CheckoutUseCase = (*checkoutUC)(nil)

// Bot copy shown in the conversation log.
const (
	msgProductFound    = "Found it! Here's what I pulled up:"
	msgProductNotFound = "I couldn't find that product. Please check the URL and try again."
	msgLookupFailed    = "Something went wrong fetching that product. Please try again."
)

// PurchaseRequest is the transient product-card configuration at the moment
// the user takes an action. It is discarded afterwards; the card itself
// never closes, so repeated actions each arrive as a fresh request.
type PurchaseRequest struct {
	Name      string
	Price     model.Price
	Frequency model.Frequency
	Qty       int
}

// CheckoutUseCase converts a displayed product plus its transient purchase
// configuration into orders and subscriptions, and drives the product lookup
// conversation flow.
type CheckoutUseCase interface {
	// LookupProduct echoes the URL into the conversation log, resolves it
	// through the relay and appends the terminal entry: a product card on
	// success, a bot message on failure. Both failure modes resolve to a
	// stable logged outcome rather than an error.
	LookupProduct(ctx context.Context, productURL string) (*model.ConversationEntry, error)
	// Subscribe creates a subscription from the card. A one-time frequency
	// is rejected with domain.ErrOneTimeFrequency and the store is never
	// called.
	Subscribe(ctx context.Context, req PurchaseRequest) (*model.Subscription, error)
	// BuyNow places a one-time order. It never touches the subscription
	// store, regardless of the selected frequency.
	BuyNow(ctx context.Context, req PurchaseRequest) (*model.ConversationEntry, error)
}

type checkoutUC struct {
	lookup adapter.ProductLookupAdapter
	subs   SubscriptionUseCase
	conv   ConversationUseCase
	log    *zerolog.Logger
}

func NewCheckoutUseCase(lookup adapter.ProductLookupAdapter, subs SubscriptionUseCase, conv ConversationUseCase, logger *zerolog.Logger) *checkoutUC {
	l := logger.With().Str("component", "CheckoutUC").Logger()
	return &checkoutUC{lookup: lookup, subs: subs, conv: conv, log: &l}
}

func (c *checkoutUC) LookupProduct(ctx context.Context, productURL string) (*model.ConversationEntry, error) {
	if _, err := c.conv.AppendUser(ctx, productURL); err != nil {
		return nil, err
	}

	start := time.Now()
	product, err := c.lookup.Lookup(ctx, productURL)
	metrics.ObserveProductLookupLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			metrics.IncProductLookup("not_found")
			c.log.Info().Str("url", productURL).Msg("product not found")
			return c.conv.AppendBot(ctx, msgProductNotFound)
		}
		metrics.IncProductLookup("error")
		c.log.Error().Err(err).Str("url", productURL).Msg("product lookup failed")
		return c.conv.AppendBot(ctx, msgLookupFailed)
	}

	metrics.IncProductLookup("ok")
	return c.conv.AppendProduct(ctx, msgProductFound, product)
}

func (c *checkoutUC) Subscribe(ctx context.Context, req PurchaseRequest) (*model.Subscription, error) {
	if !req.Frequency.Recurring() {
		return nil, domain.ErrOneTimeFrequency
	}

	sub, err := c.subs.Create(ctx, req.Name, format.Price(req.Price), req.Frequency, req.Qty)
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf("You're now subscribed to %s (%s). Manage it in Subscriptions.",
		req.Name, format.FrequencyLabel(sub.Frequency))
	if _, err := c.conv.AppendBot(ctx, body); err != nil {
		return nil, err
	}
	return sub, nil
}

func (c *checkoutUC) BuyNow(ctx context.Context, req PurchaseRequest) (*model.ConversationEntry, error) {
	if req.Qty < 1 {
		return nil, domain.ErrInvalidArgument
	}
	c.log.Info().Str("name", req.Name).Int("qty", req.Qty).Msg("one-time order placed")
	body := fmt.Sprintf("Got it — one-time order for %dx %s placed!", req.Qty, req.Name)
	return c.conv.AppendBot(ctx, body)
}
