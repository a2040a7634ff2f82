//go:build !integration

package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"chatcart/internal/domain"
	"chatcart/internal/domain/model"
	"chatcart/internal/usecase"
)

func newCheckout(lookup *MockLookupAdapter) (usecase.CheckoutUseCase, usecase.SubscriptionUseCase, usecase.ConversationUseCase) {
	subUC := usecase.NewSubscriptionUseCase(NewMockSubscriptionRepo(), newTestLogger())
	convUC := usecase.NewConversationUseCase(NewMockConversationRepo())
	if lookup == nil {
		lookup = &MockLookupAdapter{}
	}
	return usecase.NewCheckoutUseCase(lookup, subUC, convUC, newTestLogger()), subUC, convUC
}

func TestCheckoutUseCase_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("one-time frequency never reaches the store", func(t *testing.T) {
		uc, subUC, _ := newCheckout(nil)

		_, err := uc.Subscribe(ctx, usecase.PurchaseRequest{
			Name:      "Widget",
			Price:     model.Price{AmountSubunits: 1000, CurrencyCode: "USD"},
			Frequency: model.FrequencyOneTime,
			Qty:       2,
		})
		if !errors.Is(err, domain.ErrOneTimeFrequency) {
			t.Fatalf("expected ErrOneTimeFrequency, got %v", err)
		}
		list, _ := subUC.List(ctx)
		if len(list) != 0 {
			t.Errorf("store must stay empty, got %d entries", len(list))
		}
	})

	t.Run("recurring frequency creates a subscription with the formatted price", func(t *testing.T) {
		uc, subUC, convUC := newCheckout(nil)

		sub, err := uc.Subscribe(ctx, usecase.PurchaseRequest{
			Name:      "AG1 Athletic Greens",
			Price:     model.Price{AmountSubunits: 7900, CurrencyCode: "USD"},
			Frequency: model.FrequencyMonthly,
			Qty:       1,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(sub.Price, "79.00") {
			t.Errorf("expected formatted display price, got %q", sub.Price)
		}

		list, _ := subUC.List(ctx)
		if len(list) != 1 || list[0].ID != sub.ID {
			t.Fatalf("expected the new subscription in the store")
		}

		history, _ := convUC.History(ctx)
		if len(history) != 1 || history[0].Kind != model.EntryKindBot {
			t.Fatalf("expected a bot confirmation entry, got %d entries", len(history))
		}
		if !strings.Contains(history[0].Body, "AG1 Athletic Greens") || !strings.Contains(history[0].Body, "Monthly") {
			t.Errorf("unexpected confirmation copy: %q", history[0].Body)
		}
	})

	t.Run("repeated subscribes from the same card each create a subscription", func(t *testing.T) {
		uc, subUC, _ := newCheckout(nil)
		req := usecase.PurchaseRequest{
			Name:      "Widget",
			Price:     model.Price{AmountSubunits: 1000, CurrencyCode: "USD"},
			Frequency: model.FrequencyWeekly,
			Qty:       1,
		}
		uc.Subscribe(ctx, req)
		uc.Subscribe(ctx, req)

		list, _ := subUC.List(ctx)
		if len(list) != 2 {
			t.Errorf("expected 2 independent subscriptions, got %d", len(list))
		}
		if list[0].ID == list[1].ID {
			t.Error("expected distinct ids")
		}
	})
}

func TestCheckoutUseCase_BuyNow(t *testing.T) {
	ctx := context.Background()

	t.Run("places an order without touching the store", func(t *testing.T) {
		uc, subUC, convUC := newCheckout(nil)

		entry, err := uc.BuyNow(ctx, usecase.PurchaseRequest{
			Name:      "Widget",
			Frequency: model.FrequencyMonthly, // selected frequency is irrelevant here
			Qty:       3,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(entry.Body, "3x Widget") {
			t.Errorf("unexpected order copy: %q", entry.Body)
		}

		list, _ := subUC.List(ctx)
		if len(list) != 0 {
			t.Errorf("buy now must not create subscriptions, got %d", len(list))
		}
		history, _ := convUC.History(ctx)
		if len(history) != 1 {
			t.Errorf("expected one confirmation entry, got %d", len(history))
		}
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		uc, _, _ := newCheckout(nil)
		if _, err := uc.BuyNow(ctx, usecase.PurchaseRequest{Name: "Widget", Qty: 0}); err != domain.ErrInvalidArgument {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestCheckoutUseCase_LookupProduct(t *testing.T) {
	ctx := context.Background()

	product := &model.Product{
		Name:        "Widget",
		Description: "A fine widget",
		Price:       model.Price{AmountSubunits: 1000, CurrencyCode: "USD"},
	}

	t.Run("success appends the user echo and a product card", func(t *testing.T) {
		lookup := &MockLookupAdapter{
			LookupFunc: func(ctx context.Context, url string) (*model.Product, error) {
				return product, nil
			},
		}
		uc, _, convUC := newCheckout(lookup)

		entry, err := uc.LookupProduct(ctx, "https://shop.example/widget")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if entry.Kind != model.EntryKindProduct || entry.Product == nil {
			t.Fatalf("expected a product entry, got %+v", entry)
		}

		history, _ := convUC.History(ctx)
		if len(history) != 2 {
			t.Fatalf("expected user echo + product card, got %d entries", len(history))
		}
		if history[0].Kind != model.EntryKindUser || history[0].Body != "https://shop.example/widget" {
			t.Errorf("expected user echo first, got %+v", history[0])
		}
	})

	t.Run("not-found yields the dedicated message", func(t *testing.T) {
		lookup := &MockLookupAdapter{
			LookupFunc: func(ctx context.Context, url string) (*model.Product, error) {
				return nil, domain.ErrProductNotFound
			},
		}
		uc, _, _ := newCheckout(lookup)

		entry, err := uc.LookupProduct(ctx, "https://shop.example/missing")
		if err != nil {
			t.Fatalf("expected a stable logged outcome, got %v", err)
		}
		if entry.Kind != model.EntryKindBot || !strings.Contains(entry.Body, "couldn't find") {
			t.Errorf("expected not-found copy, got %q", entry.Body)
		}
	})

	t.Run("other upstream failures yield the generic retry message", func(t *testing.T) {
		lookup := &MockLookupAdapter{
			LookupFunc: func(ctx context.Context, url string) (*model.Product, error) {
				return nil, errors.New("upstream exploded")
			},
		}
		uc, _, _ := newCheckout(lookup)

		entry, err := uc.LookupProduct(ctx, "https://shop.example/widget")
		if err != nil {
			t.Fatalf("expected a stable logged outcome, got %v", err)
		}
		if entry.Kind != model.EntryKindBot || !strings.Contains(entry.Body, "try again") {
			t.Errorf("expected generic failure copy, got %q", entry.Body)
		}
		if strings.Contains(entry.Body, "couldn't find") {
			t.Error("generic failure must be distinct from not-found")
		}
	})

	t.Run("empty input is rejected before any lookup", func(t *testing.T) {
		called := false
		lookup := &MockLookupAdapter{
			LookupFunc: func(ctx context.Context, url string) (*model.Product, error) {
				called = true
				return product, nil
			},
		}
		uc, _, _ := newCheckout(lookup)

		if _, err := uc.LookupProduct(ctx, "   "); err != domain.ErrInvalidArgument {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
		if called {
			t.Error("relay must not be called for empty input")
		}
	})
}

func TestConversationUseCase_History(t *testing.T) {
	ctx := context.Background()
	convUC := usecase.NewConversationUseCase(NewMockConversationRepo())

	convUC.AppendUser(ctx, "hello")
	convUC.AppendBot(ctx, "hi there")

	history, err := convUC.History(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].Kind != model.EntryKindUser || history[1].Kind != model.EntryKindBot {
		t.Error("expected entries in append order")
	}
	if history[0].ID == "" || history[0].ID == history[1].ID {
		t.Error("expected distinct non-empty entry ids")
	}
}

func TestSettingsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to light when nothing persisted", func(t *testing.T) {
		uc := usecase.NewSettingsUseCase(NewMockPreferenceRepo())
		theme, err := uc.Theme(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if theme != usecase.ThemeLight {
			t.Errorf("expected light default, got %q", theme)
		}
	})

	t.Run("persists and returns dark", func(t *testing.T) {
		uc := usecase.NewSettingsUseCase(NewMockPreferenceRepo())
		if err := uc.SetTheme(ctx, usecase.ThemeDark); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		theme, _ := uc.Theme(ctx)
		if theme != usecase.ThemeDark {
			t.Errorf("expected dark, got %q", theme)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		uc := usecase.NewSettingsUseCase(NewMockPreferenceRepo())
		if err := uc.SetTheme(ctx, "blue"); err != domain.ErrInvalidTheme {
			t.Errorf("expected ErrInvalidTheme, got %v", err)
		}
	})
}
