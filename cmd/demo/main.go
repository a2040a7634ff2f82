// cmd/demo exercises the chat and subscription flows in-process, without the
// HTTP server or a commerce API key. Useful for a quick smoke run.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rs/zerolog"

	"chatcart/internal/domain/model"
	"chatcart/internal/infra/memory"
	"chatcart/internal/infra/web"
	"chatcart/internal/usecase"
)

type stubLookup struct{}

func (stubLookup) Lookup(ctx context.Context, productURL string) (*model.Product, error) {
	return &model.Product{
		Name:        "AG1 Athletic Greens",
		Description: "Daily nutrition drink",
		Price:       model.Price{AmountSubunits: 7900, CurrencyCode: "USD"},
		Images:      []model.ProductImage{{URL: "https://cdn.example/ag1.jpg", IsFeatured: true}},
	}, nil
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger := zerolog.Nop()

	subRepo := memory.NewSubscriptionRepo()
	if err := memory.SeedSubscriptions(ctx, subRepo); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	subUC := usecase.NewSubscriptionUseCase(subRepo, &logger)
	convUC := usecase.NewConversationUseCase(memory.NewConversationRepo())
	checkoutUC := usecase.NewCheckoutUseCase(stubLookup{}, subUC, convUC, &logger)

	// Look up a product and subscribe to it.
	entry, err := checkoutUC.LookupProduct(ctx, "https://shop.example/products/ag1")
	if err != nil {
		log.Fatalf("lookup error: %v", err)
	}
	sub, err := checkoutUC.Subscribe(ctx, usecase.PurchaseRequest{
		Name:      entry.Product.Name,
		Price:     entry.Product.Price,
		Frequency: model.FrequencyMonthly,
		Qty:       1,
	})
	if err != nil {
		log.Fatalf("subscribe error: %v", err)
	}
	log.Printf("subscribed: id=%d next delivery %s", sub.ID, sub.NextDelivery.Format("2006-01-02"))

	// Print the conversation so far.
	entries, err := convUC.History(ctx)
	if err != nil {
		log.Fatalf("history error: %v", err)
	}
	for _, e := range entries {
		log.Printf("[%s] %s", e.Kind, e.Body)
	}

	// Render the subscriptions fragment the way the web layer would.
	subs, err := subUC.List(ctx)
	if err != nil {
		log.Fatalf("list error: %v", err)
	}
	fragment, err := web.NewRenderer().RenderList(subs)
	if err != nil {
		log.Fatalf("render error: %v", err)
	}
	fmt.Println(fragment)
}
