package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"chatcart/internal/domain"
	"chatcart/internal/domain/model"
	"chatcart/internal/domain/ports/adapter"
	"chatcart/internal/usecase"
)

// Notices surfaced to the chat UI alongside the JSON payload.
const (
	noticeSubscribed  = "Subscribed! ✓ Added to your subscriptions."
	noticeOrderPlaced = "Order placed! 🎉"
	noticeCancelled   = "Subscription cancelled."
	noticeOneTime     = "Select a recurring frequency to subscribe."
)

type subscriptionResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	Frequency    string `json:"frequency"`
	Qty          int    `json:"qty"`
	Status       string `json:"status"`
	NextDelivery string `json:"next_delivery"`
}

func toSubscriptionResponse(sub *model.Subscription) subscriptionResponse {
	return subscriptionResponse{
		ID:           sub.ID,
		Name:         sub.Name,
		Price:        sub.Price,
		Frequency:    string(sub.Frequency),
		Qty:          sub.Qty,
		Status:       string(sub.Status),
		NextDelivery: sub.NextDelivery.Format(time.RFC3339),
	}
}

type entryResponse struct {
	ID        string         `json:"id"`
	Kind      string         `json:"kind"`
	Body      string         `json:"body"`
	Product   *model.Product `json:"product,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func toEntryResponse(e *model.ConversationEntry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		Kind:      string(e.Kind),
		Body:      e.Body,
		Product:   e.Product,
		CreatedAt: e.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Handler for the conversation log, oldest first.
func chatHistoryHandler(convUC usecase.ConversationUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := convUC.History(r.Context())
		if err != nil {
			http.Error(w, "Failed to load conversation", http.StatusInternalServerError)
			return
		}

		out := make([]entryResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, toEntryResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type chatLookupRequest struct {
	URL string `json:"url"`
}

// Handler for the chat lookup flow: echoes the URL as a user entry, resolves
// it through the relay and returns the terminal entry. Lookup failures are a
// logged outcome, not an HTTP error.
func chatLookupHandler(checkoutUC usecase.CheckoutUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatLookupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		entry, err := checkoutUC.LookupProduct(r.Context(), req.URL)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidArgument) {
				http.Error(w, "Missing product URL", http.StatusBadRequest)
				return
			}
			http.Error(w, "Failed to look up product", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toEntryResponse(entry))
	}
}

type purchaseRequestBody struct {
	Name      string      `json:"name"`
	Price     model.Price `json:"price"`
	Frequency string      `json:"frequency"`
	Qty       int         `json:"qty"`
}

func (b purchaseRequestBody) toPurchaseRequest() usecase.PurchaseRequest {
	return usecase.PurchaseRequest{
		Name:      b.Name,
		Price:     b.Price,
		Frequency: model.ParseFrequency(b.Frequency),
		Qty:       b.Qty,
	}
}

// Handler for the subscribe action on a product card.
func checkoutSubscribeHandler(checkoutUC usecase.CheckoutUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req purchaseRequestBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		sub, err := checkoutUC.Subscribe(r.Context(), req.toPurchaseRequest())
		if err != nil {
			if errors.Is(err, domain.ErrOneTimeFrequency) {
				writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"notice": noticeOneTime})
				return
			}
			if errors.Is(err, domain.ErrInvalidArgument) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "Failed to subscribe", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, struct {
			Notice       string               `json:"notice"`
			Subscription subscriptionResponse `json:"subscription"`
		}{noticeSubscribed, toSubscriptionResponse(sub)})
	}
}

// Handler for the one-time buy action on a product card.
func checkoutBuyHandler(checkoutUC usecase.CheckoutUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req purchaseRequestBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		entry, err := checkoutUC.BuyNow(r.Context(), req.toPurchaseRequest())
		if err != nil {
			if errors.Is(err, domain.ErrInvalidArgument) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "Failed to place order", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, struct {
			Notice string        `json:"notice"`
			Entry  entryResponse `json:"entry"`
		}{noticeOrderPlaced, toEntryResponse(entry)})
	}
}

// Handler for the subscriptions snapshot, most recent first.
func subscriptionsListHandler(subUC usecase.SubscriptionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := subUC.List(r.Context())
		if err != nil {
			http.Error(w, "Failed to list subscriptions", http.StatusInternalServerError)
			return
		}

		out := make([]subscriptionResponse, 0, len(subs))
		for _, sub := range subs {
			out = append(out, toSubscriptionResponse(sub))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// Handler for the rendered subscriptions fragment used on initial page load.
// Subsequent updates arrive over the event stream.
func subscriptionsFragmentHandler(subUC usecase.SubscriptionUseCase, renderer *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := subUC.List(r.Context())
		if err != nil {
			http.Error(w, "Failed to list subscriptions", http.StatusInternalServerError)
			return
		}

		fragment, err := renderer.RenderList(subs)
		if err != nil {
			http.Error(w, "Failed to render subscriptions", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(fragment))
	}
}

func subscriptionID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// Handler for the pause/resume toggle.
func subscriptionToggleHandler(subUC usecase.SubscriptionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := subscriptionID(r)
		if err != nil {
			http.Error(w, "Invalid subscription id", http.StatusBadRequest)
			return
		}

		sub, err := subUC.TogglePause(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				http.Error(w, "Subscription not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to toggle subscription", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toSubscriptionResponse(sub))
	}
}

// Handler for cancellation. The confirm query parameter carries the outcome
// of the client-side confirmation prompt; anything but "true" is a decline.
func subscriptionCancelHandler(subUC usecase.SubscriptionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := subscriptionID(r)
		if err != nil {
			http.Error(w, "Invalid subscription id", http.StatusBadRequest)
			return
		}
		confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

		cancelled, err := subUC.Cancel(r.Context(), id, confirmed)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				http.Error(w, "Subscription not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to cancel subscription", http.StatusInternalServerError)
			return
		}

		resp := struct {
			Cancelled bool   `json:"cancelled"`
			Notice    string `json:"notice,omitempty"`
		}{Cancelled: cancelled}
		if cancelled {
			resp.Notice = noticeCancelled
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type frequencyRequest struct {
	Frequency string `json:"frequency"`
}

// Handler for the frequency select on a card.
func subscriptionFrequencyHandler(subUC usecase.SubscriptionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := subscriptionID(r)
		if err != nil {
			http.Error(w, "Invalid subscription id", http.StatusBadRequest)
			return
		}

		var req frequencyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		sub, err := subUC.SetFrequency(r.Context(), id, model.ParseFrequency(req.Frequency))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				http.Error(w, "Subscription not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, domain.ErrInvalidArgument) {
				http.Error(w, "Invalid frequency", http.StatusBadRequest)
				return
			}
			http.Error(w, "Failed to update frequency", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toSubscriptionResponse(sub))
	}
}

// Handler for reading the theme preference.
func themeGetHandler(settingsUC usecase.SettingsUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme, err := settingsUC.Theme(r.Context())
		if err != nil {
			http.Error(w, "Failed to load theme", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"theme": theme})
	}
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// Handler for persisting the theme preference.
func themeSetHandler(settingsUC usecase.SettingsUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req themeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := settingsUC.SetTheme(r.Context(), req.Theme); err != nil {
			if errors.Is(err, domain.ErrInvalidTheme) {
				http.Error(w, "Invalid theme", http.StatusBadRequest)
				return
			}
			http.Error(w, "Failed to save theme", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"theme": req.Theme})
	}
}

// Handler for the raw relay pass-through. The chat flow uses its own route;
// this endpoint exposes the upstream shape directly.
func relayLookupHandler(lookup adapter.ProductLookupAdapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productURL := r.URL.Query().Get("url")
		if productURL == "" {
			http.Error(w, "Missing url parameter", http.StatusBadRequest)
			return
		}

		product, err := lookup.Lookup(r.Context(), productURL)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				http.Error(w, "Product not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Lookup failed", http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, product)
	}
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
