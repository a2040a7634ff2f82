package web

import (
	"bytes"
	"fmt"
	"html/template"

	"chatcart/internal/domain/model"
	"chatcart/internal/format"
)

// SubscriptionCard is the view projection of a stored subscription. All
// fields are display-ready strings; no formatting happens in the template.
type SubscriptionCard struct {
	ID           int64
	Name         string
	Meta         string
	Status       string
	NextDelivery string
	Frequency    string
	ToggleLabel  string
}

type freqOption struct {
	Value string
	Label string
}

// freqOptions are the selectable cadences, in display order.
var freqOptions = []freqOption{
	{Value: string(model.FrequencyWeekly), Label: format.FrequencyLabel(model.FrequencyWeekly)},
	{Value: string(model.FrequencyBiweekly), Label: format.FrequencyLabel(model.FrequencyBiweekly)},
	{Value: string(model.FrequencyMonthly), Label: format.FrequencyLabel(model.FrequencyMonthly)},
}

type listView struct {
	Cards       []SubscriptionCard
	Frequencies []freqOption
}

const listTemplate = `{{if not .Cards}}<div class="empty-state">
  <p>No subscriptions yet.</p>
  <p>Paste a product link in the chat to get started.</p>
</div>
{{else}}<ul class="subscription-list">
{{range $card := .Cards}}  <li class="subscription-card" data-id="{{$card.ID}}">
    <h3 class="sub-name">{{$card.Name}}</h3>
    <p class="sub-meta">{{$card.Meta}}</p>
    <span class="status-badge status-{{$card.Status}}">{{$card.Status}}</span>
    <p class="sub-next">Next delivery: {{$card.NextDelivery}}</p>
    <select class="freq-select" data-id="{{$card.ID}}">
{{range $opt := $.Frequencies}}      <option value="{{$opt.Value}}"{{if eq $opt.Value $card.Frequency}} selected{{end}}>{{$opt.Label}}</option>
{{end}}    </select>
    <button class="toggle-btn" data-id="{{$card.ID}}">{{$card.ToggleLabel}}</button>
    <button class="cancel-btn" data-id="{{$card.ID}}">Cancel</button>
  </li>
{{end}}</ul>
{{end}}`

// Renderer turns store snapshots into the subscriptions HTML fragment.
// Rendering is a pure projection: identical state yields identical bytes.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("subscriptions").Parse(listTemplate)),
	}
}

// Card projects one subscription into its display form.
func (r *Renderer) Card(sub *model.Subscription) SubscriptionCard {
	toggle := "Pause"
	if sub.Status == model.SubscriptionStatusPaused {
		toggle = "Resume"
	}
	return SubscriptionCard{
		ID:           sub.ID,
		Name:         sub.Name,
		Meta:         fmt.Sprintf("%s · Qty %d · %s", sub.Price, sub.Qty, format.FrequencyLabel(sub.Frequency)),
		Status:       string(sub.Status),
		NextDelivery: format.Date(sub.NextDelivery),
		Frequency:    string(sub.Frequency),
		ToggleLabel:  toggle,
	}
}

// RenderList renders the whole subscriptions fragment. An empty snapshot
// renders the empty-state block and never enters the card loop.
func (r *Renderer) RenderList(subs []*model.Subscription) (string, error) {
	view := listView{Frequencies: freqOptions}
	for _, sub := range subs {
		view.Cards = append(view.Cards, r.Card(sub))
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render subscriptions: %w", err)
	}
	return buf.String(), nil
}
