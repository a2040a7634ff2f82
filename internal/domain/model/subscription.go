package model

import (
	"strings"
	"time"

	"chatcart/internal/domain"
)

// Frequency is a delivery cadence. Subscriptions are always recurring;
// one-time is a purchase mode only and never a stored subscription state.
type Frequency string

const (
	FrequencyOneTime  Frequency = "one-time"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// frequencyDays maps each recurring cadence to its delivery interval in days.
var frequencyDays = map[Frequency]int{
	FrequencyWeekly:   7,
	FrequencyBiweekly: 14,
	FrequencyMonthly:  28,
}

// ParseFrequency normalizes a raw cadence value.
func ParseFrequency(s string) Frequency {
	return Frequency(strings.ToLower(strings.TrimSpace(s)))
}

// Recurring reports whether f is a valid subscription cadence.
func (f Frequency) Recurring() bool {
	_, ok := frequencyDays[f]
	return ok
}

// OrMonthly returns f when it is a recurring cadence, monthly otherwise.
// The store never persists an unrecognized frequency.
func (f Frequency) OrMonthly() Frequency {
	if f.Recurring() {
		return f
	}
	return FrequencyMonthly
}

// Days returns the delivery interval; unrecognized cadences fall back to
// the monthly interval.
func (f Frequency) Days() int {
	if d, ok := frequencyDays[f]; ok {
		return d
	}
	return frequencyDays[FrequencyMonthly]
}

// NextDelivery computes the next delivery date from now.
func (f Frequency) NextDelivery(now time.Time) time.Time {
	return now.AddDate(0, 0, f.Days())
}

type SubscriptionStatus string

const (
	SubscriptionStatusActive SubscriptionStatus = "active"
	SubscriptionStatusPaused SubscriptionStatus = "paused"
)

// Subscription is a recurring-delivery commitment for a product.
// Price is an already-formatted display string and is never recomputed here.
type Subscription struct {
	ID           int64
	Name         string
	Price        string
	Frequency    Frequency
	Qty          int
	Status       SubscriptionStatus
	NextDelivery time.Time
	CreatedAt    time.Time
}

// NewSubscription builds an active subscription from validated checkout
// input. The ID is assigned by the repository on insert.
func NewSubscription(name, price string, freq Frequency, qty int, now time.Time) (*Subscription, error) {
	if strings.TrimSpace(name) == "" || qty < 1 {
		return nil, domain.ErrInvalidArgument
	}
	freq = freq.OrMonthly()
	return &Subscription{
		Name:         name,
		Price:        price,
		Frequency:    freq,
		Qty:          qty,
		Status:       SubscriptionStatusActive,
		NextDelivery: freq.NextDelivery(now),
		CreatedAt:    now,
	}, nil
}

// TogglePause flips the subscription between active and paused. The next
// delivery date is deliberately left untouched.
func (s *Subscription) TogglePause() {
	if s.Status == SubscriptionStatusActive {
		s.Status = SubscriptionStatusPaused
	} else {
		s.Status = SubscriptionStatusActive
	}
}

// Reschedule changes the cadence and resets the delivery countdown from now.
func (s *Subscription) Reschedule(freq Frequency, now time.Time) error {
	if !freq.Recurring() {
		return domain.ErrInvalidArgument
	}
	s.Frequency = freq
	s.NextDelivery = freq.NextDelivery(now)
	return nil
}
