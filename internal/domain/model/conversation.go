package model

import "time"

// EntryKind classifies conversation log entries.
type EntryKind string

const (
	EntryKindUser    EntryKind = "user"
	EntryKindBot     EntryKind = "bot"
	EntryKindProduct EntryKind = "product"
)

// ConversationEntry is one row of the append-only conversation log.
// IDs are ULIDs so the log stays sortable by creation order.
type ConversationEntry struct {
	ID        string
	Kind      EntryKind
	Body      string
	Product   *Product // set only for product-card entries
	CreatedAt time.Time
}
