package model

// Checklist modes.
const (
	ModeList = "list"
	ModeText = "text"
)

// Checklist statuses used for browsing.
const (
	StatusOpen      = "open"
	StatusCompleted = "completed"
)

// DefaultColor is the accent applied to checklists and items created
// without an explicit color.
const DefaultColor = "#2563EB"

// Checklist is a named, user-created list of items, either structured
// (list mode) or free-text (text mode).
type Checklist struct {
	ID        int64  `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
	Mode      string `json:"mode" db:"mode"`
	Color     string `json:"color" db:"color"`

	// ScheduledFor is the target completion day as epoch milliseconds
	// truncated to local start-of-day, or nil when unscheduled.
	ScheduledFor *int64 `json:"scheduled_for,omitempty" db:"scheduled_for"`
}

// Summary is a checklist together with aggregates computed over its
// items. It is never persisted.
type Summary struct {
	Checklist

	TotalItems      int     `json:"total_items" db:"total_items"`
	CompletedItems  int     `json:"completed_items" db:"completed_items"`
	TotalAmount     float64 `json:"total_amount" db:"total_amount"`
	CompletedAmount float64 `json:"completed_amount" db:"completed_amount"`
}

// Completed reports whether every item of a non-empty checklist is done.
// A checklist with zero items is never completed.
func (s Summary) Completed() bool {
	return s.TotalItems > 0 && s.TotalItems == s.CompletedItems
}

// ChecklistWithItems is the detail-view shape: a summary plus the full
// item list in display order.
type ChecklistWithItems struct {
	Summary

	Items []Item `json:"items"`
}
