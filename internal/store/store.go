package store

import (
	"context"
	"database/sql"

	"github.com/rmaia/checkme/internal/model"
)

// ItemInput carries the fields accepted when creating an item.
// Optional fields left nil take their documented defaults.
type ItemInput struct {
	ChecklistID int64
	Name        string
	Price       *float64 // nil = not priced
	Quantity    *int     // nil = 1; otherwise floored and clamped to >= 1
	Color       string   // "" = model.DefaultColor
	Position    *int     // nil = max sibling position + 1
}

// ItemUpdate is an explicit partial update for an item. Nil fields are
// left untouched; only non-nil fields are written. Price uses
// sql.NullFloat64 so a present update can also clear the column.
type ItemUpdate struct {
	Name     *string
	Price    *sql.NullFloat64
	Quantity *int
	Position *int
	Color    *string
	Done     *bool
}

// Empty reports whether the update carries no fields at all, in which
// case applying it executes no statement.
func (u ItemUpdate) Empty() bool {
	return u.Name == nil && u.Price == nil && u.Quantity == nil &&
		u.Position == nil && u.Color == nil && u.Done == nil
}

// Store defines the persistence interface for checklists and their
// items. Get operations return nil (without error) when the requested
// row does not exist.
type Store interface {
	// === Checklists ===

	CreateChecklist(ctx context.Context, title, mode, color string, scheduledFor *int64) (int64, error)
	UpdateChecklistTitle(ctx context.Context, id int64, title string) error
	UpdateChecklistMode(ctx context.Context, id int64, mode string) error
	UpdateChecklistColor(ctx context.Context, id int64, color string) error
	UpdateChecklistSchedule(ctx context.Context, id int64, scheduledFor *int64) error
	DeleteChecklist(ctx context.Context, id int64) error
	ListChecklists(ctx context.Context, status, searchTerm string) ([]model.Summary, error)
	GetChecklistWithItems(ctx context.Context, id int64) (*model.ChecklistWithItems, error)
	GetChecklist(ctx context.Context, id int64) (*model.Checklist, error)

	// === Items ===

	CreateItem(ctx context.Context, input ItemInput) (int64, error)
	UpdateItem(ctx context.Context, id int64, update ItemUpdate) error
	SetItemDone(ctx context.Context, id int64, done bool) error
	GetItem(ctx context.Context, id int64) (*model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	DeleteItemsByChecklist(ctx context.Context, checklistID int64) error
	ReorderItems(ctx context.Context, checklistID int64, orderedIDs []int64) error

	// === Maintenance ===

	Reset(ctx context.Context) error
	Close() error
}
