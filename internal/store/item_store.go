package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rmaia/checkme/internal/format"
	"github.com/rmaia/checkme/internal/model"
)

// CreateItem inserts a new item and returns its generated id. Price and
// quantity are normalized; position defaults to max sibling position + 1
// when not supplied.
func (s *SQLiteStore) CreateItem(ctx context.Context, input ItemInput) (int64, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return 0, fmt.Errorf("item name must not be empty")
	}

	color := input.Color
	if color == "" {
		color = model.DefaultColor
	}

	position := 0
	if input.Position != nil {
		position = *input.Position
	}
	if position < 1 {
		var maxPosition int
		err := s.db.GetContext(ctx, &maxPosition,
			"SELECT COALESCE(MAX(position), 0) FROM checklist_items WHERE checklist_id = ?",
			input.ChecklistID)
		if err != nil {
			return 0, fmt.Errorf("getting max item position: %w", err)
		}
		position = maxPosition + 1
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO checklist_items (checklist_id, name, price, quantity, position, color, done)
		VALUES (?, ?, ?, ?, ?, ?, 0)`,
		input.ChecklistID, name, normalizePrice(input.Price),
		normalizeQuantity(input.Quantity), position, color,
	)
	if err != nil {
		return 0, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new item id: %w", err)
	}
	return id, nil
}

// UpdateItem applies the non-nil fields of update to an item. An update
// with no fields set executes no statement and is not an error.
func (s *SQLiteStore) UpdateItem(ctx context.Context, id int64, update ItemUpdate) error {
	if update.Empty() {
		return nil
	}

	var fields []string
	var args []interface{}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return fmt.Errorf("item name must not be empty")
		}
		fields = append(fields, "name = ?")
		args = append(args, name)
	}
	if update.Price != nil {
		fields = append(fields, "price = ?")
		if update.Price.Valid {
			args = append(args, normalizePrice(&update.Price.Float64))
		} else {
			args = append(args, nil)
		}
	}
	if update.Quantity != nil {
		fields = append(fields, "quantity = ?")
		args = append(args, normalizeQuantity(update.Quantity))
	}
	if update.Position != nil {
		position := *update.Position
		if position < 1 {
			position = 1
		}
		fields = append(fields, "position = ?")
		args = append(args, position)
	}
	if update.Color != nil {
		fields = append(fields, "color = ?")
		args = append(args, *update.Color)
	}
	if update.Done != nil {
		fields = append(fields, "done = ?")
		args = append(args, boolToInt(*update.Done))
	}

	args = append(args, id)
	query := "UPDATE checklist_items SET " + strings.Join(fields, ", ") + " WHERE id = ?"

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating item %d: %w", id, err)
	}
	return requireRow(result, "item", id)
}

// SetItemDone flips an item's done flag.
func (s *SQLiteStore) SetItemDone(ctx context.Context, id int64, done bool) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE checklist_items SET done = ? WHERE id = ?", boolToInt(done), id)
	if err != nil {
		return fmt.Errorf("setting item %d done: %w", id, err)
	}
	return requireRow(result, "item", id)
}

// GetItem returns a single item, or nil when it does not exist.
func (s *SQLiteStore) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	row := s.db.QueryRowxContext(ctx, `
		SELECT id, checklist_id, name, price, quantity, position, color, done
		FROM checklist_items WHERE id = ?`,
		id,
	)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item %d: %w", id, err)
	}
	return &item, nil
}

// DeleteItem removes a single item.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM checklist_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting item %d: %w", id, err)
	}
	return requireRow(result, "item", id)
}

// DeleteItemsByChecklist removes every item belonging to a checklist.
func (s *SQLiteStore) DeleteItemsByChecklist(ctx context.Context, checklistID int64) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM checklist_items WHERE checklist_id = ?", checklistID)
	if err != nil {
		return fmt.Errorf("deleting items for checklist %d: %w", checklistID, err)
	}
	return nil
}

// ReorderItems rewrites positions to 1..N following orderedIDs, inside
// one transaction and scoped to the given checklist. IDs that do not
// belong to the checklist are silently unaffected.
func (s *SQLiteStore) ReorderItems(ctx context.Context, checklistID int64, orderedIDs []int64) error {
	if len(orderedIDs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning reorder transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx,
		"UPDATE checklist_items SET position = ? WHERE id = ? AND checklist_id = ?")
	if err != nil {
		return fmt.Errorf("preparing reorder statement: %w", err)
	}
	defer stmt.Close()

	for index, itemID := range orderedIDs {
		if _, err := stmt.ExecContext(ctx, index+1, itemID, checklistID); err != nil {
			return fmt.Errorf("reordering item %d: %w", itemID, err)
		}
	}

	return tx.Commit()
}

// scanItem scans an item row in column order.
func scanItem(row interface{ Scan(dest ...interface{}) error }) (model.Item, error) {
	var (
		item    model.Item
		price   sql.NullFloat64
		doneInt int
	)

	err := row.Scan(
		&item.ID, &item.ChecklistID, &item.Name,
		&price, &item.Quantity, &item.Position, &item.Color, &doneInt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, err
		}
		return model.Item{}, fmt.Errorf("scanning item row: %w", err)
	}

	if price.Valid {
		item.Price = &price.Float64
	}
	item.Done = doneInt != 0

	return item, nil
}

// normalizePrice maps nil or NaN to NULL and rounds everything else to
// cents, preserving the shipped app's half-away-from-zero rule.
func normalizePrice(value *float64) *float64 {
	if value == nil || math.IsNaN(*value) {
		return nil
	}
	rounded := format.RoundCurrency(*value)
	return &rounded
}

// normalizeQuantity maps nil to 1 and clamps everything else to >= 1.
func normalizeQuantity(value *int) int {
	if value == nil || *value < 1 {
		return 1
	}
	return *value
}
