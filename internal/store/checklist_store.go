package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rmaia/checkme/internal/format"
	"github.com/rmaia/checkme/internal/model"
)

// summaryQuery joins items onto checklists and computes the per-checklist
// aggregates in one pass. The LEFT JOIN keeps zero-item checklists in the
// result with NULL aggregates, coalesced to 0 on scan. Amounts weigh each
// item's price by its quantity, with unpriced items counting as zero.
const summaryQuery = `
SELECT
	c.id,
	c.title,
	c.created_at,
	c.mode,
	c.color,
	c.scheduled_for,
	COUNT(i.id) AS total_items,
	COALESCE(SUM(CASE WHEN i.done = 1 THEN 1 ELSE 0 END), 0) AS completed_items,
	COALESCE(SUM(COALESCE(i.price, 0) * i.quantity), 0) AS total_amount,
	COALESCE(SUM(CASE WHEN i.done = 1 THEN COALESCE(i.price, 0) * i.quantity ELSE 0 END), 0) AS completed_amount
FROM checklists c
LEFT JOIN checklist_items i ON i.checklist_id = c.id`

// CreateChecklist inserts a new checklist and returns its generated id.
// The title is trimmed and must not be empty; an empty mode or color
// falls back to the defaults.
func (s *SQLiteStore) CreateChecklist(
	ctx context.Context,
	title, mode, color string,
	scheduledFor *int64,
) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, fmt.Errorf("checklist title must not be empty")
	}
	if mode != model.ModeList && mode != model.ModeText {
		mode = model.ModeList
	}
	if color == "" {
		color = model.DefaultColor
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO checklists (title, created_at, mode, color, scheduled_for)
		VALUES (?, ?, ?, ?, ?)`,
		title, time.Now().UnixMilli(), mode, color, scheduledFor,
	)
	if err != nil {
		return 0, fmt.Errorf("creating checklist: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new checklist id: %w", err)
	}
	return id, nil
}

// UpdateChecklistTitle renames a checklist. The title is trimmed and
// must not be empty.
func (s *SQLiteStore) UpdateChecklistTitle(ctx context.Context, id int64, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("checklist title must not be empty")
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE checklists SET title = ? WHERE id = ?", title, id)
	if err != nil {
		return fmt.Errorf("updating checklist %d title: %w", id, err)
	}
	return requireRow(result, "checklist", id)
}

// UpdateChecklistMode switches a checklist between list and text mode.
func (s *SQLiteStore) UpdateChecklistMode(ctx context.Context, id int64, mode string) error {
	if mode != model.ModeList && mode != model.ModeText {
		return fmt.Errorf("invalid checklist mode %q", mode)
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE checklists SET mode = ? WHERE id = ?", mode, id)
	if err != nil {
		return fmt.Errorf("updating checklist %d mode: %w", id, err)
	}
	return requireRow(result, "checklist", id)
}

// UpdateChecklistColor changes a checklist's accent color.
func (s *SQLiteStore) UpdateChecklistColor(ctx context.Context, id int64, color string) error {
	if color == "" {
		color = model.DefaultColor
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE checklists SET color = ? WHERE id = ?", color, id)
	if err != nil {
		return fmt.Errorf("updating checklist %d color: %w", id, err)
	}
	return requireRow(result, "checklist", id)
}

// UpdateChecklistSchedule sets or clears (nil) the target completion day.
func (s *SQLiteStore) UpdateChecklistSchedule(ctx context.Context, id int64, scheduledFor *int64) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE checklists SET scheduled_for = ? WHERE id = ?", scheduledFor, id)
	if err != nil {
		return fmt.Errorf("updating checklist %d schedule: %w", id, err)
	}
	return requireRow(result, "checklist", id)
}

// DeleteChecklist removes a checklist. Owned items go with it via the
// cascading foreign key.
func (s *SQLiteStore) DeleteChecklist(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM checklists WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting checklist %d: %w", id, err)
	}
	return requireRow(result, "checklist", id)
}

// ListChecklists returns checklist summaries newest-created first. The
// search term substring-matches the title (empty matches all); status
// picks the completed partition when model.StatusCompleted, otherwise
// the open one.
func (s *SQLiteStore) ListChecklists(
	ctx context.Context,
	status, searchTerm string,
) ([]model.Summary, error) {
	search := "%" + strings.TrimSpace(searchTerm) + "%"

	rows, err := s.db.QueryxContext(ctx,
		summaryQuery+`
WHERE c.title LIKE ?
GROUP BY c.id
ORDER BY c.created_at DESC`,
		search,
	)
	if err != nil {
		return nil, fmt.Errorf("querying checklist summaries: %w", err)
	}
	defer rows.Close()

	wantCompleted := status == model.StatusCompleted

	var summaries []model.Summary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		if summary.Completed() == wantCompleted {
			summaries = append(summaries, summary)
		}
	}
	return summaries, rows.Err()
}

// GetChecklistWithItems returns the summary plus all items in insertion
// order, or nil when the checklist does not exist.
func (s *SQLiteStore) GetChecklistWithItems(
	ctx context.Context,
	id int64,
) (*model.ChecklistWithItems, error) {
	row := s.db.QueryRowxContext(ctx,
		summaryQuery+`
WHERE c.id = ?
GROUP BY c.id`,
		id,
	)

	summary, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting checklist %d summary: %w", id, err)
	}

	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, checklist_id, name, price, quantity, position, color, done
		FROM checklist_items
		WHERE checklist_id = ?
		ORDER BY id ASC`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("querying items for checklist %d: %w", id, err)
	}
	defer rows.Close()

	detail := &model.ChecklistWithItems{Summary: summary}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		detail.Items = append(detail.Items, item)
	}
	return detail, rows.Err()
}

// GetChecklist returns the bare checklist record without aggregates, or
// nil when it does not exist.
func (s *SQLiteStore) GetChecklist(ctx context.Context, id int64) (*model.Checklist, error) {
	var (
		c            model.Checklist
		scheduledFor sql.NullInt64
	)

	err := s.db.QueryRowxContext(ctx, `
		SELECT id, title, created_at, mode, color, scheduled_for
		FROM checklists WHERE id = ?`,
		id,
	).Scan(&c.ID, &c.Title, &c.CreatedAt, &c.Mode, &c.Color, &scheduledFor)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting checklist %d: %w", id, err)
	}

	if scheduledFor.Valid {
		c.ScheduledFor = &scheduledFor.Int64
	}
	return &c, nil
}

// scanSummary scans one summary row. Monetary aggregates are rounded to
// cents after retrieval so float accumulation noise never reaches callers.
func scanSummary(row interface{ Scan(dest ...interface{}) error }) (model.Summary, error) {
	var (
		summary      model.Summary
		scheduledFor sql.NullInt64
	)

	err := row.Scan(
		&summary.ID, &summary.Title, &summary.CreatedAt,
		&summary.Mode, &summary.Color, &scheduledFor,
		&summary.TotalItems, &summary.CompletedItems,
		&summary.TotalAmount, &summary.CompletedAmount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Summary{}, err
		}
		return model.Summary{}, fmt.Errorf("scanning checklist summary: %w", err)
	}

	if scheduledFor.Valid {
		summary.ScheduledFor = &scheduledFor.Int64
	}
	summary.TotalAmount = format.RoundCurrency(summary.TotalAmount)
	summary.CompletedAmount = format.RoundCurrency(summary.CompletedAmount)

	return summary, nil
}

// requireRow converts a zero-rows-affected result into a not-found error.
func requireRow(result sql.Result, entity string, id int64) error {
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%s %d not found", entity, id)
	}
	return nil
}
