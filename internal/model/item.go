package model

// Item is a single line within a checklist. Its lifecycle is bound to
// the parent checklist (CASCADE delete).
type Item struct {
	ID          int64  `json:"id" db:"id"`
	ChecklistID int64  `json:"checklist_id" db:"checklist_id"`
	Name        string `json:"name" db:"name"`

	// Price is the unit price rounded to cents, or nil when the item is
	// not priced (only meaningful in list mode).
	Price *float64 `json:"price,omitempty" db:"price"`

	Quantity int    `json:"quantity" db:"quantity"`
	Position int    `json:"position" db:"position"`
	Color    string `json:"color" db:"color"`
	Done     bool   `json:"done" db:"done"`
}

// Amount is the item's contribution to checklist totals: price times
// quantity, with an absent price counting as zero.
func (i Item) Amount() float64 {
	if i.Price == nil {
		return 0
	}
	return *i.Price * float64(i.Quantity)
}
