package format

import (
	"strings"

	"github.com/google/uuid"
)

// Draft is an unsaved item line being composed in the new-checklist or
// free-text flow. Key is a stable identity for list rendering and edit
// tracking before the item has a database id.
type Draft struct {
	Key  string
	Name string
}

// NewDraft returns an empty draft with a fresh key.
func NewDraft() Draft {
	return Draft{Key: uuid.NewString()}
}

// SplitDrafts converts free text into item-name drafts, one per
// non-blank trimmed line. All-blank input yields a single empty draft so
// the composer always has a row to edit; it never returns zero drafts.
func SplitDrafts(text string) []Draft {
	var drafts []Draft
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		draft := NewDraft()
		draft.Name = line
		drafts = append(drafts, draft)
	}

	if len(drafts) == 0 {
		return []Draft{NewDraft()}
	}
	return drafts
}
