package cart

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"hustl/internal/catalog"
)

const (
	MinQuantity = 1
	MaxQuantity = 10

	maxNotesLen = 200
)

// NewItem builds a cart line from a menu item and the customer's
// choices. This is where item-level validation lives; the Manager itself
// trusts what it is handed.
//
// Rules:
//   - every required modifier group needs at least one selection
//   - single-select groups accept at most one option
//   - quantity is clamped to [MinQuantity, MaxQuantity]
//   - notes are trimmed and capped at 200 characters
//
// Selections referencing unknown groups or options are kept as-is; they
// simply price at zero and are skipped in summaries.
func NewItem(menuItem *catalog.MenuItem, selections Selections, quantity int, notes string) (Item, error) {
	for _, group := range menuItem.ModifierGroups {
		selected := selections[group.ID]
		if group.Required && len(selected) == 0 {
			return Item{}, fmt.Errorf("select %s", strings.ToLower(group.Name))
		}
		if !group.MultiSelect && countKnownOptions(group, selected) > 1 {
			return Item{}, fmt.Errorf("%s allows only one choice", strings.ToLower(group.Name))
		}
	}

	quantity = ClampQuantity(quantity)
	notes = normalizeNotes(notes)

	item := Item{
		ID:                uuid.New().String(),
		MenuItem:          copyMenuItem(*menuItem),
		Quantity:          quantity,
		SelectedModifiers: selections.clone(),
		Notes:             notes,
	}
	item.LineTotalCents = LineTotal(item.MenuItem, item.SelectedModifiers, item.Quantity)

	return item, nil
}

// countKnownOptions counts the distinct selected ids that actually
// exist in the group. Dangling ids are stale input and never count
// against the single-select limit; duplicates count once, matching how
// pricing treats them.
func countKnownOptions(group catalog.ModifierGroup, selected []string) int {
	seen := make(map[string]bool, len(selected))
	for _, opt := range group.Options {
		for _, id := range selected {
			if id == opt.ID {
				seen[opt.ID] = true
			}
		}
	}
	return len(seen)
}

// normalizeNotes trims surrounding whitespace and caps the note at
// maxNotesLen runes.
func normalizeNotes(notes string) string {
	notes = strings.TrimSpace(notes)
	if runes := []rune(notes); len(runes) > maxNotesLen {
		notes = string(runes[:maxNotesLen])
	}
	return notes
}

// ClampQuantity bounds a quantity to the per-line limits.
func ClampQuantity(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}
