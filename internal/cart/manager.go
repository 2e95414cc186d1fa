package cart

import (
	"context"

	"hustl/internal/catalog"
)

// Manager owns one optional cart. There is no ambient singleton: every
// session holds its own Manager, and all mutation funnels through its
// methods. The Manager is single-writer and does no locking of its own;
// concurrent callers must serialize access externally (see Service).
type Manager struct {
	catalog catalog.Repository
	cart    *Cart
}

func NewManager(repo catalog.Repository) *Manager {
	return &Manager{catalog: repo}
}

// Cart returns a snapshot of the current cart, or nil if no restaurant
// has been chosen yet. The snapshot never aliases live state.
func (m *Manager) Cart() *Cart {
	return m.cart.clone()
}

// HasConflict reports whether switching to restaurantID would abandon
// items already in the cart. An empty cart never conflicts.
func (m *Manager) HasConflict(restaurantID string) bool {
	return m.cart != nil && m.cart.RestaurantID != restaurantID && len(m.cart.Items) > 0
}

// SetRestaurant scopes the cart to a restaurant. It returns false when a
// non-empty cart is scoped elsewhere (the caller must clear first) or
// when the id does not resolve; in both cases the cart is untouched.
// Re-scoping to the same restaurant is an idempotent no-op. The error is
// only ever an infrastructure failure from the catalog backend.
func (m *Manager) SetRestaurant(ctx context.Context, restaurantID string) (bool, error) {
	if m.HasConflict(restaurantID) {
		return false, nil
	}

	restaurant, err := m.catalog.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return false, err
	}
	if restaurant == nil {
		return false, nil
	}

	if m.cart == nil || m.cart.RestaurantID != restaurantID {
		m.cart = &Cart{
			RestaurantID:   restaurantID,
			RestaurantName: restaurant.Name,
			Items:          []Item{},
			Totals:         CartTotals(nil),
		}
	}
	return true, nil
}

// AddItem appends a line to the cart. Without an active cart this is a
// no-op; callers are expected to have scoped the cart first. The item's
// line total is trusted as supplied (NewItem computed it) and only
// recomputed when quantity or modifiers change later.
func (m *Manager) AddItem(item Item) {
	if m.cart == nil {
		return
	}
	m.cart.Items = append(m.cart.Items, item)
	m.recompute()
}

// SetQuantity updates a line's quantity and reprices it. The quantity is
// clamped defensively to the [1,10] bounds even though callers clamp
// before calling. Unknown ids leave the items untouched.
func (m *Manager) SetQuantity(itemID string, quantity int) {
	if m.cart == nil {
		return
	}
	if item := m.find(itemID); item != nil {
		item.Quantity = ClampQuantity(quantity)
		item.LineTotalCents = LineTotal(item.MenuItem, item.SelectedModifiers, item.Quantity)
	}
	m.recompute()
}

// SetModifiers replaces a line's selections and reprices it.
func (m *Manager) SetModifiers(itemID string, selections Selections) {
	if m.cart == nil {
		return
	}
	if item := m.find(itemID); item != nil {
		item.SelectedModifiers = selections.clone()
		item.LineTotalCents = LineTotal(item.MenuItem, item.SelectedModifiers, item.Quantity)
	}
	m.recompute()
}

// SetNotes updates a line's notes, applying the same trim and length
// cap as item creation. Notes never affect pricing.
func (m *Manager) SetNotes(itemID string, notes string) {
	if m.cart == nil {
		return
	}
	if item := m.find(itemID); item != nil {
		item.Notes = normalizeNotes(notes)
	}
	m.recompute()
}

// RemoveItem drops the line with the given id, if present.
func (m *Manager) RemoveItem(itemID string) {
	if m.cart == nil {
		return
	}
	items := m.cart.Items[:0]
	for _, item := range m.cart.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}
	m.cart.Items = items
	m.recompute()
}

// Clear empties the cart but keeps it scoped to its restaurant.
func (m *Manager) Clear() {
	if m.cart == nil {
		return
	}
	m.cart.Items = []Item{}
	m.recompute()
}

// OrderSummary projects the cart into an immutable summary. It returns
// nil when there is no cart or nothing in it. Selected option names come
// out in the menu's group-then-option declaration order; stale option
// ids are skipped, mirroring the pricing policy.
func (m *Manager) OrderSummary() *OrderSummary {
	if m.cart == nil || len(m.cart.Items) == 0 {
		return nil
	}

	summary := &OrderSummary{
		RestaurantID:   m.cart.RestaurantID,
		RestaurantName: m.cart.RestaurantName,
		Items:          make([]SummaryItem, 0, len(m.cart.Items)),
		Totals:         m.cart.Totals,
	}

	for _, item := range m.cart.Items {
		summary.Items = append(summary.Items, SummaryItem{
			ID:              item.ID,
			Name:            item.MenuItem.Name,
			Quantity:        item.Quantity,
			SelectedOptions: selectedOptionNames(item),
			Notes:           item.Notes,
			LineTotalCents:  item.LineTotalCents,
			LineTotal:       catalog.FormatCents(item.LineTotalCents),
		})
	}
	return summary
}

func selectedOptionNames(item Item) []string {
	var names []string
	for _, group := range item.MenuItem.ModifierGroups {
		selected := item.SelectedModifiers[group.ID]
		if len(selected) == 0 {
			continue
		}
		chosen := make(map[string]bool, len(selected))
		for _, optionID := range selected {
			chosen[optionID] = true
		}
		for _, option := range group.Options {
			if chosen[option.ID] {
				names = append(names, option.Name)
			}
		}
	}
	return names
}

func (m *Manager) find(itemID string) *Item {
	for i := range m.cart.Items {
		if m.cart.Items[i].ID == itemID {
			return &m.cart.Items[i]
		}
	}
	return nil
}

// recompute rebuilds the cart totals from the items. Called after every
// mutation, including no-op updates on unknown ids, which is harmless.
func (m *Manager) recompute() {
	m.cart.Totals = CartTotals(m.cart.Items)
}
