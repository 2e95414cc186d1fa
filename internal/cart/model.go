package cart

import "hustl/internal/catalog"

// Selections maps a modifier group id to the option ids chosen in it.
// Insertion order is irrelevant; option names and price deltas are always
// read back in the menu's declaration order.
type Selections map[string][]string

// Item is one cart line. MenuItem is a snapshot copy taken when the item
// enters the cart, so later catalog changes never affect existing lines.
// LineTotalCents is derived and maintained by the Manager.
type Item struct {
	ID                string           `json:"id"`
	MenuItem          catalog.MenuItem `json:"menu_item"`
	Quantity          int              `json:"quantity"`
	SelectedModifiers Selections       `json:"selected_modifiers"`
	Notes             string           `json:"notes"`
	LineTotalCents    int64            `json:"line_total_cents"`
}

// Totals are the derived cart-level amounts, all in integer cents.
type Totals struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	TaxCents      int64 `json:"tax_cents"`
	FeesCents     int64 `json:"fees_cents"`
	TotalCents    int64 `json:"total_cents"`
}

// Cart holds the lines for exactly one restaurant. Items keep insertion
// order. An empty cart is "unscoped-but-assignable": it may be retargeted
// to another restaurant without conflict.
type Cart struct {
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	Items          []Item `json:"items"`
	Totals
}

// OrderSummary is an immutable projection of a cart, suitable for
// attaching to a task request. It is produced on demand and never stored
// back into the cart.
type OrderSummary struct {
	RestaurantID   string        `json:"restaurant_id"`
	RestaurantName string        `json:"restaurant_name"`
	Items          []SummaryItem `json:"items"`
	Totals         Totals        `json:"totals"`
}

type SummaryItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Quantity        int      `json:"quantity"`
	SelectedOptions []string `json:"selected_options"`
	Notes           string   `json:"notes"`
	LineTotalCents  int64    `json:"line_total_cents"`
	LineTotal       string   `json:"line_total"`
}

func (s Selections) clone() Selections {
	if s == nil {
		return nil
	}
	out := make(Selections, len(s))
	for groupID, optionIDs := range s {
		out[groupID] = append([]string(nil), optionIDs...)
	}
	return out
}

// clone deep-copies the parts of an item the Manager may replace, so a
// snapshot handed to a reader cannot alias live cart state.
func (i Item) clone() Item {
	out := i
	out.SelectedModifiers = i.SelectedModifiers.clone()
	out.MenuItem = copyMenuItem(i.MenuItem)
	return out
}

func (c *Cart) clone() *Cart {
	if c == nil {
		return nil
	}
	out := *c
	out.Items = make([]Item, len(c.Items))
	for i, item := range c.Items {
		out.Items[i] = item.clone()
	}
	return &out
}

// copyMenuItem snapshots a menu item, including its modifier groups and
// options, so the cart never holds live references into the catalog.
func copyMenuItem(src catalog.MenuItem) catalog.MenuItem {
	out := src
	out.ModifierGroups = make([]catalog.ModifierGroup, len(src.ModifierGroups))
	for i, group := range src.ModifierGroups {
		g := group
		g.Options = append([]catalog.ModifierOption(nil), group.Options...)
		out.ModifierGroups[i] = g
	}
	return out
}
