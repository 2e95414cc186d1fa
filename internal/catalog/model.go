package catalog

// Restaurant is the root of a menu tree. Catalog data is read-only
// reference data: the cart core may copy from it but never mutates it.
type Restaurant struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Categories []MenuCategory `json:"categories"`
}

type MenuCategory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// MenuItem carries its price in integer cents. Major-unit prices are
// converted exactly once at ingestion (see Cents); everything downstream
// works in int64 cents.
type MenuItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	BasePriceCents int64           `json:"base_price_cents"`
	ModifierGroups []ModifierGroup `json:"modifier_groups"`
}

// ModifierGroup groups the options a customer can pick for an item.
// Required means at least one option must be chosen before the item can
// enter a cart. MultiSelect permits 0..N selections; otherwise picking a
// new option replaces the previous one.
type ModifierGroup struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Required    bool             `json:"required"`
	MultiSelect bool             `json:"multi_select"`
	Options     []ModifierOption `json:"options"`
}

// ModifierOption is a price delta on top of the item's base price,
// possibly zero.
type ModifierOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// FindItem walks the restaurant's categories for a menu item by id.
// Returns nil if the id does not resolve.
func (r *Restaurant) FindItem(itemID string) *MenuItem {
	for ci := range r.Categories {
		for ii := range r.Categories[ci].Items {
			if r.Categories[ci].Items[ii].ID == itemID {
				return &r.Categories[ci].Items[ii]
			}
		}
	}
	return nil
}
