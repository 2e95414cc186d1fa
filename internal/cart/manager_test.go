package cart

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"hustl/internal/catalog"
)

// --------------------------------------------------
// Mock catalog
// --------------------------------------------------

type MockCatalog struct {
	restaurants map[string]*catalog.Restaurant
	lookupErr   error
}

func NewMockCatalog() *MockCatalog {
	latte := latteMenuItem()
	return &MockCatalog{
		restaurants: map[string]*catalog.Restaurant{
			"starbucks": {
				ID:   "starbucks",
				Name: "Starbucks",
				Categories: []catalog.MenuCategory{
					{ID: "drinks", Name: "Drinks", Items: []catalog.MenuItem{latte}},
				},
			},
			"chick-fil-a": {
				ID:   "chick-fil-a",
				Name: "Chick-fil-A",
				Categories: []catalog.MenuCategory{
					{ID: "sides", Name: "Sides", Items: []catalog.MenuItem{
						{ID: "waffle-fries", Name: "Waffle Fries (Medium)", BasePriceCents: 225},
					}},
				},
			},
		},
	}
}

func (m *MockCatalog) GetRestaurantByID(ctx context.Context, id string) (*catalog.Restaurant, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	return m.restaurants[id], nil
}

func (m *MockCatalog) ListRestaurants(ctx context.Context) ([]*catalog.Restaurant, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	out := make([]*catalog.Restaurant, 0, len(m.restaurants))
	for _, r := range m.restaurants {
		out = append(out, r)
	}
	return out, nil
}

func mustSetRestaurant(t *testing.T, m *Manager, id string) {
	t.Helper()
	ok, err := m.SetRestaurant(context.Background(), id)
	if err != nil {
		t.Fatalf("SetRestaurant(%s): %v", id, err)
	}
	if !ok {
		t.Fatalf("SetRestaurant(%s) returned false", id)
	}
}

func latteItem(t *testing.T, quantity int) Item {
	t.Helper()
	item := latteMenuItem()
	built, err := NewItem(&item, Selections{
		"size": {"grande"},
		"milk": {"oat"},
		"temp": {"hot"},
	}, quantity, "")
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	return built
}

// checkTotalsInvariant verifies subtotal = sum of lines, tax =
// round-half-up(subtotal*7%), total = subtotal + tax + fees.
func checkTotalsInvariant(t *testing.T, c *Cart) {
	t.Helper()
	if c == nil {
		t.Fatal("expected a cart")
	}
	var subtotal int64
	for _, item := range c.Items {
		subtotal += item.LineTotalCents
	}
	if c.SubtotalCents != subtotal {
		t.Errorf("subtotal %d does not match item sum %d", c.SubtotalCents, subtotal)
	}
	wantTax := (subtotal*700 + 5000) / 10000
	if c.TaxCents != wantTax {
		t.Errorf("tax %d, expected %d", c.TaxCents, wantTax)
	}
	if c.TotalCents != c.SubtotalCents+c.TaxCents+c.FeesCents {
		t.Errorf("total %d is not subtotal+tax+fees", c.TotalCents)
	}
}

// --------------------------------------------------
// Restaurant scoping
// --------------------------------------------------

func TestSetRestaurant_Success(t *testing.T) {
	m := NewManager(NewMockCatalog())

	mustSetRestaurant(t, m, "starbucks")

	c := m.Cart()
	if c == nil {
		t.Fatal("expected a cart after scoping")
	}
	if c.RestaurantID != "starbucks" || c.RestaurantName != "Starbucks" {
		t.Errorf("unexpected scoping: %s/%s", c.RestaurantID, c.RestaurantName)
	}
	if len(c.Items) != 0 {
		t.Errorf("expected empty cart, got %d items", len(c.Items))
	}
	checkTotalsInvariant(t, c)
}

func TestSetRestaurant_UnknownID(t *testing.T) {
	m := NewManager(NewMockCatalog())

	ok, err := m.SetRestaurant(context.Background(), "no-such-place")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected false for unknown restaurant")
	}
	if m.Cart() != nil {
		t.Error("expected no cart after failed scoping")
	}
}

func TestSetRestaurant_Idempotent(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")
	m.AddItem(latteItem(t, 1))

	before := m.Cart()
	mustSetRestaurant(t, m, "starbucks")
	after := m.Cart()

	if !reflect.DeepEqual(before, after) {
		t.Error("re-scoping to the same restaurant changed the cart")
	}
}

func TestSetRestaurant_ConflictLeavesCartUntouched(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")
	m.AddItem(latteItem(t, 2))

	before := m.Cart()

	ok, err := m.SetRestaurant(context.Background(), "chick-fil-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected conflict to be reported")
	}
	if !reflect.DeepEqual(before, m.Cart()) {
		t.Error("conflicting SetRestaurant modified the cart")
	}
}

func TestSetRestaurant_EmptyCartRetargets(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")

	// Nothing in the cart, so switching is allowed.
	mustSetRestaurant(t, m, "chick-fil-a")

	c := m.Cart()
	if c.RestaurantID != "chick-fil-a" {
		t.Errorf("expected chick-fil-a scoping, got %s", c.RestaurantID)
	}
}

func TestSetRestaurant_CatalogError(t *testing.T) {
	repo := NewMockCatalog()
	repo.lookupErr = errors.New("catalog down")
	m := NewManager(repo)

	ok, err := m.SetRestaurant(context.Background(), "starbucks")
	if err == nil {
		t.Fatal("expected error from catalog backend")
	}
	if ok {
		t.Error("expected false on backend error")
	}
}

func TestHasConflict(t *testing.T) {
	m := NewManager(NewMockCatalog())

	if m.HasConflict("starbucks") {
		t.Error("no cart should never conflict")
	}

	mustSetRestaurant(t, m, "starbucks")
	if m.HasConflict("chick-fil-a") {
		t.Error("empty cart should never conflict")
	}

	m.AddItem(latteItem(t, 1))
	if !m.HasConflict("chick-fil-a") {
		t.Error("expected conflict with non-empty cart scoped elsewhere")
	}
	if m.HasConflict("starbucks") {
		t.Error("same restaurant should never conflict")
	}
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func TestAddItem_NoCartIsNoOp(t *testing.T) {
	m := NewManager(NewMockCatalog())
	m.AddItem(latteItem(t, 1))

	if m.Cart() != nil {
		t.Error("AddItem without a cart should do nothing")
	}
}

func TestAddItem_AppendsAndRecomputes(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")

	m.AddItem(latteItem(t, 2))
	checkTotalsInvariant(t, m.Cart())

	m.AddItem(latteItem(t, 1))
	c := m.Cart()
	if len(c.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(c.Items))
	}
	checkTotalsInvariant(t, c)

	// 1070 + 535 = 1605
	if c.SubtotalCents != 1605 {
		t.Errorf("expected subtotal 1605, got %d", c.SubtotalCents)
	}
}

func TestSetQuantity_RepricesLine(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")
	item := latteItem(t, 1)
	m.AddItem(item)

	m.SetQuantity(item.ID, 3)

	c := m.Cart()
	if c.Items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", c.Items[0].Quantity)
	}
	if c.Items[0].LineTotalCents != 1605 {
		t.Errorf("expected line total 1605, got %d", c.Items[0].LineTotalCents)
	}
	checkTotalsInvariant(t, c)
}

func TestSetQuantity_ClampsToBounds(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")
	item := latteItem(t, 1)
	m.AddItem(item)

	m.SetQuantity(item.ID, 99)
	if got := m.Cart().Items[0].Quantity; got != MaxQuantity {
		t.Errorf("expected clamp to %d, got %d", MaxQuantity, got)
	}

	m.SetQuantity(item.ID, 0)
	if got := m.Cart().Items[0].Quantity; got != MinQuantity {
		t.Errorf("expected clamp to %d, got %d", MinQuantity, got)
	}
}

func TestSetModifiers_RepricesLine(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")
	item := latteItem(t, 2)
	m.AddItem(item)

	m.SetModifiers(item.ID, Selections{
		"size": {"tall"},
		"milk": {"2percent"},
		"temp": {"iced"},
	})

	c := m.Cart()
	// unit back to base 425, x2 = 850
	if c.Items[0].LineTotalCents != 850 {
		t.Errorf("expected line total 850, got %d", c.Items[0].LineTotalCents)
	}
	checkTotalsInvariant(t, c)
}

func TestSetNotes_DoesNotReprice(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")
	item := latteItem(t, 2)
	m.AddItem(item)

	m.SetNotes(item.ID, "extra hot please")

	c := m.Cart()
	if c.Items[0].Notes != "extra hot please" {
		t.Errorf("notes not applied: %q", c.Items[0].Notes)
	}
	if c.Items[0].LineTotalCents != 1070 {
		t.Errorf("notes change must not touch pricing, got %d", c.Items[0].LineTotalCents)
	}
}

func TestSetNotes_TrimsAndCaps(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")
	item := latteItem(t, 1)
	m.AddItem(item)

	m.SetNotes(item.ID, "  "+strings.Repeat("x", 300)+"  ")

	c := m.Cart()
	got := c.Items[0].Notes
	if len(got) != 200 {
		t.Errorf("expected notes capped at 200, got %d", len(got))
	}
	if strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") {
		t.Errorf("expected trimmed notes, got %q", got)
	}
}

func TestUpdate_UnknownItemIsNoOp(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")
	m.AddItem(latteItem(t, 1))

	before := m.Cart()
	m.SetQuantity("ghost", 5)
	m.SetNotes("ghost", "hello")

	if !reflect.DeepEqual(before, m.Cart()) {
		t.Error("update on unknown id changed the cart")
	}
}

func TestRemoveItem(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")
	first := latteItem(t, 1)
	second := latteItem(t, 2)
	m.AddItem(first)
	m.AddItem(second)

	m.RemoveItem(first.ID)

	c := m.Cart()
	if len(c.Items) != 1 || c.Items[0].ID != second.ID {
		t.Fatalf("unexpected items after remove: %+v", c.Items)
	}
	checkTotalsInvariant(t, c)

	m.RemoveItem("ghost")
	if len(m.Cart().Items) != 1 {
		t.Error("removing unknown id changed the items")
	}
}

func TestClear_PreservesScopingAndZeroesTotals(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")
	m.AddItem(latteItem(t, 2))

	m.Clear()

	c := m.Cart()
	if c == nil {
		t.Fatal("clear must not discard the cart")
	}
	if c.RestaurantID != "starbucks" || c.RestaurantName != "Starbucks" {
		t.Errorf("clear lost restaurant scoping: %s/%s", c.RestaurantID, c.RestaurantName)
	}
	if len(c.Items) != 0 {
		t.Errorf("expected no items, got %d", len(c.Items))
	}
	if c.SubtotalCents != 0 || c.TaxCents != 0 || c.FeesCents != 0 || c.TotalCents != 0 {
		t.Errorf("expected all-zero totals, got %+v", c.Totals)
	}
}

func TestCartSnapshot_DoesNotAliasState(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")
	item := latteItem(t, 1)
	m.AddItem(item)

	snapshot := m.Cart()
	snapshot.Items[0].Quantity = 9
	snapshot.Items[0].SelectedModifiers["size"] = []string{"venti"}

	if got := m.Cart().Items[0].Quantity; got != 1 {
		t.Errorf("snapshot mutation leaked into the cart: quantity %d", got)
	}
	if got := m.Cart().Items[0].SelectedModifiers["size"][0]; got != "grande" {
		t.Errorf("snapshot mutation leaked into the cart: size %s", got)
	}
}

// --------------------------------------------------
// Order summary
// --------------------------------------------------

func TestOrderSummary_NilWhenAbsentOrEmpty(t *testing.T) {
	m := NewManager(NewMockCatalog())
	if m.OrderSummary() != nil {
		t.Error("expected nil summary with no cart")
	}

	mustSetRestaurant(t, m, "starbucks")
	if m.OrderSummary() != nil {
		t.Error("expected nil summary for an empty cart")
	}
}

func TestOrderSummary_ProjectsCart(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")

	menuItem := latteMenuItem()
	item, err := NewItem(&menuItem, Selections{
		"size":  {"grande"},
		"milk":  {"oat"},
		"temp":  {"hot"},
		"syrup": {"caramel", "vanilla"},
	}, 2, "light foam")
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	m.AddItem(item)

	summary := m.OrderSummary()
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if summary.RestaurantID != "starbucks" || summary.RestaurantName != "Starbucks" {
		t.Errorf("unexpected scoping: %s/%s", summary.RestaurantID, summary.RestaurantName)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("expected 1 summary item, got %d", len(summary.Items))
	}

	got := summary.Items[0]
	if got.Name != "Caffè Latte" || got.Quantity != 2 || got.Notes != "light foam" {
		t.Errorf("unexpected summary item: %+v", got)
	}

	// Names come out in menu declaration order regardless of selection
	// order: size, milk, temp, then syrup options as declared.
	want := []string{"Grande", "Oat", "Hot", "Vanilla", "Caramel"}
	if !reflect.DeepEqual(got.SelectedOptions, want) {
		t.Errorf("expected options %v, got %v", want, got.SelectedOptions)
	}

	cart := m.Cart()
	if summary.Totals != cart.Totals {
		t.Errorf("summary totals %+v do not match cart %+v", summary.Totals, cart.Totals)
	}
	if got.LineTotalCents != cart.Items[0].LineTotalCents {
		t.Errorf("summary line total %d does not match cart %d", got.LineTotalCents, cart.Items[0].LineTotalCents)
	}
	if got.LineTotal != "$13.10" {
		t.Errorf("expected display total $13.10, got %s", got.LineTotal)
	}
}

func TestOrderSummary_SkipsDanglingOptionIDs(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")

	menuItem := latteMenuItem()
	item, err := NewItem(&menuItem, Selections{
		"size":        {"grande", "discontinued"},
		"milk":        {"oat"},
		"temp":        {"hot"},
		"ghost-group": {"whatever"},
	}, 1, "")
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	m.AddItem(item)

	summary := m.OrderSummary()
	want := []string{"Grande", "Oat", "Hot"}
	if !reflect.DeepEqual(summary.Items[0].SelectedOptions, want) {
		t.Errorf("expected options %v, got %v", want, summary.Items[0].SelectedOptions)
	}
}

func TestOrderSummary_Idempotent(t *testing.T) {
	m := NewManager(NewMockCatalog())
	mustSetRestaurant(t, m, "starbucks")
	m.AddItem(latteItem(t, 1))

	first := m.OrderSummary()
	second := m.OrderSummary()
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated projection of an unchanged cart differed")
	}
}
