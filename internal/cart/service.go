package cart

import (
	"context"
	"errors"
	"sync"

	"hustl/internal/catalog"
)

var (
	ErrNoActiveCart     = errors.New("no active cart")
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// Service holds one cart Manager per session. gin serves requests
// concurrently, so each session carries its own mutex and every
// operation runs its full read-modify-write cycle under it; the Manager
// underneath stays single-writer and lock-free.
type Service struct {
	catalog catalog.Repository

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu      sync.Mutex
	manager *Manager
}

func NewService(repo catalog.Repository) *Service {
	return &Service{
		catalog:  repo,
		sessions: make(map[string]*session),
	}
}

func (s *Service) session(sessionID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{manager: NewManager(s.catalog)}
		s.sessions[sessionID] = sess
	}
	return sess
}

// --------------------------------------------------
// Restaurant scoping
// --------------------------------------------------
func (s *Service) SetRestaurant(ctx context.Context, sessionID, restaurantID string) (bool, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.manager.SetRestaurant(ctx, restaurantID)
}

func (s *Service) HasConflict(sessionID, restaurantID string) bool {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.manager.HasConflict(restaurantID)
}

// --------------------------------------------------
// Cart reads
// --------------------------------------------------
func (s *Service) Cart(sessionID string) *Cart {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.manager.Cart()
}

func (s *Service) OrderSummary(sessionID string) *OrderSummary {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.manager.OrderSummary()
}

// --------------------------------------------------
// Item mutations
// --------------------------------------------------

// AddItem resolves menuItemID inside the cart's restaurant, validates
// the customization and appends the line. The returned cart is the state
// after the add.
func (s *Service) AddItem(
	ctx context.Context,
	sessionID string,
	menuItemID string,
	selections Selections,
	quantity int,
	notes string,
) (*Cart, error) {

	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	current := sess.manager.Cart()
	if current == nil {
		return nil, ErrNoActiveCart
	}

	restaurant, err := s.catalog.GetRestaurantByID(ctx, current.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrMenuItemNotFound
	}

	menuItem := restaurant.FindItem(menuItemID)
	if menuItem == nil {
		return nil, ErrMenuItemNotFound
	}

	item, err := NewItem(menuItem, selections, quantity, notes)
	if err != nil {
		return nil, err
	}

	sess.manager.AddItem(item)
	return sess.manager.Cart(), nil
}

func (s *Service) SetQuantity(sessionID, itemID string, quantity int) (*Cart, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.manager.Cart() == nil {
		return nil, ErrNoActiveCart
	}
	sess.manager.SetQuantity(itemID, quantity)
	return sess.manager.Cart(), nil
}

func (s *Service) SetModifiers(sessionID, itemID string, selections Selections) (*Cart, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.manager.Cart() == nil {
		return nil, ErrNoActiveCart
	}
	sess.manager.SetModifiers(itemID, selections)
	return sess.manager.Cart(), nil
}

func (s *Service) SetNotes(sessionID, itemID, notes string) (*Cart, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.manager.Cart() == nil {
		return nil, ErrNoActiveCart
	}
	sess.manager.SetNotes(itemID, notes)
	return sess.manager.Cart(), nil
}

func (s *Service) RemoveItem(sessionID, itemID string) (*Cart, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.manager.Cart() == nil {
		return nil, ErrNoActiveCart
	}
	sess.manager.RemoveItem(itemID)
	return sess.manager.Cart(), nil
}

func (s *Service) Clear(sessionID string) (*Cart, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.manager.Cart() == nil {
		return nil, ErrNoActiveCart
	}
	sess.manager.Clear()
	return sess.manager.Cart(), nil
}
