package services

import (
	"sync"

	"luffi/internal/domain"
)

// CartService keeps one cart per session, in memory only: like the source UI,
// carts do not survive a process restart (auth sessions do, see AuthService).
// A mutex guards the map because fiber handlers run concurrently.
type CartService struct {
	mu    sync.Mutex
	carts map[string][]domain.CartLine
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string][]domain.CartLine)}
}

// CartView is a derived snapshot: ItemCount and Total are recomputed from the
// line slice on every call, never stored.
type CartView struct {
	Lines     []domain.CartLine
	ItemCount int
	Total     float64
}

func lineMatches(l domain.CartLine, productID, size, color string) bool {
	return l.ProductID == productID && l.Size == size && l.Color == color
}

// Add merges into an existing line when (productID, size, color) match,
// otherwise appends a new line. Insertion order is preserved.
func (s *CartService) Add(sid string, line domain.CartLine) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sid]
	for i := range lines {
		if lineMatches(lines[i], line.ProductID, line.Size, line.Color) {
			lines[i].Quantity += line.Quantity
			return
		}
	}
	s.carts[sid] = append(lines, line)
}

// Remove deletes the matching line entirely. Removing a line that does not
// exist is a silent no-op.
func (s *CartService) Remove(sid, productID, size, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sid]
	for i := range lines {
		if lineMatches(lines[i], productID, size, color) {
			s.carts[sid] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of a matching line. Quantities below 1 are
// rejected and leave the line unchanged; dropping a line goes through Remove.
// Updating a missing line is a no-op. Returns false when the update was
// rejected or no line matched.
func (s *CartService) UpdateQuantity(sid, productID string, qty int, size, color string) bool {
	if qty < 1 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sid]
	for i := range lines {
		if lineMatches(lines[i], productID, size, color) {
			lines[i].Quantity = qty
			return true
		}
	}
	return false
}

// View returns a copy of the cart with derived totals.
func (s *CartService) View(sid string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sid]
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)

	v := CartView{Lines: out}
	for _, l := range out {
		v.ItemCount += l.Quantity
		v.Total += l.Subtotal()
	}
	return v
}

// ItemCount is the badge number shown in the navigation bar.
func (s *CartService) ItemCount(sid string) int {
	return s.View(sid).ItemCount
}
