package services

import (
	"log"
	"sync"

	"github.com/Amrragab78/the-modern-table-sub000/cart"
)

// CartService keys one cart per visitor token and mirrors every change to
// the snapshot store. Snapshot failures are logged, never surfaced: losing
// a saved cart is an inconvenience, not an error the shopper can act on.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
	store cart.Store
}

func NewCartService(store cart.Store) *CartService {
	return &CartService{carts: make(map[string]*cart.Cart), store: store}
}

// get hydrates the cart from its snapshot on first access. Callers hold mu.
func (s *CartService) get(token string) *cart.Cart {
	if c, ok := s.carts[token]; ok {
		return c
	}
	c := cart.NewPending()
	data, err := s.store.Load(token)
	if err != nil {
		log.Printf("cart %s: snapshot load failed: %v", token, err)
	}
	c.Hydrate(data)
	s.carts[token] = c
	return c
}

func (s *CartService) persist(token string, c *cart.Cart) {
	data, err := c.Snapshot()
	if err == nil {
		err = s.store.Save(token, data)
	}
	if err != nil {
		log.Printf("cart %s: snapshot save failed: %v", token, err)
	}
}

// View is the cart as the site renders it.
type View struct {
	Items      []cart.Line `json:"items"`
	TotalCount int         `json:"totalCount"`
	TotalPrice string      `json:"totalPrice"`
	Hydrated   bool        `json:"hydrated"`
}

func (s *CartService) Get(token string) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(token)
	return View{
		Items:      c.Lines(),
		TotalCount: c.TotalCount(),
		TotalPrice: c.TotalPrice(),
		Hydrated:   c.IsHydrated(),
	}
}

func (s *CartService) AddItem(token string, item cart.Line) View {
	return s.mutate(token, func(c *cart.Cart) { c.AddItem(item) })
}

func (s *CartService) UpdateQuantity(token, name string, delta int) View {
	return s.mutate(token, func(c *cart.Cart) { c.UpdateQuantity(name, delta) })
}

func (s *CartService) RemoveItem(token, name string) View {
	return s.mutate(token, func(c *cart.Cart) { c.RemoveItem(name) })
}

// Clear empties the cart and erases its snapshot.
func (s *CartService) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(token)
	c.Clear()
	if err := s.store.Delete(token); err != nil {
		log.Printf("cart %s: snapshot delete failed: %v", token, err)
	}
}

func (s *CartService) mutate(token string, fn func(*cart.Cart)) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(token)
	fn(c)
	s.persist(token, c)
	return View{
		Items:      c.Lines(),
		TotalCount: c.TotalCount(),
		TotalPrice: c.TotalPrice(),
		Hydrated:   c.IsHydrated(),
	}
}
