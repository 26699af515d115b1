package cart

import "sync"

// Store memegang cart per session. Cart di-keyed pakai user ID dari token
// karena satu user dianggap punya satu session aktif; request dalam satu
// session berjalan serial sehingga cart-nya sendiri tidak butuh lock,
// hanya map-nya yang dilindungi.
type Store struct {
	mu    sync.RWMutex
	carts map[uint]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[uint]*Cart)}
}

// Fetch mengambil cart milik session key, dibuat kosong saat pertama dipakai.
func (s *Store) Fetch(key uint) *Cart {
	s.mu.RLock()
	c, ok := s.carts[key]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[key]; ok {
		return c
	}
	c = &Cart{}
	s.carts[key] = c
	return c
}

// Drop membuang cart milik session key, dipakai saat logout.
func (s *Store) Drop(key uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, key)
}
