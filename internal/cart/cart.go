// Package cart mantiene las líneas (producto, cantidad) de un carrito
// y sus totales derivados, con persistencia automática en el kvstore.
// El carrito vive por dueño (sesión o cuenta); dos procesos escribiendo
// la misma clave se pisan en last-writer-wins — limitación conocida,
// no hay protocolo de sincronización.
package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/Harshanad03/ecommerce-sub000/internal/kvstore"
	"github.com/Harshanad03/ecommerce-sub000/internal/models"
)

const cartKeyPrefix = "cart."

// Store es el carrito de un dueño. Cada mutación persiste la colección
// completa bajo su clave fija; no hace falta ningún save explícito.
type Store struct {
	mu    sync.Mutex
	kv    kvstore.Store
	key   string
	items []models.CartItem
}

// NewStore rehidrata el carrito persistido del dueño indicado.
func NewStore(kv kvstore.Store, owner string) *Store {
	s := &Store{kv: kv, key: cartKeyPrefix + owner}

	raw, found := kv.Get(s.key)
	if found && raw != "" {
		if err := json.Unmarshal([]byte(raw), &s.items); err != nil {
			log.Println("⚠️ cart: decoding persisted cart:", err)
			s.items = nil
		}
	}
	return s
}

// AddItem suma cantidad a la línea existente del producto o agrega una
// nueva al final. La cantidad es acumulativa, no reemplaza.
func (s *Store) AddItem(p *models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == p.ID {
			s.items[i].Quantity += quantity
			s.persistLocked()
			return
		}
	}
	s.items = append(s.items, models.CartItem{Product: p, Quantity: quantity})
	s.persistLocked()
}

// RemoveItem saca la línea completa sin importar su cantidad.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// UpdateQuantity fija la cantidad exacta (seteo absoluto, a diferencia
// de AddItem). Cantidad <= 0 equivale a RemoveItem: llevar la línea a
// cero es una forma válida de sacarla, no un error.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			s.persistLocked()
			return
		}
	}
}

// Clear vacía el carrito.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked()
}

// Items devuelve una copia de las líneas en orden de inserción.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems suma las cantidades de todas las líneas.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice suma precio*cantidad. Sin redondeo de moneda acá; el
// formato es cosa de la capa de presentación.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func (s *Store) removeLocked(productID string) {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

func (s *Store) persistLocked() {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Println("⚠️ cart: encoding cart:", err)
		return
	}
	if err := s.kv.Set(s.key, string(data)); err != nil {
		log.Println("⚠️ cart: persisting cart:", err)
	}
}

// Manager construye el Store de cada dueño sobre el mismo kvstore.
type Manager struct {
	kv kvstore.Store
}

func NewManager(kv kvstore.Store) *Manager {
	return &Manager{kv: kv}
}

// For rehidrata el carrito del dueño indicado.
func (m *Manager) For(owner string) *Store {
	return NewStore(m.kv, owner)
}
