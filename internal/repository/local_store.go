package repository

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/Harshanad03/ecommerce-sub000/internal/kvstore"
	"github.com/Harshanad03/ecommerce-sub000/internal/models"
)

// Clave fija del kvstore donde vive el catálogo local.
const localProductsKey = "products.local"

// LocalStore es el catálogo de respaldo persistido en el kvstore. Sin
// backend configurado funciona como catálogo completo e independiente;
// con backend, recibe el espejo de cada escritura remota y sirve de
// fallback de lectura.
type LocalStore struct {
	mu sync.Mutex
	kv kvstore.Store
}

func NewLocalStore(kv kvstore.Store) *LocalStore {
	return &LocalStore{kv: kv}
}

func (s *LocalStore) load() []models.Product {
	raw, found := s.kv.Get(localProductsKey)
	if !found || raw == "" {
		return []models.Product{}
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		// Colección corrupta: las lecturas nunca fallan, se arranca vacío.
		log.Println("⚠️ local store: decoding collection:", err)
		return []models.Product{}
	}
	return products
}

func (s *LocalStore) save(products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.kv.Set(localProductsKey, string(data))
}

// All devuelve la colección tal cual está persistida.
func (s *LocalStore) All() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get devuelve nil cuando el id no está.
func (s *LocalStore) Get(id string) *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.load() {
		if p.ID == id {
			product := p
			return &product
		}
	}
	return nil
}

// Add antepone el producto; la colección queda ordenada igual que el
// backend, más recientes primero.
func (s *LocalStore) Add(p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := append([]models.Product{*p}, s.load()...)
	return s.save(products)
}

// Update reemplaza por id. found=false cuando el id no existe, para
// que el caller distinga "no cambió nada" de "cambio aplicado".
func (s *LocalStore) Update(p *models.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.load()
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = *p
			return true, s.save(products)
		}
	}
	return false, nil
}

// Delete elimina por id. found=false cuando el id no existe.
func (s *LocalStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.load()
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return true, s.save(products)
		}
	}
	return false, nil
}
