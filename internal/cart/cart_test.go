package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshanad03/ecommerce-sub000/internal/models"
)

type memStore struct {
	m map[string]string
}

func newMemStore() *memStore { return &memStore{m: map[string]string{}} }

func (s *memStore) Get(key string) (string, bool) {
	value, found := s.m[key]
	return value, found
}
func (s *memStore) Set(key, value string) error { s.m[key] = value; return nil }
func (s *memStore) Delete(key string) error     { delete(s.m, key); return nil }

func product(id string, price float64) *models.Product {
	return &models.Product{ID: id, Name: "product " + id, Price: price}
}

func TestAddItemMergesQuantities(t *testing.T) {
	store := NewStore(newMemStore(), "guest")
	p := product("p1", 10)

	store.AddItem(p, 2)
	store.AddItem(p, 3)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantityIsAbsolute(t *testing.T) {
	store := NewStore(newMemStore(), "guest")
	p := product("p1", 10)

	store.AddItem(p, 2)
	store.UpdateQuantity("p1", 1)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantityZeroRemovesTheLine(t *testing.T) {
	store := NewStore(newMemStore(), "guest")

	store.AddItem(product("p1", 10), 2)
	store.UpdateQuantity("p1", 0)
	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())

	store.AddItem(product("p2", 5), 1)
	store.UpdateQuantity("p2", -3)
	assert.Empty(t, store.Items())
}

func TestRemoveItemDropsWholeLine(t *testing.T) {
	store := NewStore(newMemStore(), "guest")

	store.AddItem(product("p1", 10), 4)
	store.AddItem(product("p2", 5), 1)
	store.RemoveItem("p1")

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].Product.ID)
}

func TestTotals(t *testing.T) {
	store := NewStore(newMemStore(), "guest")

	store.AddItem(product("p1", 10), 2)
	store.AddItem(product("p2", 5), 3)

	assert.Equal(t, 5, store.TotalItems())
	assert.Equal(t, 35.0, store.TotalPrice())
}

func TestClearedCartHasZeroTotals(t *testing.T) {
	store := NewStore(newMemStore(), "guest")

	store.AddItem(product("p1", 10), 2)
	store.Clear()

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())
	assert.Equal(t, 0.0, store.TotalPrice())
}

func TestCartSurvivesRehydration(t *testing.T) {
	kv := newMemStore()

	store := NewStore(kv, "guest")
	store.AddItem(product("p1", 10), 2)
	store.AddItem(product("p2", 5), 1)

	// Simula un reinicio: misma clave, instancia nueva.
	reloaded := NewStore(kv, "guest")
	require.Len(t, reloaded.Items(), 2)
	assert.Equal(t, 3, reloaded.TotalItems())
	assert.Equal(t, 25.0, reloaded.TotalPrice())
}

func TestManagerIsolatesOwners(t *testing.T) {
	manager := NewManager(newMemStore())

	manager.For("alice").AddItem(product("p1", 10), 1)

	assert.Equal(t, 1, manager.For("alice").TotalItems())
	assert.Equal(t, 0, manager.For("bob").TotalItems())
}

func TestAddItemDefaultsToOne(t *testing.T) {
	store := NewStore(newMemStore(), "guest")

	store.AddItem(product("p1", 10), 0)
	assert.Equal(t, 1, store.TotalItems())
}
