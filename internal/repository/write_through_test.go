package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshanad03/ecommerce-sub000/internal/models"
)

func TestWriteThroughMirrorsByIdentity(t *testing.T) {
	local := NewLocalStore(newMemStore())
	mirror := NewWriteThrough(local)

	mirror.Add(&models.Product{ID: "p1", Name: "Shelf", Price: 60})
	require.NotNil(t, local.Get("p1"))

	found := mirror.Update(&models.Product{ID: "p1", Name: "Tall shelf", Price: 75})
	assert.True(t, found)
	assert.Equal(t, "Tall shelf", local.Get("p1").Name)

	assert.False(t, mirror.Update(&models.Product{ID: "nope", Name: "x"}))

	assert.True(t, mirror.Delete("p1"))
	assert.False(t, mirror.Delete("p1"))
	assert.Nil(t, local.Get("p1"))
}

func TestLocalStoreKeepsNewestFirst(t *testing.T) {
	local := NewLocalStore(newMemStore())

	require.NoError(t, local.Add(&models.Product{ID: "a", Name: "first"}))
	require.NoError(t, local.Add(&models.Product{ID: "b", Name: "second"}))

	all := local.All()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
}
