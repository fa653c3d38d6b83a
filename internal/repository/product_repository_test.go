package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshanad03/ecommerce-sub000/internal/backend"
	"github.com/Harshanad03/ecommerce-sub000/internal/models"
)

// ---- fakes ----

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

type fakeCatalog struct {
	ListFn         func(ctx context.Context) ([]models.Product, error)
	ListFeaturedFn func(ctx context.Context) ([]models.Product, error)
	ListByCatFn    func(ctx context.Context, category string) ([]models.Product, error)
	GetFn          func(ctx context.Context, id string) (*models.Product, error)
	InsertFn       func(ctx context.Context, p *models.Product) error
	UpdateFn       func(ctx context.Context, p *models.Product) (bool, error)
	DeleteFn       func(ctx context.Context, id string) (bool, error)
}

func (f *fakeCatalog) List(ctx context.Context) ([]models.Product, error) { return f.ListFn(ctx) }
func (f *fakeCatalog) ListFeatured(ctx context.Context) ([]models.Product, error) {
	return f.ListFeaturedFn(ctx)
}
func (f *fakeCatalog) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return f.ListByCatFn(ctx, category)
}
func (f *fakeCatalog) Get(ctx context.Context, id string) (*models.Product, error) {
	return f.GetFn(ctx, id)
}
func (f *fakeCatalog) Insert(ctx context.Context, p *models.Product) error { return f.InsertFn(ctx, p) }
func (f *fakeCatalog) Update(ctx context.Context, p *models.Product) (bool, error) {
	return f.UpdateFn(ctx, p)
}
func (f *fakeCatalog) Delete(ctx context.Context, id string) (bool, error) {
	return f.DeleteFn(ctx, id)
}

type fakeSource struct {
	catalog    backend.Catalog
	configured bool
	dialErr    error
}

func (f *fakeSource) Catalog(ctx context.Context) (backend.Catalog, bool, error) {
	if !f.configured {
		return nil, false, nil
	}
	if f.dialErr != nil {
		return nil, true, f.dialErr
	}
	return f.catalog, true, nil
}

func (f *fakeSource) Orders(ctx context.Context) (backend.OrderStore, bool, error) {
	return nil, false, nil
}

func newLocalRepo() (*ProductRepository, *LocalStore, *fakeSource) {
	local := NewLocalStore(newMemStore())
	source := &fakeSource{}
	return NewProductRepository(source, local), local, source
}

// ---- tests ----

func TestLocalModeIsACompleteCRUDStore(t *testing.T) {
	repo, _, _ := newLocalRepo()
	ctx := context.Background()

	created := repo.Add(ctx, &models.Product{
		Name:     "Widget",
		Price:    9.99,
		Category: "misc",
		Stock:    5,
	})
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	all := repo.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "Widget", all[0].Name)

	got := repo.GetByID(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, 9.99, got.Price)

	got.Price = 12.50
	updated, found := repo.Update(ctx, got)
	require.True(t, found)
	assert.Equal(t, 12.50, repo.GetByID(ctx, updated.ID).Price)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	require.True(t, repo.Delete(ctx, created.ID))
	assert.Empty(t, repo.GetAll(ctx))
	assert.Nil(t, repo.GetByID(ctx, created.ID))
}

func TestAddAppliesDefaultsAndAliases(t *testing.T) {
	repo, _, _ := newLocalRepo()
	ctx := context.Background()

	created := repo.Add(ctx, &models.Product{
		Name:  "Lamp",
		Price: 25,
		Image: "https://cdn.example.com/lamp.png",
		Stock: 7,
	})

	got := repo.GetByID(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, got.Image, got.ImageURL)
	assert.Equal(t, got.Stock, got.StockQuantity)
	assert.Equal(t, models.DefaultRating, got.Rating)
	assert.Equal(t, 0, got.Reviews)
}

func TestRemoteAddMirrorsIntoLocalCollection(t *testing.T) {
	repo, local, source := newLocalRepo()
	ctx := context.Background()

	source.configured = true
	source.catalog = &fakeCatalog{
		InsertFn: func(ctx context.Context, p *models.Product) error {
			p.ID = "remote-42"
			return nil
		},
	}

	created := repo.Add(ctx, &models.Product{Name: "Chair", Price: 49.90})
	assert.Equal(t, "remote-42", created.ID)

	mirrored := local.Get("remote-42")
	require.NotNil(t, mirrored)
	assert.Equal(t, "Chair", mirrored.Name)
}

func TestRemoteInsertFailureStillWritesLocally(t *testing.T) {
	repo, local, source := newLocalRepo()
	ctx := context.Background()

	source.configured = true
	source.catalog = &fakeCatalog{
		InsertFn: func(ctx context.Context, p *models.Product) error {
			return errors.New("permission denied")
		},
	}

	created := repo.Add(ctx, &models.Product{Name: "Desk", Price: 120})
	require.NotEmpty(t, created.ID)
	assert.NotNil(t, local.Get(created.ID))
}

func TestRemoteReadFailureFallsBackToLocal(t *testing.T) {
	repo, _, source := newLocalRepo()
	ctx := context.Background()

	repo.Add(ctx, &models.Product{Name: "Mug", Price: 8, Category: "kitchen", Featured: true})

	boom := errors.New("network down")
	source.configured = true
	source.catalog = &fakeCatalog{
		ListFn:         func(ctx context.Context) ([]models.Product, error) { return nil, boom },
		ListFeaturedFn: func(ctx context.Context) ([]models.Product, error) { return nil, boom },
		ListByCatFn: func(ctx context.Context, category string) ([]models.Product, error) {
			return nil, boom
		},
		GetFn: func(ctx context.Context, id string) (*models.Product, error) { return nil, boom },
	}

	assert.Len(t, repo.GetAll(ctx), 1)
	assert.Len(t, repo.GetFeatured(ctx), 1)
	assert.Len(t, repo.GetByCategory(ctx, "kitchen"), 1)
	assert.Empty(t, repo.GetByCategory(ctx, "garden"))

	got := repo.GetAll(ctx)[0]
	assert.NotNil(t, repo.GetByID(ctx, got.ID))
}

func TestUnreachableBackendFallsBackToLocal(t *testing.T) {
	repo, _, source := newLocalRepo()
	ctx := context.Background()

	repo.Add(ctx, &models.Product{Name: "Vase", Price: 15})

	source.configured = true
	source.dialErr = errors.New("dial tcp: connection refused")

	assert.Len(t, repo.GetAll(ctx), 1)
}

func TestUpdateUnknownIDReportsNotFound(t *testing.T) {
	repo, _, _ := newLocalRepo()
	ctx := context.Background()

	_, found := repo.Update(ctx, &models.Product{ID: "missing", Name: "Ghost"})
	assert.False(t, found)
	assert.False(t, repo.Delete(ctx, "missing"))
}

func TestConfigurationIsReevaluatedPerCall(t *testing.T) {
	repo, _, source := newLocalRepo()
	ctx := context.Background()

	repo.Add(ctx, &models.Product{Name: "Local only", Price: 1})
	require.Len(t, repo.GetAll(ctx), 1)

	// Credenciales aparecen después: la siguiente llamada ya es remota.
	source.configured = true
	source.catalog = &fakeCatalog{
		ListFn: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{
				{ID: "r1", Name: "Remote", ImageURL: "img", StockQuantity: 3},
				{ID: "r2", Name: "Remote 2"},
			}, nil
		},
	}

	all := repo.GetAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "Remote", all[0].Name)
	// Normalización en cada lectura remota.
	assert.Equal(t, "img", all[0].Image)
	assert.Equal(t, 3, all[0].Stock)
}

func TestRemoteDeleteFailureStillRemovesLocally(t *testing.T) {
	repo, local, source := newLocalRepo()
	ctx := context.Background()

	created := repo.Add(ctx, &models.Product{Name: "Rug", Price: 30})

	source.configured = true
	source.catalog = &fakeCatalog{
		DeleteFn: func(ctx context.Context, id string) (bool, error) {
			return false, errors.New("timeout")
		},
	}

	assert.True(t, repo.Delete(ctx, created.ID))
	assert.Nil(t, local.Get(created.ID))
}
