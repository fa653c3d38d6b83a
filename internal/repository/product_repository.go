package repository

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Harshanad03/ecommerce-sub000/internal/backend"
	"github.com/Harshanad03/ecommerce-sub000/internal/models"
)

// ProductRepository presenta un único CRUD de productos sobre dos
// caminos: la tabla remota cuando hay backend configurado, la
// colección local persistida cuando no. La configuración se reevalúa
// en cada operación y toda falla remota degrada al camino local, así
// el storefront queda usable con cero backend. Ninguna operación
// devuelve error al caller.
type ProductRepository struct {
	remote backend.Source
	local  *LocalStore
	mirror *WriteThrough
}

func NewProductRepository(remote backend.Source, local *LocalStore) *ProductRepository {
	return &ProductRepository{
		remote: remote,
		local:  local,
		mirror: NewWriteThrough(local),
	}
}

// catalog devuelve la tabla remota o nil cuando toca el camino local
// (sin credenciales, o backend inalcanzable — esto último se loguea).
func (r *ProductRepository) catalog(ctx context.Context) backend.Catalog {
	catalog, configured, err := r.remote.Catalog(ctx)
	if err != nil {
		log.Println("⚠️ repository: backend unreachable, falling back to local:", err)
		return nil
	}
	if !configured {
		return nil
	}
	return catalog
}

func normalizeAll(products []models.Product) []models.Product {
	for i := range products {
		products[i].Normalize()
	}
	return products
}

// GetAll lista el catálogo, más recientes primero.
func (r *ProductRepository) GetAll(ctx context.Context) []models.Product {
	if catalog := r.catalog(ctx); catalog != nil {
		products, err := catalog.List(ctx)
		if err == nil {
			return normalizeAll(products)
		}
		log.Println("⚠️ repository: remote list failed, serving local:", err)
	}
	return normalizeAll(r.local.All())
}

// GetFeatured lista solo los destacados.
func (r *ProductRepository) GetFeatured(ctx context.Context) []models.Product {
	if catalog := r.catalog(ctx); catalog != nil {
		products, err := catalog.ListFeatured(ctx)
		if err == nil {
			return normalizeAll(products)
		}
		log.Println("⚠️ repository: remote featured list failed, serving local:", err)
	}

	featured := make([]models.Product, 0)
	for _, p := range r.local.All() {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return normalizeAll(featured)
}

// GetByCategory filtra por igualdad de categoría.
func (r *ProductRepository) GetByCategory(ctx context.Context, category string) []models.Product {
	if catalog := r.catalog(ctx); catalog != nil {
		products, err := catalog.ListByCategory(ctx, category)
		if err == nil {
			return normalizeAll(products)
		}
		log.Println("⚠️ repository: remote category list failed, serving local:", err)
	}

	matched := make([]models.Product, 0)
	for _, p := range r.local.All() {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return normalizeAll(matched)
}

// GetByID devuelve nil cuando no existe; not-found no es un error.
func (r *ProductRepository) GetByID(ctx context.Context, id string) *models.Product {
	if catalog := r.catalog(ctx); catalog != nil {
		product, err := catalog.Get(ctx, id)
		if err == nil {
			if product != nil {
				product.Normalize()
			}
			return product
		}
		log.Println("⚠️ repository: remote lookup failed, scanning local:", err)
	}

	if product := r.local.Get(id); product != nil {
		product.Normalize()
		return product
	}
	return nil
}

// Add completa el registro (defaults, alias, timestamps, identidad) y
// lo escribe. Con backend el id lo asigna el servidor y la escritura
// se espeja igual en la colección local; si el backend falla, queda la
// escritura local con id propio. Add nunca pierde el producto.
func (r *ProductRepository) Add(ctx context.Context, p *models.Product) *models.Product {
	p.ApplyDefaults()
	p.Normalize()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if catalog := r.catalog(ctx); catalog != nil {
		if err := catalog.Insert(ctx, p); err != nil {
			log.Println("⚠️ repository: remote insert failed, keeping local copy:", err)
		}
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	r.mirror.Add(p)
	return p
}

// Update estampa updated_at y escribe por id en ambos stores. found
// indica si algún store tenía el id; así el caller distingue "nada
// cambió" de "cambio aplicado".
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) (*models.Product, bool) {
	p.Normalize()
	p.UpdatedAt = time.Now()

	remoteFound := false
	if catalog := r.catalog(ctx); catalog != nil {
		matched, err := catalog.Update(ctx, p)
		if err != nil {
			log.Println("⚠️ repository: remote update failed, keeping local copy:", err)
		} else {
			remoteFound = matched
		}
	}

	localFound := r.mirror.Update(p)
	return p, remoteFound || localFound
}

// Delete elimina por id de los stores activos. El contrato es "este id
// no aparece en lecturas locales posteriores"; una falla remota no lo
// rompe. found indica si algún store tenía el id.
func (r *ProductRepository) Delete(ctx context.Context, id string) bool {
	remoteFound := false
	if catalog := r.catalog(ctx); catalog != nil {
		deleted, err := catalog.Delete(ctx, id)
		if err != nil {
			log.Println("⚠️ repository: remote delete failed, removing locally:", err)
		} else {
			remoteFound = deleted
		}
	}

	localFound := r.mirror.Delete(id)
	return remoteFound || localFound
}
