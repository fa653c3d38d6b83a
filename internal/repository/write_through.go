package repository

import (
	"log"

	"github.com/Harshanad03/ecommerce-sub000/internal/models"
)

// WriteThrough concentra el invariante "toda escritura remota se
// espeja en la colección local": las dos representaciones no pueden
// divergir en silencio, incluso cuando el backend acepta la escritura.
// Un error del kvstore se loguea y no se propaga; el espejo local es
// best-effort pero las operaciones del repositorio nunca lanzan.
type WriteThrough struct {
	local *LocalStore
}

func NewWriteThrough(local *LocalStore) *WriteThrough {
	return &WriteThrough{local: local}
}

func (w *WriteThrough) Add(p *models.Product) {
	if err := w.local.Add(p); err != nil {
		log.Println("⚠️ write-through: mirroring add:", err)
	}
}

// Update devuelve si el id existía en la colección local.
func (w *WriteThrough) Update(p *models.Product) bool {
	found, err := w.local.Update(p)
	if err != nil {
		log.Println("⚠️ write-through: mirroring update:", err)
	}
	return found
}

// Delete devuelve si el id existía en la colección local.
func (w *WriteThrough) Delete(id string) bool {
	found, err := w.local.Delete(id)
	if err != nil {
		log.Println("⚠️ write-through: mirroring delete:", err)
	}
	return found
}
