package models

import "time"

const DefaultRating = 4.5

// Product representa un producto del catálogo.
//
// El backend remoto nombra dos campos de otra forma (image_url,
// stock_quantity). Ambos nombres viven en la struct y Normalize los
// mantiene iguales, así cualquier representación se puede leer sin
// traducciones en el call site.
type Product struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Name        string  `json:"name" bson:"name" binding:"required"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price" binding:"min=0"`
	Category    string  `json:"category" bson:"category"`

	// Stock e Image son los nombres locales; StockQuantity e ImageURL
	// los del backend. Alias aditivos, nunca divergen.
	Stock         int    `json:"stock" bson:"-"`
	StockQuantity int    `json:"stock_quantity" bson:"stock_quantity"`
	Image         string `json:"image" bson:"-"`
	ImageURL      string `json:"image_url" bson:"image_url"`

	Rating    float64   `json:"rating" bson:"rating"`
	Reviews   int       `json:"reviews" bson:"reviews"`
	Featured  bool      `json:"featured" bson:"featured"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Normalize deja los dos alias cargando el mismo valor. Si vienen
// ambos y difieren (un documento remoto divergente), ganan los nombres
// remotos: el invariante se restaura en cada lectura, no se asume.
func (p *Product) Normalize() {
	if p.ImageURL != "" {
		p.Image = p.ImageURL
	} else if p.Image != "" {
		p.ImageURL = p.Image
	}
	if p.StockQuantity != 0 {
		p.Stock = p.StockQuantity
	} else if p.Stock != 0 {
		p.StockQuantity = p.Stock
	}
}

// ApplyDefaults rellena rating cuando el caller no lo manda; reviews
// ya arranca en cero.
func (p *Product) ApplyDefaults() {
	if p.Rating == 0 {
		p.Rating = DefaultRating
	}
}

// ProductUpdate representa los campos actualizables de un producto
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Reviews     *int     `json:"reviews,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
}

// Apply vuelca los campos presentes sobre el producto.
func (u *ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
		p.StockQuantity = *u.Stock
	}
	if u.Image != nil {
		p.Image = *u.Image
		p.ImageURL = *u.Image
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	if u.Reviews != nil {
		p.Reviews = *u.Reviews
		if p.Reviews < 0 {
			p.Reviews = 0
		}
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
}
