package models

import "time"

// Order es el registro de un checkout: snapshot de las líneas del
// carrito con los totales ya calculados.
type Order struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Email       string     `json:"email" bson:"email"`
	Items       []CartItem `json:"items" bson:"items"`
	TotalItems  int        `json:"total_items" bson:"total_items"`
	TotalAmount float64    `json:"total_amount" bson:"total_amount"`
	Status      string     `json:"status" bson:"status"` // "pending", "confirmed"
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
}
