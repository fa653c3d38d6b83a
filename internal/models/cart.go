package models

// CartItem es una línea del carrito: snapshot del producto más la
// cantidad acumulada. El carrito no revalida el producto contra el
// catálogo después de agregarlo.
type CartItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}
