// Package kvstore ofrece una superficie de persistencia key-value
// síncrona. Es el equivalente del localStorage del browser: strings
// por clave, get/set/delete, nada más. Sobre ella viven las
// credenciales del backend, el catálogo local y los carritos.
package kvstore

// Store es la superficie mínima que consumen repository y cart.
type Store interface {
	// Get devuelve el valor y si la clave existe.
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}
