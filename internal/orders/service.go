// Package orders registra los checkouts. Sigue la misma política
// dual-path del catálogo: escribe en el backend cuando hay uno
// configurado y siempre deja copia en la lista local; lee del backend
// primero y degrada a la copia local si falla, así la orden no se
// pierde ni desaparece del historial aunque el backend falle.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Harshanad03/ecommerce-sub000/internal/backend"
	"github.com/Harshanad03/ecommerce-sub000/internal/cart"
	"github.com/Harshanad03/ecommerce-sub000/internal/kvstore"
	"github.com/Harshanad03/ecommerce-sub000/internal/models"
)

const localOrdersKey = "orders.local"

var (
	ErrEmptyCart    = errors.New("cannot place an order with an empty cart")
	ErrMissingEmail = errors.New("an email is required to place an order")
)

// Mailer manda la confirmación de la orden. Puede ser nil cuando el
// envío de mails no está configurado.
type Mailer interface {
	SendOrderConfirmation(to string, o *models.Order) error
}

type Service struct {
	mu     sync.Mutex
	remote backend.Source
	kv     kvstore.Store
	mail   Mailer
}

func NewService(remote backend.Source, kv kvstore.Store, mail Mailer) *Service {
	return &Service{remote: remote, kv: kv, mail: mail}
}

// Place toma el snapshot del carrito, calcula totales, persiste la
// orden y vacía el carrito. El carrito solo se vacía con la orden ya
// registrada; un checkout rechazado lo deja intacto. La confirmación
// por mail es best-effort.
func (s *Service) Place(ctx context.Context, email string, store *cart.Store) (*models.Order, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	items := store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:        uuid.NewString(),
		Email:     email,
		Items:     items,
		Status:    "confirmed",
		CreatedAt: time.Now(),
	}
	for _, item := range items {
		order.TotalItems += item.Quantity
		order.TotalAmount += item.Product.Price * float64(item.Quantity)
	}

	if remote, configured, err := s.remote.Orders(ctx); err != nil {
		log.Println("⚠️ orders: backend unreachable, keeping local copy:", err)
	} else if configured {
		if err := remote.Insert(ctx, order); err != nil {
			log.Println("⚠️ orders: remote insert failed, keeping local copy:", err)
		}
	}

	s.appendLocal(order)
	store.Clear()

	if s.mail != nil {
		if err := s.mail.SendOrderConfirmation(email, order); err != nil {
			log.Println("⚠️ orders: sending confirmation:", err)
		}
	}
	return order, nil
}

// History lista las órdenes del mail dado, más recientes primero. Con
// backend configurado el historial remoto es el autoritativo (ve las
// órdenes de otras instancias); si falla, se sirve la copia local.
func (s *Service) History(ctx context.Context, email string) []models.Order {
	if remote, configured, err := s.remote.Orders(ctx); err != nil {
		log.Println("⚠️ orders: backend unreachable, serving local history:", err)
	} else if configured {
		orders, err := remote.ListByEmail(ctx, email)
		if err == nil {
			return orders
		}
		log.Println("⚠️ orders: remote history failed, serving local:", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.Order, 0)
	for _, o := range s.loadLocked() {
		if o.Email == email {
			matched = append(matched, o)
		}
	}
	return matched
}

func (s *Service) appendLocal(order *models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := append([]models.Order{*order}, s.loadLocked()...)
	data, err := json.Marshal(all)
	if err != nil {
		log.Println("⚠️ orders: encoding local orders:", err)
		return
	}
	if err := s.kv.Set(localOrdersKey, string(data)); err != nil {
		log.Println("⚠️ orders: persisting local orders:", err)
	}
}

func (s *Service) loadLocked() []models.Order {
	raw, found := s.kv.Get(localOrdersKey)
	if !found || raw == "" {
		return []models.Order{}
	}
	var all []models.Order
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		log.Println("⚠️ orders: decoding local orders:", err)
		return []models.Order{}
	}
	return all
}
