// Package backend es el cliente tipado hacia el backend hosteado:
// tablas (products, orders, users), auth y storage de imágenes. El
// backend es opcional; las credenciales se guardan en el kvstore desde
// el panel de ajustes y se releen en cada operación, así un cambio de
// configuración aplica en la siguiente llamada sin reiniciar.
package backend

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Harshanad03/ecommerce-sub000/internal/kvstore"
	"github.com/Harshanad03/ecommerce-sub000/internal/models"
)

// Claves del kvstore donde el panel de ajustes deja las credenciales.
const (
	CredentialURLKey = "backend.url"
	CredentialKeyKey = "backend.api_key"
)

const (
	dialTimeout   = 5 * time.Second
	writeTimeout  = 5 * time.Second
	singleTimeout = 3 * time.Second
	queryTimeout  = 10 * time.Second
)

// Credentials son la URL de conexión y la API key del backend.
type Credentials struct {
	URL    string `json:"url"`
	APIKey string `json:"api_key"`
}

// Configured exige ambos valores no vacíos.
func (c Credentials) Configured() bool {
	return c.URL != "" && c.APIKey != ""
}

// LoadCredentials lee las credenciales persistidas. Se llama en cada
// operación, nunca se cachea el resultado.
func LoadCredentials(kv kvstore.Store) Credentials {
	url, _ := kv.Get(CredentialURLKey)
	key, _ := kv.Get(CredentialKeyKey)
	return Credentials{URL: url, APIKey: key}
}

// SaveCredentials persiste las credenciales del panel de ajustes.
func SaveCredentials(kv kvstore.Store, creds Credentials) error {
	if err := kv.Set(CredentialURLKey, creds.URL); err != nil {
		return err
	}
	return kv.Set(CredentialKeyKey, creds.APIKey)
}

// ClearCredentials vuelve al modo local puro.
func ClearCredentials(kv kvstore.Store) error {
	if err := kv.Delete(CredentialURLKey); err != nil {
		return err
	}
	return kv.Delete(CredentialKeyKey)
}

// Client envuelve la conexión al backend para una credencial concreta.
type Client struct {
	mongo *mongo.Client
	db    *mongo.Database
	creds Credentials
}

// Dial conecta y verifica el backend.
func Dial(ctx context.Context, creds Credentials, database string) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	opts := options.Client().ApplyURI(creds.URL)
	if creds.APIKey != "" {
		opts.SetAuth(options.Credential{Username: "storefront", Password: creds.APIKey})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("backend: connecting: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("backend: ping: %w", err)
	}

	return &Client{mongo: client, db: client.Database(database), creds: creds}, nil
}

func (c *Client) Products() *ProductsTable {
	return &ProductsTable{coll: c.db.Collection("products")}
}

func (c *Client) Orders() *OrdersTable {
	return &OrdersTable{coll: c.db.Collection("orders")}
}

func (c *Client) Users() *UsersTable {
	return &UsersTable{coll: c.db.Collection("users")}
}

func (c *Client) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	return c.mongo.Disconnect(ctx)
}

// Catalog es la vista remota de la tabla de productos. La implementa
// ProductsTable; los tests del repository la fingen.
type Catalog interface {
	List(ctx context.Context) ([]models.Product, error)
	ListFeatured(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, category string) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Insert(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// OrderStore persiste y lista las órdenes remotas.
type OrderStore interface {
	Insert(ctx context.Context, o *models.Order) error
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)
}

// Source entrega las tablas remotas cuando el backend está
// configurado. ok=false significa "sin credenciales" (modo local
// silencioso); err significa "configurado pero inalcanzable".
type Source interface {
	Catalog(ctx context.Context) (Catalog, bool, error)
	Orders(ctx context.Context) (OrderStore, bool, error)
}

// Connector implementa Source releyendo las credenciales del kvstore
// en cada llamada. Cachea el Client mientras las credenciales no
// cambien; si cambian, cierra y reconecta.
type Connector struct {
	mu       sync.Mutex
	kv       kvstore.Store
	database string
	client   *Client
}

func NewConnector(kv kvstore.Store, database string) *Connector {
	return &Connector{kv: kv, database: database}
}

func (c *Connector) current(ctx context.Context) (*Client, bool, error) {
	creds := LoadCredentials(c.kv)
	if !creds.Configured() {
		c.dropClient()
		return nil, false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil && c.client.creds == creds {
		return c.client, true, nil
	}
	if c.client != nil {
		if err := c.client.Close(); err != nil {
			log.Println("⚠️ backend: closing stale client:", err)
		}
		c.client = nil
	}

	client, err := Dial(ctx, creds, c.database)
	if err != nil {
		return nil, true, err
	}
	c.client = client
	return client, true, nil
}

func (c *Connector) dropClient() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		_ = c.client.Close()
		c.client = nil
	}
}

func (c *Connector) Catalog(ctx context.Context) (Catalog, bool, error) {
	client, ok, err := c.current(ctx)
	if client == nil {
		return nil, ok, err
	}
	return client.Products(), true, nil
}

func (c *Connector) Orders(ctx context.Context) (OrderStore, bool, error) {
	client, ok, err := c.current(ctx)
	if client == nil {
		return nil, ok, err
	}
	return client.Orders(), true, nil
}

// UsersTable para el servicio de auth; nil cuando no hay backend.
func (c *Connector) UsersTable(ctx context.Context) (*UsersTable, bool, error) {
	client, ok, err := c.current(ctx)
	if client == nil {
		return nil, ok, err
	}
	return client.Users(), true, nil
}
