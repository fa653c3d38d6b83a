package backend

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Harshanad03/ecommerce-sub000/internal/models"
)

// ProductsTable expone el CRUD de la tabla remota de productos.
type ProductsTable struct {
	coll *mongo.Collection
}

func (t *ProductsTable) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := t.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// List devuelve todo el catálogo, más recientes primero.
func (t *ProductsTable) List(ctx context.Context) ([]models.Product, error) {
	return t.find(ctx, bson.M{})
}

func (t *ProductsTable) ListFeatured(ctx context.Context) ([]models.Product, error) {
	return t.find(ctx, bson.M{"featured": true})
}

func (t *ProductsTable) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return t.find(ctx, bson.M{"category": category})
}

// Get devuelve nil sin error cuando el id no existe.
func (t *ProductsTable) Get(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, singleTimeout)
	defer cancel()

	var product models.Product
	err := t.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Insert asigna el id del lado servidor cuando viene vacío.
func (t *ProductsTable) Insert(ctx context.Context, p *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	_, err := t.coll.InsertOne(ctx, p)
	return err
}

// Update reemplaza el documento completo. Devuelve si hubo match.
func (t *ProductsTable) Update(ctx context.Context, p *models.Product) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := t.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (t *ProductsTable) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := t.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// OrdersTable guarda las órdenes confirmadas.
type OrdersTable struct {
	coll *mongo.Collection
}

func (t *OrdersTable) Insert(ctx context.Context, o *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if o.ID == "" {
		o.ID = primitive.NewObjectID().Hex()
	}
	_, err := t.coll.InsertOne(ctx, o)
	return err
}

func (t *OrdersTable) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := t.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UsersTable respalda el servicio de auth.
type UsersTable struct {
	coll *mongo.Collection
}

// FindByEmail devuelve nil sin error cuando no existe la cuenta.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, singleTimeout)
	defer cancel()

	var user models.User
	err := t.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (t *UsersTable) Insert(ctx context.Context, u *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if u.ID == "" {
		u.ID = primitive.NewObjectID().Hex()
	}
	u.CreatedAt = time.Now()
	_, err := t.coll.InsertOne(ctx, u)
	return err
}
