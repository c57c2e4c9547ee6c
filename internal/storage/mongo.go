package storage

import (
	"context"
	"errors"
	"fmt"

	"cafe-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names kept from the original API.
const (
	CafeCollection        = "cafe"
	MenuItemCollection    = "menuitem"
	OrderCollection       = "order"
	ReservationCollection = "reservation"
)

// MongoRepository is the document store gateway. Object ids stay internal:
// every record crosses the boundary with its id already rendered as a hex
// string. List order is whatever the store returns; callers must not
// assume chronological order.
type MongoRepository struct {
	DB *mongo.Database
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{DB: db}
}

func (r *MongoRepository) insert(ctx context.Context, collection string, record interface{}) (string, error) {
	res, err := r.DB.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("%w: insert into %s: %v", domain.ErrPersistence, collection, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: unexpected inserted id type in %s", domain.ErrPersistence, collection)
	}
	return oid.Hex(), nil
}

func (r *MongoRepository) CreateCafe(ctx context.Context, cafe *domain.Cafe) (string, error) {
	return r.insert(ctx, CafeCollection, cafe)
}

func (r *MongoRepository) ListCafes(ctx context.Context) ([]domain.Cafe, error) {
	cursor, err := r.DB.Collection(CafeCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrPersistence, CafeCollection, err)
	}
	defer cursor.Close(ctx)

	cafes := []domain.Cafe{}
	for cursor.Next(ctx) {
		var doc struct {
			OID         primitive.ObjectID `bson:"_id"`
			domain.Cafe `bson:",inline"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode %s record: %v", domain.ErrPersistence, CafeCollection, err)
		}
		doc.Cafe.ID = doc.OID.Hex()
		cafes = append(cafes, doc.Cafe)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrPersistence, CafeCollection, err)
	}
	return cafes, nil
}

func (r *MongoRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (string, error) {
	return r.insert(ctx, MenuItemCollection, item)
}

func (r *MongoRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	cursor, err := r.DB.Collection(MenuItemCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrPersistence, MenuItemCollection, err)
	}
	defer cursor.Close(ctx)

	items := []domain.MenuItem{}
	for cursor.Next(ctx) {
		var doc struct {
			OID             primitive.ObjectID `bson:"_id"`
			domain.MenuItem `bson:",inline"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode %s record: %v", domain.ErrPersistence, MenuItemCollection, err)
		}
		doc.MenuItem.ID = doc.OID.Hex()
		items = append(items, doc.MenuItem)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrPersistence, MenuItemCollection, err)
	}
	return items, nil
}

// GetMenuItem resolves one menu item by its hex id. A malformed id and a
// missing record are different failures: the first is ErrInvalidReference,
// the second ErrNotFound.
func (r *MongoRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidReference, id)
	}

	var doc struct {
		OID             primitive.ObjectID `bson:"_id"`
		domain.MenuItem `bson:",inline"`
	}
	err = r.DB.Collection(MenuItemCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: menu item %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get menu item %s: %v", domain.ErrPersistence, id, err)
	}
	doc.MenuItem.ID = doc.OID.Hex()
	return &doc.MenuItem, nil
}

func (r *MongoRepository) CreateOrder(ctx context.Context, order *domain.Order) (string, error) {
	return r.insert(ctx, OrderCollection, order)
}

func (r *MongoRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	cursor, err := r.DB.Collection(OrderCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrPersistence, OrderCollection, err)
	}
	defer cursor.Close(ctx)

	orders := []domain.Order{}
	for cursor.Next(ctx) {
		var doc struct {
			OID          primitive.ObjectID `bson:"_id"`
			domain.Order `bson:",inline"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode %s record: %v", domain.ErrPersistence, OrderCollection, err)
		}
		doc.Order.ID = doc.OID.Hex()
		if doc.Order.Items == nil {
			doc.Order.Items = []domain.OrderItem{}
		}
		orders = append(orders, doc.Order)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrPersistence, OrderCollection, err)
	}
	return orders, nil
}

func (r *MongoRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidReference, id)
	}

	var doc struct {
		OID          primitive.ObjectID `bson:"_id"`
		domain.Order `bson:",inline"`
	}
	err = r.DB.Collection(OrderCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get order %s: %v", domain.ErrPersistence, id, err)
	}
	doc.Order.ID = doc.OID.Hex()
	if doc.Order.Items == nil {
		doc.Order.Items = []domain.OrderItem{}
	}
	return &doc.Order, nil
}

func (r *MongoRepository) CreateReservation(ctx context.Context, res *domain.Reservation) (string, error) {
	return r.insert(ctx, ReservationCollection, res)
}

func (r *MongoRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	cursor, err := r.DB.Collection(ReservationCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrPersistence, ReservationCollection, err)
	}
	defer cursor.Close(ctx)

	reservations := []domain.Reservation{}
	for cursor.Next(ctx) {
		var doc struct {
			OID                primitive.ObjectID `bson:"_id"`
			domain.Reservation `bson:",inline"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode %s record: %v", domain.ErrPersistence, ReservationCollection, err)
		}
		doc.Reservation.ID = doc.OID.Hex()
		reservations = append(reservations, doc.Reservation)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", domain.ErrPersistence, ReservationCollection, err)
	}
	return reservations, nil
}
