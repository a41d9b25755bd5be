package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shop-platform/client-service/internal/core/domain"
)

const clientItemCollection = "client_items"

// ClientItemRepository implements ports.ClientItemRepository on MongoDB.
// A line document carries both the basket owner (client_id) and, once
// ordered, the order it moved into (order_id). Basket membership is
// client_id == X && order_id == 0.
type ClientItemRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewClientItemRepository(db *mongo.Database) *ClientItemRepository {
	return &ClientItemRepository{db: db, coll: db.Collection(clientItemCollection)}
}

type clientItemDoc struct {
	ID       int64   `bson:"_id"`
	ClientID int64   `bson:"client_id"`
	OrderID  int64   `bson:"order_id"`
	Quantity int     `bson:"quantity"`
	Item     itemDoc `bson:"item"`
}

func toClientItemDoc(ci *domain.ClientItem) clientItemDoc {
	return clientItemDoc{
		ID:       ci.ID,
		ClientID: ci.ClientID,
		OrderID:  ci.OrderID,
		Quantity: ci.Quantity,
		Item:     toItemDoc(&ci.Item),
	}
}

func (d clientItemDoc) toDomain() domain.ClientItem {
	return domain.ClientItem{
		ID:       d.ID,
		ClientID: d.ClientID,
		OrderID:  d.OrderID,
		Quantity: d.Quantity,
		Item:     *d.Item.toDomain(),
	}
}

func (r *ClientItemRepository) FindByID(ctx context.Context, id int64) (*domain.ClientItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc clientItemDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientItemNotFound
		}
		return nil, fmt.Errorf("find client item %d: %w", id, err)
	}
	line := doc.toDomain()
	return &line, nil
}

// FindBasketByClientID returns the client's basket lines ordered by id.
func (r *ClientItemRepository) FindBasketByClientID(ctx context.Context, clientID int64) ([]domain.ClientItem, error) {
	return r.findMany(ctx, bson.M{"client_id": clientID, "order_id": int64(0)})
}

// FindByOrderIDs batch-loads the lines of several orders keyed by order id.
func (r *ClientItemRepository) FindByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]domain.ClientItem, error) {
	out := make(map[int64][]domain.ClientItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}

	lines, err := r.findMany(ctx, bson.M{"order_id": bson.M{"$in": orderIDs}})
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		out[line.OrderID] = append(out[line.OrderID], line)
	}
	return out, nil
}

func (r *ClientItemRepository) findMany(ctx context.Context, filter bson.M) ([]domain.ClientItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list client items: %w", err)
	}
	defer cur.Close(ctx)

	lines := []domain.ClientItem{}
	for cur.Next(ctx) {
		var doc clientItemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode client item: %w", err)
		}
		lines = append(lines, doc.toDomain())
	}
	return lines, cur.Err()
}

func (r *ClientItemRepository) Save(ctx context.Context, item *domain.ClientItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if item.ID == 0 {
		id, err := nextID(ctx, r.db, clientItemCollection)
		if err != nil {
			return err
		}
		item.ID = id
	}
	if item.Item.CreatedOn.IsZero() {
		item.Item.CreatedOn = time.Now().UTC()
	}

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": item.ID},
		toClientItemDoc(item),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save client item %d: %w", item.ID, err)
	}
	return nil
}

// Delete removes lines by id. Unknown ids are ignored.
func (r *ClientItemRepository) Delete(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("delete client items: %w", err)
	}
	return nil
}

func (r *ClientItemRepository) DeleteByClientID(ctx context.Context, clientID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"client_id": clientID}); err != nil {
		return fmt.Errorf("delete client items of client %d: %w", clientID, err)
	}
	return nil
}

func (r *ClientItemRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"order_id": orderID}); err != nil {
		return fmt.Errorf("delete client items of order %d: %w", orderID, err)
	}
	return nil
}

// EnsureIndexes creates the ownership lookup indexes.
func (r *ClientItemRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "order_id", Value: 1}}},
		{Keys: bson.D{{Key: "order_id", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
