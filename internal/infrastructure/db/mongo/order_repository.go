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
	"github.com/shop-platform/client-service/internal/core/ports"
)

const orderCollection = "orders"

// OrderRepository implements ports.OrderRepository on MongoDB. Order
// documents hold the contact/payment data; the line set lives in the
// client_items collection and is batch-hydrated on every read.
type OrderRepository struct {
	db    *mongo.Database
	coll  *mongo.Collection
	items ports.ClientItemRepository
}

func NewOrderRepository(db *mongo.Database, items ports.ClientItemRepository) *OrderRepository {
	return &OrderRepository{db: db, coll: db.Collection(orderCollection), items: items}
}

type contactsDoc struct {
	ZipCode     string `bson:"zip_code"`
	Country     string `bson:"country"`
	City        string `bson:"city"`
	Street      string `bson:"street"`
	PhoneNumber string `bson:"phone_number"`
}

type orderDoc struct {
	ID            int64       `bson:"_id"`
	ClientID      int64       `bson:"client_id"`
	Contacts      contactsDoc `bson:"contacts"`
	PaymentMethod string      `bson:"payment_method"`
	TrackNumber   string      `bson:"track_number,omitempty"`
	OrderStatus   string      `bson:"order_status"`
}

func toOrderDoc(o *domain.Order) orderDoc {
	return orderDoc{
		ID:       o.ID,
		ClientID: o.ClientID,
		Contacts: contactsDoc{
			ZipCode:     o.Contacts.ZipCode,
			Country:     o.Contacts.Country,
			City:        o.Contacts.City,
			Street:      o.Contacts.Street,
			PhoneNumber: o.Contacts.PhoneNumber,
		},
		PaymentMethod: o.PaymentMethod,
		TrackNumber:   o.TrackNumber,
		OrderStatus:   string(o.OrderStatus),
	}
}

func (d orderDoc) toDomain() domain.Order {
	return domain.Order{
		ID:       d.ID,
		ClientID: d.ClientID,
		Contacts: domain.Contacts{
			ZipCode:     d.Contacts.ZipCode,
			Country:     d.Contacts.Country,
			City:        d.Contacts.City,
			Street:      d.Contacts.Street,
			PhoneNumber: d.Contacts.PhoneNumber,
		},
		PaymentMethod: d.PaymentMethod,
		TrackNumber:   d.TrackNumber,
		OrderStatus:   domain.OrderStatus(d.OrderStatus),
	}
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc orderDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order %d: %w", id, err)
	}

	order := doc.toDomain()
	lines, err := r.items.FindByOrderIDs(ctx, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.ClientItems = linesOrEmpty(lines[order.ID])
	return &order, nil
}

func (r *OrderRepository) FindByClientID(ctx context.Context, clientID int64, page, size int) ([]domain.Order, int64, error) {
	return r.findPage(ctx, bson.M{"client_id": clientID}, page, size)
}

func (r *OrderRepository) FindAllByClientID(ctx context.Context, clientID int64) ([]domain.Order, error) {
	orders, _, err := r.findPage(ctx, bson.M{"client_id": clientID}, 0, 0)
	return orders, err
}

// FindForManagers returns the manager queue: orders not yet COMPLETED.
func (r *OrderRepository) FindForManagers(ctx context.Context, page, size int) ([]domain.Order, int64, error) {
	filter := bson.M{"order_status": bson.M{"$ne": string(domain.StatusCompleted)}}
	return r.findPage(ctx, filter, page, size)
}

// findPage runs a paginated query ordered by id ascending and hydrates the
// line sets. size <= 0 disables pagination.
func (r *OrderRepository) findPage(ctx context.Context, filter bson.M, page, size int) ([]domain.Order, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if size > 0 {
		opts = opts.SetSkip(int64(page) * int64(size)).SetLimit(int64(size))
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	orders := []domain.Order{}
	for cur.Next(ctx) {
		var doc orderDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.hydrate(ctx, orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// hydrate attaches the line sets of the given orders in one batch query.
func (r *OrderRepository) hydrate(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	byOrder, err := r.items.FindByOrderIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("hydrate order lines: %w", err)
	}
	for i := range orders {
		orders[i].ClientItems = linesOrEmpty(byOrder[orders[i].ID])
	}
	return nil
}

func linesOrEmpty(lines []domain.ClientItem) []domain.ClientItem {
	if lines == nil {
		return []domain.ClientItem{}
	}
	return lines
}

func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if order.ID == 0 {
		id, err := nextID(ctx, r.db, orderCollection)
		if err != nil {
			return err
		}
		order.ID = id
	}

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": order.ID},
		toOrderDoc(order),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save order %d: %w", order.ID, err)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	return nil
}

// EnsureIndexes creates the ownership and manager-queue indexes.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "order_status", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
