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

const itemCollection = "items"

// ItemRepository implements ports.ItemRepository on MongoDB. The catalog is
// read-mostly here; writes exist for catalog seeding and admin tooling.
type ItemRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{db: db, coll: db.Collection(itemCollection)}
}

type categoryDoc struct {
	ID   int64  `bson:"id"`
	Name string `bson:"name"`
}

type itemDoc struct {
	ID              int64       `bson:"_id"`
	Name            string      `bson:"name"`
	Count           int         `bson:"count"`
	Weight          float64     `bson:"weight"`
	Price           float64     `bson:"price"`
	Description     string      `bson:"description,omitempty"`
	Characteristics string      `bson:"characteristics,omitempty"`
	Image           string      `bson:"image,omitempty"`
	Code            string      `bson:"code,omitempty"`
	Category        categoryDoc `bson:"category"`
	CreatedOn       time.Time   `bson:"created_on"`
}

func toItemDoc(i *domain.Item) itemDoc {
	return itemDoc{
		ID:              i.ID,
		Name:            i.Name,
		Count:           i.Count,
		Weight:          i.Weight,
		Price:           i.Price,
		Description:     i.Description,
		Characteristics: i.Characteristics,
		Image:           i.Image,
		Code:            i.Code,
		Category:        categoryDoc{ID: i.Category.ID, Name: i.Category.Name},
		CreatedOn:       i.CreatedOn,
	}
}

func (d itemDoc) toDomain() *domain.Item {
	return &domain.Item{
		ID:              d.ID,
		Name:            d.Name,
		Count:           d.Count,
		Weight:          d.Weight,
		Price:           d.Price,
		Description:     d.Description,
		Characteristics: d.Characteristics,
		Image:           d.Image,
		Code:            d.Code,
		Category:        domain.Category{ID: d.Category.ID, Name: d.Category.Name},
		CreatedOn:       d.CreatedOn,
	}
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc itemDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item %d: %w", id, err)
	}
	return doc.toDomain(), nil
}

func (r *ItemRepository) FindAll(ctx context.Context, page, size int) ([]domain.Item, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(page) * int64(size)).
		SetLimit(int64(size))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer cur.Close(ctx)

	items := []domain.Item{}
	for cur.Next(ctx) {
		var doc itemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, *doc.toDomain())
	}
	return items, total, cur.Err()
}

// Save upserts the item. CreatedOn defaults to now when absent.
func (r *ItemRepository) Save(ctx context.Context, item *domain.Item) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if item.ID == 0 {
		id, err := nextID(ctx, r.db, itemCollection)
		if err != nil {
			return err
		}
		item.ID = id
	}
	if item.CreatedOn.IsZero() {
		item.CreatedOn = time.Now().UTC()
	}

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": item.ID},
		toItemDoc(item),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save item %d: %w", item.ID, err)
	}
	return nil
}
