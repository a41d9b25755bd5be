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

const clientCollection = "clients"

// ClientRepository implements ports.ClientRepository on MongoDB.
type ClientRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{db: db, coll: db.Collection(clientCollection)}
}

type clientDoc struct {
	ID               int64    `bson:"_id"`
	FirstName        string   `bson:"first_name"`
	LastName         string   `bson:"last_name"`
	Patronymic       string   `bson:"patronymic,omitempty"`
	Login            string   `bson:"login"`
	Password         string   `bson:"password"`
	Email            string   `bson:"email"`
	Roles            []string `bson:"roles"`
	ConfirmationCode string   `bson:"confirmation_code,omitempty"`
	AccountNonLocked bool     `bson:"account_non_locked"`
}

func toClientDoc(c *domain.Client) clientDoc {
	roles := make([]string, 0, len(c.Roles))
	for _, r := range c.Roles {
		roles = append(roles, string(r))
	}
	return clientDoc{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Patronymic:       c.Patronymic,
		Login:            c.Login,
		Password:         c.Password,
		Email:            c.Email,
		Roles:            roles,
		ConfirmationCode: c.ConfirmationCode,
		AccountNonLocked: c.AccountNonLocked,
	}
}

func (d clientDoc) toDomain() *domain.Client {
	roles := make([]domain.Role, 0, len(d.Roles))
	for _, r := range d.Roles {
		roles = append(roles, domain.Role(r))
	}
	return &domain.Client{
		ID:               d.ID,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Patronymic:       d.Patronymic,
		Login:            d.Login,
		Password:         d.Password,
		Email:            d.Email,
		Roles:            roles,
		ConfirmationCode: d.ConfirmationCode,
		AccountNonLocked: d.AccountNonLocked,
	}
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc clientDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client %d: %w", id, err)
	}
	return doc.toDomain(), nil
}

// FindAll returns one page of clients ordered by id ascending plus the total
// count. page is 0-based.
func (r *ClientRepository) FindAll(ctx context.Context, page, size int) ([]domain.Client, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(page) * int64(size)).
		SetLimit(int64(size))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	clients := []domain.Client{}
	for cur.Next(ctx) {
		var doc clientDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

// FindByLogin returns (nil, nil) when no client has the login.
func (r *ClientRepository) FindByLogin(ctx context.Context, login string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"login": login})
}

// FindByConfirmationCode returns (nil, nil) when no client holds the code.
func (r *ClientRepository) FindByConfirmationCode(ctx context.Context, code string) (*domain.Client, error) {
	if code == "" {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"confirmation_code": code})
}

func (r *ClientRepository) findOne(ctx context.Context, filter bson.M) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc clientDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return doc.toDomain(), nil
}

// Save upserts the client, allocating an id on first save. A collision with
// the unique login index surfaces as domain.ErrLoginTaken.
func (r *ClientRepository) Save(ctx context.Context, client *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if client.ID == 0 {
		id, err := nextID(ctx, r.db, clientCollection)
		if err != nil {
			return err
		}
		client.ID = id
	}

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": client.ID},
		toClientDoc(client),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrLoginTaken
		}
		return fmt.Errorf("save client %d: %w", client.ID, err)
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	return nil
}

// EnsureIndexes creates the unique login index.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "login", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
