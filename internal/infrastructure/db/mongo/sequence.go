package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sequenceCollection = "sequences"

// nextID allocates the next value of a named monotonic counter. Ids are
// server-assigned int64s so resource paths stay numeric and stable.
func nextID(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	res := db.Collection(sequenceCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		Value int64 `bson:"value"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next id for %q: %w", name, err)
	}
	return doc.Value, nil
}
