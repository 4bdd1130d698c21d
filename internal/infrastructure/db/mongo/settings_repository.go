package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/marketplacepro/platform/internal/core/domain"
)

const settingsCollection = "settings"

// MongoSettingsRepository stores one document per settings category,
// keyed by "id" = "<category>_settings".
type MongoSettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *MongoSettingsRepository {
	return &MongoSettingsRepository{coll: db.Collection(settingsCollection)}
}

func (r *MongoSettingsRepository) Get(ctx context.Context, category string, dst domain.Settings) error {
	err := r.coll.FindOne(ctx, bson.M{"id": settingsDocID(category)}).Decode(dst)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.ErrSettingsNotFound
		}
		return fmt.Errorf("find settings: %w", err)
	}
	return nil
}

func (r *MongoSettingsRepository) Upsert(ctx context.Context, settings domain.Settings) error {
	docID := settingsDocID(settings.Category())

	raw, err := bson.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	doc["id"] = docID

	_, err = r.coll.ReplaceOne(ctx,
		bson.M{"id": docID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func settingsDocID(category string) string {
	return category + "_settings"
}
