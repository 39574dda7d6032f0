package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

type SourceRepository struct {
	col *mongo.Collection
}

func NewSourceRepository(db *mongo.Database) *SourceRepository {
	return &SourceRepository{col: db.Collection(collectionSources)}
}

type sourceDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Owner     primitive.ObjectID `bson:"owner"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type"`
	URL       string             `bson:"url"`
	Login     string             `bson:"login"`
	Passcode  string             `bson:"passcode"`
	VHost     string             `bson:"vhost"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *sourceDoc) toDomain() *domain.Source {
	return &domain.Source{
		ID:       d.ID.Hex(),
		Owner:    d.Owner.Hex(),
		Name:     d.Name,
		Type:     d.Type,
		URL:      d.URL,
		Login:    d.Login,
		Passcode: d.Passcode,
		VHost:    d.VHost,
	}
}

func (r *SourceRepository) Create(ctx context.Context, s *domain.Source) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	owner, err := primitive.ObjectIDFromHex(s.Owner)
	if err != nil {
		return fmt.Errorf("source owner %q: %w", s.Owner, err)
	}
	doc := sourceDoc{
		ID:        primitive.NewObjectID(),
		Owner:     owner,
		Name:      s.Name,
		Type:      s.Type,
		URL:       s.URL,
		Login:     s.Login,
		Passcode:  s.Passcode,
		VHost:     s.VHost,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSourceExists
		}
		return fmt.Errorf("insert source: %w", err)
	}
	s.ID = doc.ID.Hex()
	return nil
}

func (r *SourceRepository) ListByOwner(ctx context.Context, owner string) ([]*domain.Source, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ownerID, err := primitive.ObjectIDFromHex(owner)
	if err != nil {
		return []*domain.Source{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"owner": ownerID}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	var docs []sourceDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode sources: %w", err)
	}

	out := make([]*domain.Source, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *SourceRepository) FindOwned(ctx context.Context, id, owner string) (*domain.Source, error) {
	filter, ok := scopedFilter(id, owner)
	if !ok {
		return nil, domain.ErrSourceNotFound
	}
	return r.findOne(ctx, filter)
}

func (r *SourceRepository) FindOwnedByName(ctx context.Context, owner, name, excludeID string) (*domain.Source, error) {
	ownerID, err := primitive.ObjectIDFromHex(owner)
	if err != nil {
		return nil, domain.ErrSourceNotFound
	}
	filter := bson.M{"owner": ownerID, "name": name}
	if excludeID != "" {
		if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}
	return r.findOne(ctx, filter)
}

func (r *SourceRepository) findOne(ctx context.Context, filter bson.M) (*domain.Source, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc sourceDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrSourceNotFound
		}
		return nil, fmt.Errorf("find source: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SourceRepository) Update(ctx context.Context, s *domain.Source) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, ok := scopedFilter(s.ID, s.Owner)
	if !ok {
		return domain.ErrSourceNotFound
	}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"name":     s.Name,
		"type":     s.Type,
		"url":      s.URL,
		"login":    s.Login,
		"passcode": s.Passcode,
		"vhost":    s.VHost,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSourceExists
		}
		return fmt.Errorf("update source: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSourceNotFound
	}
	return nil
}

func (r *SourceRepository) DeleteOwned(ctx context.Context, id, owner string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, ok := scopedFilter(id, owner)
	if !ok {
		return domain.ErrSourceNotFound
	}
	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete source: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSourceNotFound
	}
	return nil
}
