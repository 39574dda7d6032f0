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

type DashboardRepository struct {
	col *mongo.Collection
}

func NewDashboardRepository(db *mongo.Database) *DashboardRepository {
	return &DashboardRepository{col: db.Collection(collectionDashboards)}
}

type dashboardDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Owner     primitive.ObjectID `bson:"owner"`
	Name      string             `bson:"name"`
	Layout    []any              `bson:"layout"`
	Items     map[string]any     `bson:"items"`
	NextID    int                `bson:"nextId"`
	Password  *string            `bson:"password"`
	Shared    bool               `bson:"shared"`
	Views     int64              `bson:"views"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func toDashboardDoc(d *domain.Dashboard, owner primitive.ObjectID) dashboardDoc {
	doc := dashboardDoc{
		Owner:     owner,
		Name:      d.Name,
		Layout:    d.Layout,
		Items:     d.Items,
		NextID:    d.NextID,
		Shared:    d.Shared,
		Views:     d.Views,
		CreatedAt: d.CreatedAt.UTC(),
	}
	if doc.Layout == nil {
		doc.Layout = []any{}
	}
	if doc.Items == nil {
		doc.Items = map[string]any{}
	}
	if d.PasswordHash != "" {
		hash := d.PasswordHash
		doc.Password = &hash
	}
	return doc
}

func (d *dashboardDoc) toDomain() *domain.Dashboard {
	out := &domain.Dashboard{
		ID:        d.ID.Hex(),
		Owner:     d.Owner.Hex(),
		Name:      d.Name,
		Layout:    d.Layout,
		Items:     d.Items,
		NextID:    d.NextID,
		Shared:    d.Shared,
		Views:     d.Views,
		CreatedAt: d.CreatedAt,
	}
	if out.Layout == nil {
		out.Layout = []any{}
	}
	if out.Items == nil {
		out.Items = map[string]any{}
	}
	if d.Password != nil {
		out.PasswordHash = *d.Password
	}
	return out
}

// withoutPassword keeps the digest out of list reads.
var withoutPassword = bson.M{"password": 0}

func (r *DashboardRepository) Create(ctx context.Context, d *domain.Dashboard) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	owner, err := primitive.ObjectIDFromHex(d.Owner)
	if err != nil {
		return fmt.Errorf("dashboard owner %q: %w", d.Owner, err)
	}
	doc := toDashboardDoc(d, owner)
	doc.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDashboardExists
		}
		return fmt.Errorf("insert dashboard: %w", err)
	}
	d.ID = doc.ID.Hex()
	return nil
}

func (r *DashboardRepository) ListByOwner(ctx context.Context, owner string) ([]*domain.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ownerID, err := primitive.ObjectIDFromHex(owner)
	if err != nil {
		return []*domain.Dashboard{}, nil
	}
	opts := options.Find().SetProjection(withoutPassword).SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"owner": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list dashboards: %w", err)
	}
	var docs []dashboardDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode dashboards: %w", err)
	}

	out := make([]*domain.Dashboard, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *DashboardRepository) FindOwned(ctx context.Context, id, owner string) (*domain.Dashboard, error) {
	filter, ok := scopedFilter(id, owner)
	if !ok {
		return nil, domain.ErrDashboardNotFound
	}
	return r.findOne(ctx, filter)
}

func (r *DashboardRepository) FindOwnedByName(ctx context.Context, owner, name string) (*domain.Dashboard, error) {
	ownerID, err := primitive.ObjectIDFromHex(owner)
	if err != nil {
		return nil, domain.ErrDashboardNotFound
	}
	return r.findOne(ctx, bson.M{"owner": ownerID, "name": name})
}

func (r *DashboardRepository) FindByID(ctx context.Context, id string) (*domain.Dashboard, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDashboardNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *DashboardRepository) findOne(ctx context.Context, filter bson.M) (*domain.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc dashboardDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrDashboardNotFound
		}
		return nil, fmt.Errorf("find dashboard: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *DashboardRepository) UpdateLayout(ctx context.Context, id, owner string, update domain.LayoutUpdate) error {
	filter, ok := scopedFilter(id, owner)
	if !ok {
		return domain.ErrDashboardNotFound
	}
	layout, items := update.Layout, update.Items
	if layout == nil {
		layout = []any{}
	}
	if items == nil {
		items = map[string]any{}
	}
	return r.updateOne(ctx, filter, bson.M{"$set": bson.M{
		"layout": layout,
		"items":  items,
		"nextId": update.NextID,
	}})
}

// Save writes the mutable fields back, including the password digest.
// Single-document reads always load the digest so a save never drops it.
func (r *DashboardRepository) Save(ctx context.Context, d *domain.Dashboard) error {
	filter, ok := scopedFilter(d.ID, d.Owner)
	if !ok {
		return domain.ErrDashboardNotFound
	}
	doc := toDashboardDoc(d, filter["owner"].(primitive.ObjectID))
	return r.updateOne(ctx, filter, bson.M{"$set": bson.M{
		"name":     doc.Name,
		"layout":   doc.Layout,
		"items":    doc.Items,
		"nextId":   doc.NextID,
		"password": doc.Password,
		"shared":   doc.Shared,
		"views":    doc.Views,
	}})
}

func (r *DashboardRepository) updateOne(ctx context.Context, filter, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDashboardExists
		}
		return fmt.Errorf("update dashboard: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDashboardNotFound
	}
	return nil
}

func (r *DashboardRepository) DeleteOwned(ctx context.Context, id, owner string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, ok := scopedFilter(id, owner)
	if !ok {
		return domain.ErrDashboardNotFound
	}
	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete dashboard: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDashboardNotFound
	}
	return nil
}
