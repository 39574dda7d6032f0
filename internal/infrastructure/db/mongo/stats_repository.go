package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

// StatsRepository computes platform totals across the collections.
type StatsRepository struct {
	db *mongo.Database
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Totals(ctx context.Context) (*domain.Statistics, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var stats domain.Statistics
	counts := []struct {
		coll string
		dst  *int64
	}{
		{collectionUsers, &stats.Users},
		{collectionDashboards, &stats.Dashboards},
		{collectionSources, &stats.Sources},
	}
	for _, c := range counts {
		n, err := r.db.Collection(c.coll).CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.coll, err)
		}
		*c.dst = n
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "views", Value: bson.D{{Key: "$sum", Value: "$views"}}},
		}}},
	}
	cur, err := r.db.Collection(collectionDashboards).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("sum views: %w", err)
	}
	var rows []struct {
		Views int64 `bson:"views"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode views: %w", err)
	}
	if len(rows) > 0 {
		stats.Views = rows[0].Views
	}
	return &stats, nil
}
