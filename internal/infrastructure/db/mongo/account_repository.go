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

type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(collectionUsers)}
}

type accountDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
	// RegistrationDate is stored as epoch milliseconds.
	RegistrationDate int64 `bson:"registrationDate"`
}

func (d *accountDoc) toDomain() *domain.Account {
	a := &domain.Account{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		Username:     d.Username,
		PasswordHash: d.Password,
	}
	if d.RegistrationDate != 0 {
		a.RegistrationDate = time.UnixMilli(d.RegistrationDate).UTC()
	}
	return a
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := accountDoc{
		ID:               primitive.NewObjectID(),
		Email:            account.Email,
		Username:         account.Username,
		Password:         account.PasswordHash,
		RegistrationDate: account.RegistrationDate.UnixMilli(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *AccountRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	if err := r.col.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ResetRepository stores password-reset records. Expired records are
// removed by the TTL index on expireAt and ignored by lookups until then.
type ResetRepository struct {
	col *mongo.Collection
}

func NewResetRepository(db *mongo.Database) *ResetRepository {
	return &ResetRepository{col: db.Collection(collectionResets)}
}

type resetDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Token    string             `bson:"token"`
	ExpireAt time.Time          `bson:"expireAt"`
}

func (r *ResetRepository) Create(ctx context.Context, reset *domain.ResetToken) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := resetDoc{Username: reset.Username, Token: reset.Token, ExpireAt: reset.ExpireAt.UTC()}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert reset token: %w", err)
	}
	return nil
}

func (r *ResetRepository) DeleteByUsername(ctx context.Context, username string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"username": username}); err != nil {
		return fmt.Errorf("delete reset tokens: %w", err)
	}
	return nil
}

func (r *ResetRepository) TakeByUsername(ctx context.Context, username string, now time.Time) (*domain.ResetToken, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"username": username, "expireAt": bson.M{"$gt": now.UTC()}}
	var doc resetDoc
	if err := r.col.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrResetExpired
		}
		return nil, fmt.Errorf("take reset token: %w", err)
	}
	return &domain.ResetToken{Username: doc.Username, Token: doc.Token, ExpireAt: doc.ExpireAt}, nil
}
