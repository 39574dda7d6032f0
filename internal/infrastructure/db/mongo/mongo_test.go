package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

func TestScopedFilter(t *testing.T) {
	id, owner := primitive.NewObjectID(), primitive.NewObjectID()

	filter, ok := scopedFilter(id.Hex(), owner.Hex())
	require.True(t, ok)
	assert.Equal(t, id, filter["_id"])
	assert.Equal(t, owner, filter["owner"])

	_, ok = scopedFilter("not-an-id", owner.Hex())
	assert.False(t, ok)
	_, ok = scopedFilter(id.Hex(), "")
	assert.False(t, ok)
}

func TestDashboardDoc_PasswordRoundTrip(t *testing.T) {
	owner := primitive.NewObjectID()
	d := domain.NewDashboard(owner.Hex(), "ops", time.Now())

	doc := toDashboardDoc(d, owner)
	assert.Nil(t, doc.Password, "unprotected dashboards store a null password")
	assert.NotNil(t, doc.Layout)
	assert.NotNil(t, doc.Items)

	d.PasswordHash = "$2a$10$digest"
	doc = toDashboardDoc(d, owner)
	require.NotNil(t, doc.Password)

	doc.ID = primitive.NewObjectID()
	back := doc.toDomain()
	assert.Equal(t, doc.ID.Hex(), back.ID)
	assert.Equal(t, owner.Hex(), back.Owner)
	assert.True(t, back.HasPassword())
}

func TestAccountDoc_RegistrationDateMillis(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	doc := accountDoc{ID: primitive.NewObjectID(), Username: "ann", RegistrationDate: at.UnixMilli()}
	assert.Equal(t, at, doc.toDomain().RegistrationDate)

	doc.RegistrationDate = 0
	assert.True(t, doc.toDomain().RegistrationDate.IsZero())
}
