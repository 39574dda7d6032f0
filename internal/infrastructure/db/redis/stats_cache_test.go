package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

func TestNewStatsCache_DefaultTTL(t *testing.T) {
	assert.Equal(t, defaultStatsTTL, NewStatsCache(nil, 0).ttl)
	assert.Equal(t, time.Minute, NewStatsCache(nil, time.Minute).ttl)
}

func TestDecodeStats(t *testing.T) {
	got, err := decodeStats([]byte(`{"users":2,"dashboards":3,"views":10,"sources":1}`))
	require.NoError(t, err)
	assert.Equal(t, &domain.Statistics{Users: 2, Dashboards: 3, Views: 10, Sources: 1}, got)

	_, err = decodeStats([]byte("not json"))
	assert.Error(t, err)
}
