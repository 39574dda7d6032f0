package main

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashgrid/dashgrid-api/internal/infrastructure/mail"
	"github.com/dashgrid/dashgrid-api/internal/pkg/config"
)

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "1 hour", humanDuration(time.Hour))
	assert.Equal(t, "12 hours", humanDuration(12*time.Hour))
	assert.Equal(t, "30m", humanDuration(30*time.Minute))
	assert.Equal(t, "1h30m", humanDuration(90*time.Minute))
}

func TestOpenRepositories_Memory(t *testing.T) {
	repos, err := openRepositories(context.Background(), &config.Config{}, storeMemory, zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, repos.accounts)
	assert.NotNil(t, repos.stats)
	assert.Empty(t, repos.checks)
}

func TestOpenRepositories_UnknownStore(t *testing.T) {
	_, err := openRepositories(context.Background(), &config.Config{}, "sqlite", zerolog.Nop())
	assert.Error(t, err)
}

func TestOpenStatsCache_DisabledWithoutAddr(t *testing.T) {
	cache, _, closeFn, err := openStatsCache(context.Background(), config.RedisConfig{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, cache)
	assert.Nil(t, closeFn)
}

func TestMailSender_FallsBackToLog(t *testing.T) {
	assert.IsType(t, &mail.LogSender{}, mailSender(config.MailConfig{}, zerolog.Nop()))
	assert.IsType(t, &mail.SMTPSender{}, mailSender(config.MailConfig{Host: "smtp.example.com", Port: 25}, zerolog.Nop()))
}
