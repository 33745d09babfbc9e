package main

import (
	"context"
	"testing"

	"github.com/JaiMadhav/VitalOps/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadObservations_Fixtures(t *testing.T) {
	cfg := config.Default()

	seq, err := loadObservations(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, seq, 7)
	for i := 1; i < len(seq); i++ {
		assert.True(t, seq[i].Timestamp.After(seq[i-1].Timestamp))
	}
}

func TestLoadObservations_PostgresUnavailable(t *testing.T) {
	cfg := config.Default()
	cfg.DataSource = config.DataSourcePostgres
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = 1

	_, err := loadObservations(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}
