package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JaiMadhav/VitalOps/internal/domain"
	"github.com/JaiMadhav/VitalOps/internal/fixtures"
	httpapi "github.com/JaiMadhav/VitalOps/internal/http"
	"github.com/JaiMadhav/VitalOps/internal/repository"
	"github.com/JaiMadhav/VitalOps/internal/service"
	"github.com/JaiMadhav/VitalOps/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := repository.NewMemoryObservationRepo(fixtures.Observations(end))
	svc := service.NewHealthDataService(repo, store.NewMemoryKV(), nil, fixtures.StaticOverview{},
		fixtures.DefaultSubjectID, time.Minute, zap.NewNop())

	r := httpapi.NewRouter(zap.NewNop())
	r.RegisterHealthRoutes(httpapi.NewHealthHandler(svc, zap.NewNop()))
	srv := httptest.NewServer(r.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestAPIClient_RoundTrip(t *testing.T) {
	srv := newTestServer(t)
	c := NewAPIClient(srv.URL, zap.NewNop())
	ctx := context.Background()

	latest, err := c.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 68, latest.HeartRate)
	require.NotNil(t, latest.ObservedAt)

	trends, err := c.GetTrends(ctx)
	require.NoError(t, err)
	assert.Len(t, trends.Weight, 7)

	view, err := c.GetDashboard(ctx, domain.RoleOfficer)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOfficer, view.Role)
	assert.Equal(t, "Command Dashboard", view.Title)
	assert.NotEmpty(t, view.Team)

	nav, err := c.GetNavigation(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "/users", nav[1].Href)

	page, err := c.GetPage(ctx, "privacy")
	require.NoError(t, err)
	assert.Equal(t, "Privacy Policy", page.Title)

	data, err := c.DownloadTrendReport(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestAPIClient_NotFound(t *testing.T) {
	c := NewAPIClient(newTestServer(t).URL, zap.NewNop())

	_, err := c.GetPage(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "page not found")
}

func TestAPIClient_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":-1,"type":"error","message":"failed to load trends","result":null}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, zap.NewNop())
	_, err := c.GetTrends(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load trends")
}
