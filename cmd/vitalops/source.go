package main

import (
	"context"
	"time"

	"github.com/JaiMadhav/VitalOps/internal/client"
	"github.com/JaiMadhav/VitalOps/internal/dashboard"
	"github.com/JaiMadhav/VitalOps/internal/domain"
	"github.com/JaiMadhav/VitalOps/internal/fixtures"
	"github.com/JaiMadhav/VitalOps/internal/models"
	"github.com/JaiMadhav/VitalOps/internal/report"
	"github.com/JaiMadhav/VitalOps/internal/repository"
	"github.com/JaiMadhav/VitalOps/internal/service"
	"github.com/JaiMadhav/VitalOps/internal/store"

	"go.uber.org/zap"
)

// dataSource 命令读取数据的来源：本地样例或远程服务
type dataSource interface {
	GetLatest(ctx context.Context) (models.MetricsSnapshot, error)
	GetTrends(ctx context.Context) (models.TrendSeries, error)
	GetDashboard(ctx context.Context, role domain.Role) (dashboard.View, error)
	GetNavigation(ctx context.Context, role domain.Role) ([]dashboard.NavItem, error)
	DownloadTrendReport(ctx context.Context) ([]byte, error)
}

func newSource(serverURL string, now time.Time, logger *zap.Logger) dataSource {
	if serverURL != "" {
		logger.Debug("Using remote server", zap.String("server", serverURL))
		return client.NewAPIClient(serverURL, logger)
	}
	return newLocalSource(now, logger)
}

// localSource 基于内置七日样例的本地数据源
type localSource struct {
	svc *service.HealthDataService
}

func newLocalSource(now time.Time, logger *zap.Logger) *localSource {
	repo := repository.NewMemoryObservationRepo(fixtures.Observations(now))
	svc := service.NewHealthDataService(repo, store.NewMemoryKV(), nil, fixtures.StaticOverview{},
		fixtures.DefaultSubjectID, time.Minute, logger)
	return &localSource{svc: svc}
}

func (s *localSource) GetLatest(ctx context.Context) (models.MetricsSnapshot, error) {
	return s.svc.LatestMetrics(ctx)
}

func (s *localSource) GetTrends(ctx context.Context) (models.TrendSeries, error) {
	return s.svc.HealthTrends(ctx)
}

func (s *localSource) GetDashboard(ctx context.Context, role domain.Role) (dashboard.View, error) {
	return s.svc.Dashboard(ctx, role)
}

func (s *localSource) GetNavigation(_ context.Context, role domain.Role) ([]dashboard.NavItem, error) {
	return dashboard.Navigation(role)
}

func (s *localSource) DownloadTrendReport(ctx context.Context) ([]byte, error) {
	trends, err := s.svc.HealthTrends(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := s.svc.LatestMetrics(ctx)
	if err != nil {
		return nil, err
	}
	return report.GenerateTrendWorkbook(trends, latest)
}
