package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/JaiMadhav/VitalOps/internal/dashboard"
	"github.com/JaiMadhav/VitalOps/internal/domain"
	"github.com/JaiMadhav/VitalOps/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrNotFound 服务端返回 404
var ErrNotFound = errors.New("not found")

const resultSuccess = 2000

// apiResponse 服务端统一响应包装
type apiResponse struct {
	Code    int             `json:"code"`
	Type    string          `json:"type"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// APIClient vitalops-server HTTP 客户端
type APIClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewAPIClient 创建客户端
func NewAPIClient(baseURL string, logger *zap.Logger) *APIClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json")

	return &APIClient{httpClient: client, logger: logger}
}

// GetLatest 最新指标快照
func (c *APIClient) GetLatest(ctx context.Context) (models.MetricsSnapshot, error) {
	var out models.MetricsSnapshot
	err := c.get(ctx, "/api/v1/health/latest", &out)
	return out, err
}

// GetTrends 趋势序列
func (c *APIClient) GetTrends(ctx context.Context) (models.TrendSeries, error) {
	var out models.TrendSeries
	err := c.get(ctx, "/api/v1/health/trends", &out)
	return out, err
}

// GetDashboard 角色仪表盘
func (c *APIClient) GetDashboard(ctx context.Context, role domain.Role) (dashboard.View, error) {
	var out dashboard.View
	err := c.get(ctx, "/api/v1/dashboard/"+role.String(), &out)
	return out, err
}

// GetNavigation 角色导航
func (c *APIClient) GetNavigation(ctx context.Context, role domain.Role) ([]dashboard.NavItem, error) {
	var out []dashboard.NavItem
	err := c.get(ctx, "/api/v1/navigation/"+role.String(), &out)
	return out, err
}

// GetPage 占位页
func (c *APIClient) GetPage(ctx context.Context, slug string) (dashboard.Page, error) {
	var out dashboard.Page
	err := c.get(ctx, "/api/v1/pages/"+slug, &out)
	return out, err
}

// DownloadTrendReport 下载趋势 Excel
func (c *APIClient) DownloadTrendReport(ctx context.Context) ([]byte, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get("/api/v1/reports/trends.xlsx")
	if err != nil {
		return nil, fmt.Errorf("failed to download report: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("failed to download report: status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

func (c *APIClient) get(ctx context.Context, path string, out any) error {
	var envelope apiResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&envelope).
		SetError(&envelope).
		Get(path)
	if err != nil {
		c.logger.Debug("API call failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to call %s: %w", path, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%s: %w", envelopeMessage(envelope, path), ErrNotFound)
	}
	if envelope.Code != resultSuccess {
		return fmt.Errorf("API error: %s (status: %d)", envelopeMessage(envelope, path), resp.StatusCode())
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s result: %w", path, err)
	}
	return nil
}

func envelopeMessage(e apiResponse, path string) string {
	if e.Message != "" {
		return e.Message
	}
	return path
}
