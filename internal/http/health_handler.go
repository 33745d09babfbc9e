package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/JaiMadhav/VitalOps/internal/dashboard"
	"github.com/JaiMadhav/VitalOps/internal/domain"
	"github.com/JaiMadhav/VitalOps/internal/models"
	"github.com/JaiMadhav/VitalOps/internal/report"

	"go.uber.org/zap"
)

// HealthDataProvider 处理器依赖的健康数据服务
type HealthDataProvider interface {
	CachedLatest(ctx context.Context) (models.MetricsSnapshot, error)
	HealthTrends(ctx context.Context) (models.TrendSeries, error)
	Dashboard(ctx context.Context, role domain.Role) (dashboard.View, error)
}

// HealthHandler 健康数据、仪表盘、导航与占位页接口
type HealthHandler struct {
	svc    HealthDataProvider
	logger *zap.Logger
}

func NewHealthHandler(svc HealthDataProvider, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{svc: svc, logger: logger}
}

// GET /api/v1/health/latest
func (h *HealthHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.CachedLatest(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to load latest metrics", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(snap))
}

// GET /api/v1/health/trends
func (h *HealthHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.svc.HealthTrends(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to load trends", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(trends))
}

// GET /api/v1/dashboard/{role}
func (h *HealthHandler) GetDashboard(w http.ResponseWriter, r *http.Request, roleName string) {
	role, err := domain.ParseRole(roleName)
	if err != nil {
		writeJSON(w, http.StatusNotFound, Fail("unknown role: "+roleName))
		return
	}
	view, err := h.svc.Dashboard(r.Context(), role)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownRole) {
			writeJSON(w, http.StatusNotFound, Fail("unknown role: "+roleName))
			return
		}
		h.serverError(w, r, "failed to build dashboard", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(view))
}

// GET /api/v1/navigation/{role}
func (h *HealthHandler) GetNavigation(w http.ResponseWriter, r *http.Request, roleName string) {
	role, err := domain.ParseRole(roleName)
	if err != nil {
		writeJSON(w, http.StatusNotFound, Fail("unknown role: "+roleName))
		return
	}
	items, err := dashboard.Navigation(role)
	if err != nil {
		writeJSON(w, http.StatusNotFound, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(items))
}

// GET /api/v1/pages
func (h *HealthHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Ok(dashboard.Pages()))
}

// GET /api/v1/pages/{slug}
func (h *HealthHandler) GetPage(w http.ResponseWriter, r *http.Request, slug string) {
	page, ok := dashboard.LookupPage(slug)
	if !ok {
		writeJSON(w, http.StatusNotFound, Fail("page not found: "+slug))
		return
	}
	writeJSON(w, http.StatusOK, Ok(page))
}

// GET /api/v1/reports/trends.xlsx
func (h *HealthHandler) ExportTrends(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	trends, err := h.svc.HealthTrends(ctx)
	if err != nil {
		h.serverError(w, r, "failed to load trends", err)
		return
	}
	latest, err := h.svc.CachedLatest(ctx)
	if err != nil {
		h.serverError(w, r, "failed to load latest metrics", err)
		return
	}
	data, err := report.GenerateTrendWorkbook(trends, latest)
	if err != nil {
		h.serverError(w, r, "failed to generate report", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="trends.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *HealthHandler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.Error(msg,
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.Error(err),
	)
	writeJSON(w, http.StatusInternalServerError, Fail(msg))
}
