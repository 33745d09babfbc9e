package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

const apiPrefix = "/api/v1"

// Router 使用标准库 http.ServeMux
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Handler 带请求日志的入口
func (r *Router) Handler() http.Handler {
	return WithRequestLogging(r, r.logger)
}

// getOnly 仅允许 GET
func getOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, req)
	}
}

// RegisterHealthRoutes 注册健康数据与仪表盘路由
func (r *Router) RegisterHealthRoutes(h *HealthHandler) {
	r.Handle(apiPrefix+"/health/latest", getOnly(h.GetLatest))
	r.Handle(apiPrefix+"/health/trends", getOnly(h.GetTrends))
	r.Handle(apiPrefix+"/reports/trends.xlsx", getOnly(h.ExportTrends))

	r.Handle(apiPrefix+"/dashboard/", getOnly(func(w http.ResponseWriter, req *http.Request) {
		role, ok := pathParam(req.URL.Path, apiPrefix+"/dashboard/")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.GetDashboard(w, req, role)
	}))

	r.Handle(apiPrefix+"/navigation/", getOnly(func(w http.ResponseWriter, req *http.Request) {
		role, ok := pathParam(req.URL.Path, apiPrefix+"/navigation/")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.GetNavigation(w, req, role)
	}))

	r.Handle(apiPrefix+"/pages", getOnly(h.ListPages))
	r.Handle(apiPrefix+"/pages/", getOnly(func(w http.ResponseWriter, req *http.Request) {
		slug, ok := pathParam(req.URL.Path, apiPrefix+"/pages/")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.GetPage(w, req, slug)
	}))
}

// RegisterHealthzRoute 存活探针
func (r *Router) RegisterHealthzRoute() {
	r.Handle("/healthz", getOnly(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Ok(map[string]string{"status": "ok"}))
	}))
}
