package handler

import (
	"net/http"
	"path/filepath"

	"github.com/vfg2006/ecom-dashboard/internal/api/handler/router"
	"github.com/vfg2006/ecom-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/ecom-dashboard/pkg/metrics"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RenderDashboard(service),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/map",
			Method:  http.MethodGet,
			Handler: GetDashboardMap(service),
		},
		{
			Path:    "/v1/charts/:section",
			Method:  http.MethodGet,
			Handler: GetChart(service),
		},
	}
}

func KeepAlive(service KeepAliver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/keepalive/run",
			Method:  http.MethodPost,
			Handler: RunKeepAlive(service),
		},
		{
			Path:    "/v1/keepalive/status",
			Method:  http.MethodGet,
			Handler: GetKeepAliveStatus(service),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

// Static serve o ícone dos marcadores do mapa
func Static(staticDir string) []router.Route {
	return []router.Route{
		{
			Path:    "/icon/*filepath",
			Method:  http.MethodGet,
			Handler: http.StripPrefix("/icon", http.FileServer(http.Dir(filepath.Join(staticDir, "icon")))),
		},
	}
}
