package handler

import (
	"net/http"

	"github.com/revalyt/analytics-api/infrastructure/database/postgres"
	"github.com/revalyt/analytics-api/infrastructure/repository"
	"github.com/revalyt/analytics-api/internal/api/handler/router"
	"github.com/revalyt/analytics-api/internal/config"
	"github.com/revalyt/analytics-api/internal/scheduler"
	"github.com/revalyt/analytics-api/internal/usecases/analyzing"
	"github.com/revalyt/analytics-api/internal/usecases/authenticating"
	"github.com/revalyt/analytics-api/internal/usecases/ordering"
	"github.com/revalyt/analytics-api/internal/usecases/reporting"
	"github.com/revalyt/analytics-api/pkg/cookiedomain"
)

func Healthcheck(conn postgres.Conn) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn),
		},
	}
}

func Authentication(service authenticating.Authenticator, cfg *config.Config, resolver *cookiedomain.Resolver) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/api/auth/token",
			Method:  http.MethodPost,
			Handler: Login(service, cfg, resolver),
		},
		{
			Path:    "/api/auth/token/refresh",
			Method:  http.MethodPost,
			Handler: Refresh(service, cfg, resolver),
		},
		{
			Path:    "/api/auth/logout",
			Method:  http.MethodPost,
			Handler: Logout(cfg, resolver),
		},
		{
			Path:    "/api/auth/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/api/auth/profile",
			Method:  http.MethodGet,
			Handler: GetProfile(service),
		},
		{
			Path:    "/api/auth/profile",
			Method:  http.MethodPut,
			Handler: UpdateProfile(service),
		},
		{
			Path:    "/api/auth/password/forgot",
			Method:  http.MethodPost,
			Handler: ForgotPassword(service),
		},
		{
			Path:    "/api/auth/password/reset",
			Method:  http.MethodPost,
			Handler: ResetPassword(service),
		},
	}
}

func Analytics(analyzer analyzing.Analyzer, orderer ordering.Orderer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analytics/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(analyzer),
		},
		{
			Path:    "/api/analytics/orders",
			Method:  http.MethodGet,
			Handler: ListOrders(analyzer),
		},
		{
			Path:    "/api/analytics/orders",
			Method:  http.MethodPost,
			Handler: CreateOrder(orderer),
		},
		{
			Path:    "/api/analytics/customers",
			Method:  http.MethodPost,
			Handler: CreateCustomer(orderer),
		},
		{
			Path:    "/api/analytics/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(orderer),
		},
	}
}

func Reports(
	reporter reporting.Reporter,
	dailyKPIRepo repository.DailyKPIRepository,
	syncService *scheduler.DailyKPISyncService,
) []router.Route {
	return []router.Route{
		{
			Path:    "/api/reports/daily",
			Method:  http.MethodGet,
			Handler: ListDailyReports(dailyKPIRepo),
		},
		{
			Path:    "/api/reports/daily/run",
			Method:  http.MethodPost,
			Handler: RunDailyReport(reporter),
		},
		{
			Path:    "/api/reports/status",
			Method:  http.MethodGet,
			Handler: GetReportStatus(syncService),
		},
	}
}
