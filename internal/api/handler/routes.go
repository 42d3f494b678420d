package handler

import (
	"net/http"

	"github.com/vfg2006/school-portal-api/internal/api/handler/router"
	"github.com/vfg2006/school-portal-api/internal/usecases/authenticating"
	"github.com/vfg2006/school-portal-api/internal/usecases/banner"
	"github.com/vfg2006/school-portal-api/internal/usecases/marketanalysis"
	"github.com/vfg2006/school-portal-api/internal/usecases/school"
	"github.com/vfg2006/school-portal-api/internal/usecases/support"
	"github.com/vfg2006/school-portal-api/pkg/middleware"
)

type chain = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: chain{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: chain{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: chain{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: chain{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: chain{middleware.AdminOnly()},
		},
	}
}

func Schools(service school.SchoolService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/schools",
			Method:      http.MethodGet,
			Handler:     ListSchools(service),
			Middlewares: chain{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/schools",
			Method:      http.MethodPost,
			Handler:     CreateSchool(service),
			Middlewares: chain{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/schools/:id",
			Method:      http.MethodGet,
			Handler:     GetSchool(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/schools/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSchool(service),
			Middlewares: chain{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/schools/:id",
			Method:      http.MethodDelete,
			Handler:     DeactivateSchool(service),
			Middlewares: chain{middleware.AdminOnly()},
		},
	}
}

func MarketAnalysis(service marketanalysis.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/market-analysis",
			Method:      http.MethodPost,
			Handler:     AnalyzeAddress(service),
			Middlewares: chain{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/schools/:id/market-analysis",
			Method:      http.MethodPost,
			Handler:     AnalyzeSchool(service),
			Middlewares: chain{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/schools/:id/market-analysis",
			Method:      http.MethodGet,
			Handler:     GetSchoolAnalysis(service),
			Middlewares: chain{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/schools/:id/market-analysis",
			Method:      http.MethodDelete,
			Handler:     ClearSchoolAnalysis(service),
			Middlewares: chain{middleware.AdminOnly()},
		},
	}
}

func Banners(service banner.BannerService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/banners",
			Method:      http.MethodGet,
			Handler:     ListBanners(service),
			Middlewares: chain{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/banners",
			Method:      http.MethodPost,
			Handler:     CreateBanner(service),
			Middlewares: chain{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me/banners",
			Method:      http.MethodGet,
			Handler:     ListActiveBanners(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/banners/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBanner(service),
			Middlewares: chain{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/banners/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteBanner(service),
			Middlewares: chain{middleware.AdminOnly()},
		},
	}
}

func Support(service support.SupportService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/schools/:id/tickets",
			Method:      http.MethodPost,
			Handler:     CreateTicket(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/schools/:id/tickets",
			Method:      http.MethodGet,
			Handler:     ListTickets(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/schools/:id/tickets/:ref",
			Method:      http.MethodGet,
			Handler:     GetTicket(service),
			Middlewares: chain{middleware.AllRoles()},
		},
		{
			Path:        "/v1/schools/:id/tickets/:ref/comments",
			Method:      http.MethodPost,
			Handler:     AddTicketComment(service),
			Middlewares: chain{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: chain{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: chain{middleware.AdminOnly()},
		},
	}
}
