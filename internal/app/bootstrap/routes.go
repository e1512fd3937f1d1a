// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	dashboardfeature "github.com/gatherhub/gatherhub/internal/app/features/dashboard"
	errorsfeature "github.com/gatherhub/gatherhub/internal/app/features/errors"
	eventsfeature "github.com/gatherhub/gatherhub/internal/app/features/events"
	healthfeature "github.com/gatherhub/gatherhub/internal/app/features/health"
	hosteventsfeature "github.com/gatherhub/gatherhub/internal/app/features/hostevents"
	hostrequestsfeature "github.com/gatherhub/gatherhub/internal/app/features/hostrequests"
	hostsfeature "github.com/gatherhub/gatherhub/internal/app/features/hosts"
	myeventsfeature "github.com/gatherhub/gatherhub/internal/app/features/myevents"
	paymentsfeature "github.com/gatherhub/gatherhub/internal/app/features/payments"
	profilefeature "github.com/gatherhub/gatherhub/internal/app/features/profile"
	reviewsfeature "github.com/gatherhub/gatherhub/internal/app/features/reviews"
	userinfofeature "github.com/gatherhub/gatherhub/internal/app/features/userinfo"
	usersfeature "github.com/gatherhub/gatherhub/internal/app/features/users"
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend connections, and any
// Startup hooks have completed. GatherHub applies the credential-forwarding
// middleware globally, then mounts one feature router per API area.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	errLog := errorsfeature.NewErrorLogger(logger, appCfg.Dev)

	// Shared limiter for mutation endpoints that hit the core API with
	// user-supplied payloads.
	writeLimiter := ratelimit.New(30, time.Minute)

	r := chi.NewRouter()

	// Global auth middleware: stores the forwarded token cookies in the
	// request context and resolves the current user when they are present.
	r.Use(authn.LoadUser(deps.API, logger))

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		userinfoHandler := userinfofeature.NewHandler()
		api.Get("/auth/me", userinfoHandler.ServeMe)
		api.Get("/navigation", userinfoHandler.ServeNavigation)

		eventsHandler := eventsfeature.NewHandler(deps.API, errLog, logger)
		api.Mount("/events", eventsfeature.Routes(eventsHandler))

		myeventsHandler := myeventsfeature.NewHandler(deps.API, errLog, logger)
		api.Mount("/my-events", myeventsfeature.Routes(myeventsHandler))

		hostrequestsHandler := hostrequestsfeature.NewHandler(deps.API, errLog, logger)
		hosteventsHandler := hosteventsfeature.NewHandler(deps.API, errLog, logger)
		api.Route("/host", func(host chi.Router) {
			host.Mount("/events", hosteventsfeature.Routes(hosteventsHandler))
			host.Mount("/request", ratelimit.Middleware(writeLimiter)(hostrequestsfeature.SubmitRoutes(hostrequestsHandler)))
			host.Mount("/requests", hostrequestsfeature.AdminRoutes(hostrequestsHandler))
		})

		usersHandler := usersfeature.NewHandler(deps.API, errLog, logger)
		api.Mount("/users", usersfeature.Routes(usersHandler))

		hostsHandler := hostsfeature.NewHandler(deps.API, errLog, logger)
		api.Mount("/hosts", hostsfeature.Routes(hostsHandler))

		paymentsHandler := paymentsfeature.NewHandler(deps.API, errLog, logger)
		api.Mount("/payments", paymentsfeature.ListRoutes(paymentsHandler))
		api.Mount("/payment", ratelimit.Middleware(writeLimiter)(paymentsfeature.ActionRoutes(paymentsHandler)))

		profileHandler := profilefeature.NewHandler(deps.API, errLog, logger)
		api.Mount("/profile", profilefeature.Routes(profileHandler))

		reviewsHandler := reviewsfeature.NewHandler(deps.API, errLog, logger)
		api.Mount("/review", reviewsfeature.Routes(reviewsHandler))

		dashboardHandler := dashboardfeature.NewHandler(deps.API, errLog, logger)
		api.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))
	})

	return r, nil
}
