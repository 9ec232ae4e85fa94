package app

import (
	"crypto/ecdsa"
	"fmt"
	"net/http"

	"github.com/mealmajor/accountd/config"
	"github.com/mealmajor/accountd/internal/accounts"
	"github.com/mealmajor/accountd/internal/auth"
	"github.com/mealmajor/accountd/internal/interfaces"
	"github.com/mealmajor/accountd/internal/middleware"
	"github.com/mealmajor/accountd/internal/routes"
	"github.com/mealmajor/accountd/internal/schema"
	"github.com/mealmajor/accountd/internal/server"
	"github.com/mealmajor/accountd/internal/store"
	"github.com/mealmajor/accountd/pkg/metrics"
	zerologger "github.com/mealmajor/accountd/pkg/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// App wires the account service together: config, logger, store, account
// operations, and the HTTP boundary.
type App struct {
	Server     interfaces.Server
	Config     *config.ServiceConfig
	Store      interfaces.UserStore
	Logger     interfaces.Logger
	privateKey *ecdsa.PrivateKey
}

// NewApp creates and configures a new App instance.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	// Validate the configuration
	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		errors := err.(structValidator.ValidationErrors)
		return nil, fmt.Errorf("validation error: %s", errors)
	}

	logger := zerologger.NewZerologLogger(cfg.ServiceName)
	logger.SetLevel(cfg.LogLevel)

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	app.Server = server.NewServer(cfg.Host, cfg.Port, logger)

	metricsInstance := app.initializeMetrics()

	if err := app.initializePrivateKey(); err != nil {
		return nil, fmt.Errorf("failed to initialize private key: %v", err)
	}

	// Hydrate the record store. A missing or unreadable data file is not
	// fatal; the store starts empty and logs what happened.
	template := schema.NewTemplate(cfg.Store.TemplateAttributes())
	userStore := store.NewFileStore(cfg.Store.DataPath, template, logger)
	userStore.Load()
	app.Store = userStore
	metricsInstance.SetGauge(routes.RegisteredUsersGauge, float64(userStore.Count()))

	accountService := accounts.NewService(userStore, logger)

	route := routes.NewRoute(metricsInstance, accountService, app.privateKey, validator, logger)

	metricsHandler := promhttp.HandlerFor(
		metricsInstance.GetRegistry(),
		promhttp.HandlerOpts{})

	tracedMetricsHandler := otelhttp.NewHandler(metricsHandler, routes.MetricsRouteAPI)

	if err := app.Server.AddRoute(routes.MetricsRouteAPI, tracedMetricsHandler.ServeHTTP); err != nil {
		return nil, fmt.Errorf("failed to add metrics route: %v", err)
	}

	if err := app.Server.AddRoute(routes.SignupRouteAPI, route.Signup); err != nil {
		return nil, fmt.Errorf("failed to add signup route: %v", err)
	}

	// Login gets a rate limiter; the account core has no lockout state.
	loginLimiter := rate.NewLimiter(rate.Limit(cfg.Login.RateLimit), cfg.Login.RateBurst)
	limitedLogin := middleware.RateLimitMiddleware(loginLimiter)(http.HandlerFunc(route.Login))
	if err := app.Server.AddRoute(routes.LoginRouteAPI, limitedLogin.ServeHTTP); err != nil {
		return nil, fmt.Errorf("failed to add login route: %v", err)
	}

	if err := app.Server.AddRoute(routes.UserAttributeRouteAPI, route.UserAttribute); err != nil {
		return nil, fmt.Errorf("failed to add user attribute route: %v", err)
	}

	if err := app.Server.AddRoute(routes.ProfileRouteAPI, route.Profile); err != nil {
		return nil, fmt.Errorf("failed to add profile route: %v", err)
	}

	if err := app.Server.AddRoute(routes.ChangePasswordRouteAPI, route.ChangePassword); err != nil {
		return nil, fmt.Errorf("failed to add change password route: %v", err)
	}

	if err := app.Server.AddRoute(routes.LogoutRouteAPI, route.Logout); err != nil {
		return nil, fmt.Errorf("failed to add logout route: %v", err)
	}

	return app, nil
}

// Run starts the HTTP server.
func (app *App) Run() error {
	if err := app.Server.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %v", err)
	}

	return nil
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := metrics.NewMetrics(app.Config.ServiceName)
	appMetrics.RegisterCounter(routes.SignupRequestsTotal, routes.SignupRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.SignupSuccessTotal, routes.SignupSuccessTotalHelp)
	appMetrics.RegisterCounter(routes.SignupErrorsTotal, routes.SignupErrorsTotalHelp)
	appMetrics.RegisterHistogram(
		routes.SignupDurationSeconds,
		routes.SignupDurationSecondsHelp,
		routes.SignupDurationSecondsBuckets)

	appMetrics.RegisterCounter(routes.LoginRequestsTotal, routes.LoginRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.LoginSuccessTotal, routes.LoginSuccessTotalHelp)
	appMetrics.RegisterCounter(routes.LoginFailedTotal, routes.LoginFailedTotalHelp)
	appMetrics.RegisterHistogram(
		routes.LoginDurationSeconds,
		routes.LoginDurationSecondsHelp,
		routes.LoginDurationSecondsBuckets)

	appMetrics.RegisterCounter(routes.ProfileReadsTotal, routes.ProfileReadsTotalHelp)
	appMetrics.RegisterCounter(routes.ProfileUpdatesTotal, routes.ProfileUpdatesTotalHelp)
	appMetrics.RegisterCounter(routes.ProfileErrorsTotal, routes.ProfileErrorsTotalHelp)
	appMetrics.RegisterCounter(routes.PasswordChangesTotal, routes.PasswordChangesTotalHelp)
	appMetrics.RegisterCounter(routes.PasswordErrorsTotal, routes.PasswordErrorsTotalHelp)
	appMetrics.RegisterGauge(routes.RegisteredUsersGauge, routes.RegisteredUsersGaugeHelp)

	return appMetrics
}

func (app *App) initializePrivateKey() error {
	if app.Config.PrivateKeyPath == "" {
		return fmt.Errorf("private key path is not provided in the configuration")
	}

	privateKey, err := auth.LoadECDSAPrivateKey(app.Config.PrivateKeyPath)
	if err != nil {
		return fmt.Errorf("failed to load private key: %v", err)
	}

	app.privateKey = privateKey
	return nil
}
