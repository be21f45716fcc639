package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lmbotha/lea/config"
	"github.com/lmbotha/lea/internal/courseservice"
	"github.com/lmbotha/lea/internal/interfaces"
	mongoLMSRepo "github.com/lmbotha/lea/internal/lmsrepo/mongo"
	postgresLMSRepo "github.com/lmbotha/lea/internal/lmsrepo/postgres"
	"github.com/lmbotha/lea/internal/routes"
	"github.com/lmbotha/lea/internal/server"
	"github.com/lmbotha/lea/internal/siyavula"
	"github.com/lmbotha/lea/internal/userservice"
	"github.com/lmbotha/lea/pkg/databases/mongo"
	"github.com/lmbotha/lea/pkg/databases/postgres"
	"github.com/lmbotha/lea/pkg/metrics"
	"github.com/lmbotha/lea/pkg/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App represents the main application, containing server and configuration.
// It initializes with a config file, validates settings, and manages routes.
type App struct {
	Server interfaces.Server
	Config *config.ServiceConfig
	Logger interfaces.Logger
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
		// Validation failed, handle the error
		errors := err.(structValidator.ValidationErrors)
		return nil, fmt.Errorf("validation error: %s", errors)
	}

	logger := zerolog.NewZerologLogger(cfg.ServiceName)
	logger.SetLevel(cfg.LogLevel)

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Initialize server, database, and metrics
	serverInstance := server.NewServer(cfg.Host, cfg.Port, logger)
	app.Server = serverInstance

	metricsInstance := app.initializeMetrics()

	dbClient, err := app.initializeDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database client: %v", err)
	}

	lmsRepo, err := app.initializeRepository(dbClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %v", err)
	}

	userService := userservice.NewUserService(lmsRepo, logger)
	courseService := courseservice.NewCourseService(lmsRepo, logger)
	tokenClient := siyavula.NewClient(&cfg.Siyavula, logger)

	route := routes.NewRoute(metricsInstance, userService, courseService, tokenClient,
		cfg.Siyavula.DefaultRegion, cfg.Siyavula.DefaultCurriculum, validator)

	metricsHandler := promhttp.HandlerFor(
		metricsInstance.GetRegistry(),
		promhttp.HandlerOpts{})

	tracedMetricsHandler := otelhttp.NewHandler(metricsHandler, routes.MetricsRouteAPI)

	if err := app.Server.AddRoute(routes.MetricsRouteAPI, tracedMetricsHandler.ServeHTTP); err != nil {
		return nil, fmt.Errorf("failed to add metrics route: %v", err)
	}

	handlers := []struct {
		path    string
		handler func(w http.ResponseWriter, r *http.Request)
	}{
		{routes.HomeRouteAPI, route.Home},
		{routes.RegisterRouteAPI, route.Register},
		{routes.AuthenticateRouteAPI, route.Authenticate},
		{routes.AddCourseRouteAPI, route.AddCourse},
		{routes.AssignCourseRouteAPI, route.AssignCourse},
		{routes.CoursesRouteAPI, route.Courses},
		{routes.GetTokenRouteAPI, route.GetToken},
		{routes.VerifyTokenRouteAPI, route.VerifyToken},
	}
	for _, h := range handlers {
		if err := app.Server.AddRoute(h.path, h.handler); err != nil {
			return nil, fmt.Errorf("failed to add %s route: %v", h.path, err)
		}
	}

	return app, nil
}

func (app *App) Run() error {
	// start the server
	if err := app.Server.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %v", err)
	}

	return nil
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := metrics.NewMetrics(app.Config.ServiceName)
	appMetrics.RegisterCounter(routes.RegisterRequestsTotal, routes.RegisterRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.RegisterSuccessTotal, routes.RegisterSuccessTotalHelp)
	appMetrics.RegisterCounter(routes.RegisterErrorsTotal, routes.RegisterErrorsTotalHelp)
	appMetrics.RegisterHistogram(
		routes.RegisterDurationSeconds,
		routes.RegisterDurationSecondsHelp,
		routes.RegisterDurationSecondsBuckets)

	appMetrics.RegisterCounter(routes.AuthRequestsTotal, routes.AuthRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.AuthSuccessTotal, routes.AuthSuccessTotalHelp)
	appMetrics.RegisterCounter(routes.AuthFailedTotal, routes.AuthFailedTotalHelp)
	appMetrics.RegisterHistogram(
		routes.AuthDurationSeconds,
		routes.AuthDurationSecondsHelp,
		routes.AuthenticateDurationSecondsBuckets)

	appMetrics.RegisterCounter(routes.AddCourseRequestsTotal, routes.AddCourseRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.AddCourseErrorsTotal, routes.AddCourseErrorsTotalHelp)
	appMetrics.RegisterCounter(routes.AssignCourseRequestsTotal, routes.AssignCourseRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.AssignCourseErrorsTotal, routes.AssignCourseErrorsTotalHelp)
	appMetrics.RegisterCounter(routes.CoursesRequestsTotal, routes.CoursesRequestsTotalHelp)

	appMetrics.RegisterCounter(routes.TokenRequestsTotal, routes.TokenRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.TokenErrorsTotal, routes.TokenErrorsTotalHelp)
	appMetrics.RegisterHistogram(
		routes.TokenDurationSeconds,
		routes.TokenDurationSecondsHelp,
		routes.TokenDurationSecondsBuckets)
	appMetrics.RegisterCounter(routes.VerifyRequestsTotal, routes.VerifyRequestsTotalHelp)
	appMetrics.RegisterCounter(routes.VerifyErrorsTotal, routes.VerifyErrorsTotalHelp)

	return appMetrics
}

func (app *App) initializeDBClient() (interfaces.DBClient, error) {
	var dbClient interfaces.DBClient
	var err error

	switch app.Config.Database.Type {
	case "mongo":
		// Initialize MongoDB client
		dbClient, err = mongo.NewMongoDB(&app.Config.Database.MongoDB)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MongoDB client: %v", err)
		}

		// Ensure the MongoDB client is connected
		if err = dbClient.Connect(context.Background(), app.Config.Database.MongoDB.DSN); err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
		}

	case "postgres":
		// Create and connect PostgreSQL database client
		opts := app.Config.Database.Postgres.Options
		dbClient = postgres.NewPostgresDatabaseClient(opts.MaxOpenConns, opts.MaxIdleConns, opts.ConnMaxLifetime)
		if err = dbClient.Connect(context.Background(), app.Config.Database.Postgres.DSN); err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %v", err)
		}

	default:
		return nil, fmt.Errorf("unsupported database type: %s", app.Config.Database.Type)
	}

	return dbClient, nil
}

func (app *App) initializeRepository(dbClient interfaces.DBClient) (interfaces.Repository, error) {
	var lmsRepo interfaces.Repository
	var err error

	switch app.Config.Database.Type {
	case "mongo":
		// Initialize MongoDB repository
		lmsRepo, err = mongoLMSRepo.NewMongoLMSRepository(dbClient)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MongoDB repository: %v", err)
		}

	case "postgres":
		// Initialize PostgreSQL repository
		lmsRepo, err = postgresLMSRepo.NewPostgresLMSRepository(dbClient)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize PostgreSQL repository: %v", err)
		}

	default:
		return nil, fmt.Errorf("unsupported database type: %s", app.Config.Database.Type)
	}

	// Ensure tables/indices exist for the selected backend
	if err = lmsRepo.EnsureIndices(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure indices: %v", err)
	}

	return lmsRepo, nil
}
