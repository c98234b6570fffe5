package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/x/auth"
	"github.com/totegamma/rolegate/x/rbac"
	"github.com/totegamma/rolegate/x/role"
	"github.com/totegamma/rolegate/x/user"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version      = "unknown"
	buildMachine = "unknown"
	buildTime    = "unknown"
	goVersion    = "unknown"
)

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("rolegate %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	config := Config{}
	configPath := os.Getenv("ROLEGATE_CONFIG")
	if configPath == "" {
		configPath = "/etc/rolegate/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	conconf := core.SetupConfig(config.Rolegate)

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "rolegate", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "rolegate",
		LabelFuncs: map[string]echoprometheus.LabelValueFunc{
			"url": func(c echo.Context, err error) string {
				return c.Path()
			},
		},
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	slog.Info("start migrate")
	err = db.AutoMigrate(
		&core.Role{},
		&core.User{},
	)
	if err != nil {
		panic("failed to migrate database: " + err.Error())
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "", // no password set
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	ids, err := SetupIDGenerator(conconf)
	if err != nil {
		panic(err)
	}
	if closer, ok := ids.(interface{ Close() }); ok {
		defer closer.Close()
	}

	actor, err := SetupRBACActor(db, mc, conconf)
	if err != nil {
		panic(fmt.Sprintf("failed to load policies: %v", err))
	}
	defer actor.Close()

	roleService := SetupRoleService(db, ids, actor)
	roleHandler := role.NewHandler(roleService)

	userService := SetupUserService(db, mc, ids, actor, roleService)
	userHandler := user.NewHandler(userService)

	jwtService := SetupJwtService(rdb, conconf)

	authService := SetupAuthService(userService, jwtService)
	authHandler := auth.NewHandler(authService, userService)

	rbacHandler := rbac.NewHandler(actor)

	e.Use(authService.IdentifyIdentity)

	// auth
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout, auth.Restrict)
	e.GET("/me", authHandler.Me, auth.Restrict)

	guarded := e.Group("", auth.Restrict, rbac.RequirePermission(actor))

	// role
	guarded.GET("/roles", roleHandler.List)
	guarded.GET("/role/:id", roleHandler.Get)
	guarded.POST("/role", roleHandler.Create)
	guarded.PUT("/role/:id", roleHandler.Update)
	guarded.DELETE("/role/:id", roleHandler.Delete)

	// user
	guarded.GET("/users", userHandler.List)
	guarded.GET("/user/:id", userHandler.Get)
	guarded.POST("/user", userHandler.Create)
	guarded.PUT("/user/:id", userHandler.Update)
	guarded.PUT("/user/:id/password", userHandler.ChangePassword)
	guarded.DELETE("/user/:id", userHandler.Delete)

	// rbac
	guarded.POST("/admin/rbac/reset", rbacHandler.Reset)
	guarded.GET("/admin/rbac/policies", rbacHandler.Policies)

	// misc
	e.GET("/profile", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version":      version,
			"buildTime":    buildTime,
			"buildMachine": buildMachine,
			"goVersion":    goVersion,
		})
	})
	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	err = bootstrap(context.Background(), config.Bootstrap, e.Routes(), roleService, userService)
	if err != nil {
		slog.Error("bootstrap failed", slog.String("error", err.Error()))
	}

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rolegate_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	go func() {
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			roles, err := roleService.List(ctx, 1, 1)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count roles: %v", err))
			} else {
				resourceCountMetrics.WithLabelValues("role").Set(float64(roles.Total))
			}

			users, err := userService.List(ctx, 1, 1)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count users: %v", err))
			} else {
				resourceCountMetrics.WithLabelValues("user").Set(float64(users.Total))
			}

			cancel()
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(config.Server.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", slog.String("error", err.Error()))
	}
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
