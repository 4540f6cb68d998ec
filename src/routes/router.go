package routes

import (
	_ "mergington-activities/docs"
	"mergington-activities/src/controllers"
	"mergington-activities/src/jobs"
	"mergington-activities/src/metrics"
	"mergington-activities/src/middleware"
	"mergington-activities/src/services/activities"
	"mergington-activities/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Dependencies is everything the HTTP layer needs. Notifier and Redis may be
// nil. /metrics is mounted only when Gatherer is set.
type Dependencies struct {
	Registry       *activities.Registry
	Notifier       jobs.Notifier
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	Redis          *redis.Client
	Log            *zap.Logger
	StaticDir      string
	AllowedOrigins string
}

// NewApp creates the fiber app with middleware and all routes mounted.
func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Mergington High School API",
		ErrorHandler: errorHandler,
	})

	origins := deps.AllowedOrigins
	if origins == "" {
		origins = "*"
	}

	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(deps.Log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	InitRoutes(app, deps)
	return app
}

// InitRoutes mounts the application routes on app.
func InitRoutes(app *fiber.App, deps Dependencies) {
	ac := controllers.NewActivityController(deps.Registry, deps.Notifier, deps.Metrics, deps.Log)
	hc := controllers.NewHealthController(deps.Redis)

	activityRoutes(app, ac)

	app.Get("/healthz", hc.GetHealth)
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	staticDir := deps.StaticDir
	if staticDir == "" {
		staticDir = "./static"
	}
	app.Static("/static", staticDir)

	app.Get("/", controllers.RedirectToIndex)
}

// errorHandler keeps fiber's own errors (unknown route, bad method) in the
// same envelope as handler errors.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	detail := "Internal server error"
	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
		detail = fe.Message
	}
	return utils.HandleError(c, code, detail)
}
