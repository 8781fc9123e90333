package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"weighroom-backend/auth"
	"weighroom-backend/config"
	"weighroom-backend/controllers"
	"weighroom-backend/logger"
	"weighroom-backend/mail"
	"weighroom-backend/metrics"
	"weighroom-backend/middleware"
	"weighroom-backend/roster"
	"weighroom-backend/schools"
	"weighroom-backend/weights"
)

type Dependencies struct {
	DB      *sqlx.DB
	Config  config.Config
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Mailer  mail.Mailer
}

// NewApp builds the fiber app with the middleware stack and every route.
func NewApp(d Dependencies) *fiber.App {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Mailer == nil {
		d.Mailer = mail.NewLogMailer(d.Logger)
	}

	app := fiber.New(fiber.Config{
		AppName:      "weighroom-backend",
		ErrorHandler: errorHandler(d.Logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.Middleware(d.Logger))
	app.Use(d.Metrics.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Config.CORSOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + middleware.AdminTokenHeader,
	}))

	Register(app, d)
	return app
}

func Register(app *fiber.App, d Dependencies) {
	schoolRepo := schools.NewPostgresRepository(d.DB)
	wrestlerRepo := roster.NewPostgresRepository(d.DB)
	weightRepo := weights.NewPostgresRepository(d.DB)
	issuer := auth.NewTokenIssuer(d.Config.JWTSecret, d.Config.TokenTTL)

	authCtl := controllers.NewAuthController(schoolRepo, issuer, d.Config.RefreshGrace, d.Metrics)
	wrestlerCtl := controllers.NewWrestlerController(wrestlerRepo)
	weightCtl := controllers.NewWeightController(weightRepo)
	schoolCtl := controllers.NewSchoolController(schoolRepo)
	reportCtl := controllers.NewReportController(wrestlerRepo, weightRepo)
	contactCtl := controllers.NewContactController(schoolRepo, d.Mailer)
	adminCtl := controllers.NewAdminController(schoolRepo, controllers.AdminCredentials{
		Username: d.Config.AdminUsername,
		Password: d.Config.AdminPassword,
		Token:    d.Config.AdminToken,
	})
	healthCtl := controllers.NewHealthController(d.DB)

	app.Get("/health", healthCtl.Health)
	app.Get("/metrics", d.Metrics.Handler())

	api := app.Group("/api")
	requireAuth := middleware.RequireAuth(issuer)

	api.Post("/login", authCtl.Login)
	api.Post("/auth/login", authCtl.Login)
	api.Get("/auth/verify", requireAuth, authCtl.Verify)
	api.Post("/auth/refresh", authCtl.Refresh)

	api.Get("/wrestlers", requireAuth, wrestlerCtl.List)
	api.Post("/wrestlers", requireAuth, wrestlerCtl.Create)
	api.Post("/wrestlers/import", requireAuth, wrestlerCtl.Import)
	api.Patch("/wrestlers/:id", requireAuth, wrestlerCtl.Update)
	api.Delete("/wrestlers/:id", requireAuth, wrestlerCtl.Delete)

	api.Get("/weights", requireAuth, weightCtl.History)
	api.Post("/weights", requireAuth, weightCtl.Add)

	api.Patch("/school/settings", requireAuth, schoolCtl.UpdateSettings)
	api.Get("/reports/:kind", requireAuth, reportCtl.Report)
	api.Post("/contact", requireAuth, contactCtl.Send)

	admin := api.Group("/admin")
	admin.Post("/login", adminCtl.Login)

	requireAdmin := middleware.RequireAdmin(d.Config.AdminToken)
	admin.Post("/schools/list", requireAdmin, adminCtl.ListSchools)
	admin.Post("/schools/create", requireAdmin, adminCtl.CreateSchool)
	admin.Post("/schools/delete", requireAdmin, adminCtl.DeleteSchool)
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled error", zap.Error(err), zap.String("path", c.Path()))
		}
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
}
