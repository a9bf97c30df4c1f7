package api

import (
	"ecotrack/docs"
	"ecotrack/internal/api/handlers"
	"ecotrack/pkg/auth"
	"ecotrack/pkg/metrics"
	"ecotrack/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth            *handlers.AuthHandler
	Profile         *handlers.ProfileHandler
	Recommendations *handlers.RecommendationHandler
	Insights        *handlers.InsightHandler
}

func SetupRouter(
	h Handlers,
	jwtManager *auth.JWTManager,
	m *metrics.Metrics,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// importing docs registers the swagger document
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	protected.Get("/profile", h.Profile.GetProfile)
	protected.Put("/profile", h.Profile.UpdateProfile)

	footprints := protected.Group("/footprints")
	footprints.Post("", h.Profile.RecordFootprint)
	footprints.Get("/latest", h.Profile.LatestFootprint)

	recommendations := protected.Group("/recommendations")
	recommendations.Post("/generate", h.Recommendations.GenerateRecommendations)
	recommendations.Get("", h.Recommendations.ListRecommendations)
	recommendations.Post("/:id/implement", h.Recommendations.ImplementRecommendation)
	recommendations.Post("/:id/dismiss", h.Recommendations.DismissRecommendation)

	insights := protected.Group("/insights")
	insights.Post("/predictions", h.Insights.PredictEmissions)
	insights.Post("/behavior", h.Insights.AnalyzeBehavior)

	appLogger.Info("Routes registered", zap.Int("count", len(app.GetRoutes(true))))
	return app
}
