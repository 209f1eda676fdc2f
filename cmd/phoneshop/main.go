package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"phoneshop/internal/config"
	"phoneshop/internal/http/handlers"
	applog "phoneshop/internal/log"
	"phoneshop/internal/repos"
	"phoneshop/internal/services"
)

func main() {
	cfg := config.Load()
	applog.Init(cfg.LogFile)
	defer applog.Sync()

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := repos.SeedAdmin(db, cfg.AdminUser, cfg.AdminPass); err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Never leak internals to the caller
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, authSvc)

	// Public storefront
	app.Get("/", deps.PublicHandler.Page)

	api := app.Group("/api")
	api.Get("/public/products", deps.PublicHandler.List)

	// Auth (login throttled)
	auth := api.Group("/auth")
	auth.Post("/register", deps.AuthHandler.Register)
	auth.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)

	// Everything below requires a bearer token
	gate := handlers.RequireAuth(authSvc)
	auth.Get("/me", gate, deps.AuthHandler.Me)

	bills := api.Group("/bills", gate)
	bills.Get("/", deps.BillHandler.List)
	bills.Post("/", deps.BillHandler.Create)

	products := api.Group("/products", gate)
	products.Get("/", deps.ProductHandler.List)
	products.Post("/", deps.ProductHandler.Create)
	products.Put("/:id", deps.ProductHandler.Update)
	products.Delete("/:id", deps.ProductHandler.Delete)

	investments := api.Group("/investments", gate)
	investments.Get("/", deps.InvestmentHandler.List)
	investments.Get("/:id", deps.InvestmentHandler.Get)
	investments.Post("/", deps.InvestmentHandler.Create)
	investments.Put("/:id", deps.InvestmentHandler.Update)
	investments.Delete("/:id", deps.InvestmentHandler.Delete)

	servicesGrp := api.Group("/services", gate)
	servicesGrp.Get("/", deps.ServiceHandler.List)
	servicesGrp.Get("/:id", deps.ServiceHandler.Get)
	servicesGrp.Post("/", deps.ServiceHandler.Create)
	servicesGrp.Put("/:id", deps.ServiceHandler.Update)
	servicesGrp.Delete("/:id", deps.ServiceHandler.Delete)

	profits := api.Group("/profits", gate)
	profits.Get("/", deps.ProfitHandler.List)
	profits.Post("/", deps.ProfitHandler.Upsert)
	profits.Post("/recalculate", deps.ProfitHandler.Recalculate)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
