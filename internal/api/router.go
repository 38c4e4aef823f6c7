package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/csemotors/dealership/internal/api/flash"
	"github.com/csemotors/dealership/internal/api/handler"
	"github.com/csemotors/dealership/internal/api/middleware"
	"github.com/csemotors/dealership/internal/core/service"
	"github.com/csemotors/dealership/internal/forms"
	"github.com/csemotors/dealership/internal/infrastructure/config"
	"github.com/csemotors/dealership/internal/infrastructure/db/postgres"
	redisdb "github.com/csemotors/dealership/internal/infrastructure/db/redis"
	"github.com/csemotors/dealership/internal/infrastructure/queue"
	"github.com/csemotors/dealership/internal/session"
	"github.com/csemotors/dealership/internal/views"
)

// NewRouter builds and returns the Echo instance with all routes
// registered.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dealership"))

	// --- Dependencies ---
	accountRepo := postgres.NewAccountRepository(db)
	inventoryRepo := postgres.NewInventoryRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	hashPool := queue.NewHashPool(cfg.Hashing.Workers, cfg.Hashing.Cost)
	accountService := service.NewAccountService(accountRepo, hashPool)
	inventoryService := service.NewInventoryService(inventoryRepo)
	reviewService := service.NewReviewService(reviewRepo, inventoryRepo)

	secureCookies := !cfg.IsDevelopment()
	issuer := session.NewIssuer(cfg.Session.Secret, cfg.Session.TTL)
	flashes := flash.New(redisdb.NewFlashStore(rdb), secureCookies, log)
	validate := forms.New()
	pages := handler.NewPageBuilder(inventoryService, flashes, log)

	accountHandler := handler.NewAccountHandler(accountService, issuer, pages, validate, flashes, secureCookies)
	inventoryHandler := handler.NewInventoryHandler(inventoryService, reviewService, pages, validate, flashes)
	reviewHandler := handler.NewReviewHandler(reviewService, inventoryService, pages, validate, flashes)
	healthHandler := handler.NewHealthHandler(db, rdb)

	e.Use(middleware.Session(issuer))
	requireLogin := middleware.RequireLogin(flashes)
	requireEmployee := middleware.RequireEmployee(flashes)

	// --- Public pages ---
	e.GET("/", inventoryHandler.Home)
	e.Static("/css", "public/css")
	e.Static("/js", "public/js")
	e.Static("/images", "public/images")

	// --- Account routes ---
	acc := e.Group("/account")
	acc.GET("/login", accountHandler.LoginView)
	acc.POST("/login", accountHandler.Login)
	acc.GET("/register", accountHandler.RegisterView)
	acc.POST("/register", accountHandler.Register)
	acc.GET("/logout", accountHandler.Logout)
	acc.GET("/", accountHandler.Management, requireLogin)
	acc.GET("/update/:id", accountHandler.UpdateView, requireLogin)
	acc.POST("/update/:id", accountHandler.Update, requireLogin)
	acc.POST("/password", accountHandler.ChangePassword, requireLogin)

	// --- Inventory routes ---
	inv := e.Group("/inv")
	inv.GET("/type/:classificationId", inventoryHandler.Classification)
	inv.GET("/detail/:invId", inventoryHandler.Detail)
	inv.GET("/", inventoryHandler.Management, requireEmployee)
	inv.GET("/add-classification", inventoryHandler.AddClassificationView, requireEmployee)
	inv.POST("/add-classification", inventoryHandler.AddClassification, requireEmployee)
	inv.GET("/add-inventory", inventoryHandler.AddVehicleView, requireEmployee)
	inv.POST("/add-inventory", inventoryHandler.AddVehicle, requireEmployee)
	inv.GET("/edit/:invId", inventoryHandler.EditVehicleView, requireEmployee)
	inv.POST("/edit/:invId", inventoryHandler.EditVehicle, requireEmployee)
	inv.GET("/list/:classificationId", inventoryHandler.ListJSON, requireEmployee)

	// --- Review routes ---
	rev := e.Group("/reviews", requireLogin)
	rev.GET("/add/:invId", reviewHandler.AddView)
	rev.POST("/add", reviewHandler.Add)

	// --- Probes & metrics ---
	e.GET("/healthz", healthHandler.Liveness)
	e.GET("/readyz", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
