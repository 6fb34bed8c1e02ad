package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"grocery-shop-backend/internal/auth"
	"grocery-shop-backend/internal/category"
	"grocery-shop-backend/internal/config"
	"grocery-shop-backend/internal/product"
	"grocery-shop-backend/internal/purchase"
	"grocery-shop-backend/internal/recipe"
	"grocery-shop-backend/internal/recommend"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	app.Use(logger.New())
	setupCORS(app)

	productRepo, purchaseRepo := openRepositories(cfg)

	productHandler := product.NewHandler(product.NewService(productRepo))
	purchaseHandler := purchase.NewHandler(purchase.NewService(purchaseRepo))
	categoryHandler := category.NewHandler(category.NewService(productRepo))

	recommender := recommend.NewService(productRepo, purchaseRepo, recommend.DefaultWeights())
	recommendHandler := recommend.NewHandler(recommender)

	generator := recipe.NewHTTPGenerator(cfg.RecipeAPIURL, cfg.RecipeAPIKey)
	recipeHandler := recipe.NewHandler(recipe.NewService(recommender, productRepo, generator))

	authService := auth.NewService(cfg.JWTSecret, cfg.AdminEmail, cfg.AdminPassword)
	authHandler := auth.NewHandler(authService)

	authHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	purchaseHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	recommendHandler.RegisterPublicRoutes(app)
	recipeHandler.RegisterPublicRoutes(app)

	// everything registered past this point requires the admin JWT
	app.Use(authService.Middleware())
	productHandler.RegisterProtectedRoutes(app)
	purchaseHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// openRepositories connects to Postgres when DATABASE_URL is set and falls
// back to empty in-memory snapshots (fed via the dev reset endpoints)
// otherwise.
func openRepositories(cfg config.Config) (product.Repository, purchase.Repository) {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory repositories")
		return product.NewInMemoryRepository(nil), purchase.NewInMemoryRepository(nil)
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	return product.NewPostgresRepository(db), purchase.NewPostgresRepository(db)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}
