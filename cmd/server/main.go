package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jackc/pgx/v5/stdlib"

	"movie-catalog-service/internal/api"
	"movie-catalog-service/internal/config"
	"movie-catalog-service/internal/events"
	"movie-catalog-service/internal/repository"
	"movie-catalog-service/internal/service"
	_ "movie-catalog-service/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, reading from environment variables")
	}

	api.SetupGlobalHandler("movie-catalog-service")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		handleMigrations(cfg)
		return
	}

	db := connectDB(cfg)
	defer db.Close()

	var publisher events.EventPublisher = events.NoopPublisher{}
	if cfg.NatsURL != "" {
		natsPublisher, err := events.NewNatsPublisher(cfg.NatsURL)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		log.Println("Successfully connected to NATS.")
		publisher = natsPublisher
	}

	accountRepo := repository.NewPostgresAccountRepository(db)
	directorRepo := repository.NewPostgresDirectorRepository(db)
	movieRepo := repository.NewPostgresMovieRepository(db)
	ratingRepo := repository.NewPostgresRatingRepository(db)

	authService := service.NewAuthService(accountRepo)
	catalogService := service.NewCatalogService(movieRepo, directorRepo, publisher)
	ratingService := service.NewRatingService(ratingRepo, publisher)

	authHandler := api.NewAuthHandler(authService)
	movieHandler := api.NewMovieHandler(catalogService)
	directorHandler := api.NewDirectorHandler(catalogService)
	ratingHandler := api.NewRatingHandler(ratingService)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(api.PrometheusMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "movie-catalog-service"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Movies API")
	})

	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	authRequired := api.AuthMiddleware()
	adminOnly := api.RequireRole("admin")

	app.Post("/movies", authRequired, adminOnly, movieHandler.Create)
	app.Get("/movies", authRequired, movieHandler.List)
	app.Get("/movies/:id", authRequired, movieHandler.Get)
	// TODO: both PUT routes accept unauthenticated requests; confirm with
	// API consumers before locking them down.
	app.Put("/movies/:id", movieHandler.Update)
	app.Delete("/movies/:id", authRequired, adminOnly, movieHandler.Delete)
	app.Post("/movies/:id", authRequired, ratingHandler.RateMovie)

	app.Post("/directors", authRequired, adminOnly, directorHandler.Create)
	app.Get("/directors", authRequired, directorHandler.List)
	app.Get("/directors/:id", authRequired, directorHandler.Get)
	app.Get("/directors/:id/movies", authRequired, directorHandler.ListMovies)
	app.Put("/directors/:id", directorHandler.Update)
	app.Delete("/directors/:id", authRequired, adminOnly, directorHandler.Delete)

	app.Get("/search", authRequired, movieHandler.Search)
	app.Get("/ratings", authRequired, ratingHandler.ListMine)

	log.Printf("Listening movie-catalog-service on port %s", cfg.HTTP.Port)
	log.Fatal(app.Listen(":" + cfg.HTTP.Port))
}

func connectDB(cfg *config.Config) *sqlx.DB {
	db, err := sqlx.Connect("pgx", cfg.Database.URL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Successfully connected to the database.")
	return db
}

func handleMigrations(cfg *config.Config) {
	fmt.Println("Running database migrations...")

	db, err := sql.Open("pgx", cfg.Database.URL())
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("goose: failed to run migrations: %v", err)
	}

	fmt.Println("Migrations applied successfully!")
}
