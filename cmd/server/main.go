package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/postflow-composer/configs"
	"github.com/maheshrc27/postflow-composer/internal/api/handlers"
	"github.com/maheshrc27/postflow-composer/internal/api/middleware"
	"github.com/maheshrc27/postflow-composer/internal/composer"
	job "github.com/maheshrc27/postflow-composer/internal/jobs"
	"github.com/maheshrc27/postflow-composer/internal/queue"
	"github.com/maheshrc27/postflow-composer/internal/repository"
	"github.com/maheshrc27/postflow-composer/internal/service"
	"github.com/maheshrc27/postflow-composer/internal/session"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	loc, err := time.LoadLocation(cfg.ScheduleTimezone)
	if err != nil {
		log.Fatalf("Unknown schedule timezone %q: %v", cfg.ScheduleTimezone, err)
	}

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	storage, err := service.NewObjectStorage(context.Background(), *cfg)
	if err != nil {
		log.Fatalf("Failed to set up media storage: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	postRepo := repository.NewPostRepository(db)
	socialAccountRepo := repository.NewSocialAccountRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postMediaRepo := repository.NewPostMediaRepository(db)
	selectedAccountRepo := repository.NewSelectedAccountRepository(db)
	mediaAssetRepo := repository.NewMediaAssetRepository(db)
	historyRepo := repository.NewPostingHistoryRepository(db)

	platformService := service.NewPlatformService(socialAccountRepo)
	profileService := service.NewProfileService(profileRepo, socialAccountRepo)
	libraryService := service.NewLibraryService(mediaAssetRepo, storage)
	mediaService := service.NewMediaService(mediaAssetRepo, storage, cfg.MaxUploadSize)
	postService := service.NewPostService(db, postRepo, selectedAccountRepo, socialAccountRepo, postMediaRepo, historyRepo)

	services := service.Services{
		Platforms: platformService,
		Profiles:  profileService,
		Library:   libraryService,
		Media:     mediaService,
		Posts:     postService,
		Queue:     client,
	}

	sessions := session.NewStore(func(userID int64) *composer.Composer {
		return composer.New(service.NewWorkspace(userID, services), composer.Options{
			MaxUploadSize:   cfg.MaxUploadSize,
			NotificationTTL: cfg.NotificationTTL,
			Location:        loc,
		})
	})
	defer sessions.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    int(cfg.MaxUploadSize) * 10, // ten files at the upload limit
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	platform := handlers.NewPlatformHandler(platformService, profileService)
	api.Get("/accounts", platform.ListSocialAccounts)
	api.Post("/accounts/remove", platform.DeleteSocialAccount)
	api.Get("/profiles", platform.ListProfiles)

	library := handlers.NewLibraryHandler(sessions)
	api.Get("/library", library.ListMedia)
	api.Post("/library/remove", library.RemoveMedia)

	post := handlers.NewPostHandler(postService)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts/remove", post.RemovePost)

	comp := handlers.NewComposerHandler(sessions, libraryService, cfg.MaxUploadSize)
	api.Post("/composer/load", comp.Load)
	api.Get("/composer", comp.GetState)
	api.Post("/composer/profile", comp.SelectProfile)
	api.Post("/composer/accounts/toggle", comp.ToggleAccount)
	api.Put("/composer/content", comp.SetContent)
	api.Put("/composer/schedule", comp.SetSchedule)
	api.Post("/composer/media/files", comp.AddFiles)
	api.Post("/composer/media/url", comp.AddURL)
	api.Post("/composer/media/library", comp.AddFromLibrary)
	api.Post("/composer/media/remove", comp.RemoveMedia)
	api.Post("/composer/dispatch", comp.Dispatch)
	api.Post("/composer/notification/dismiss", comp.DismissNotification)

	// cron jobs
	sweepJob := job.NewSessionSweepJob(sessions, cfg.SessionIdleTimeout)

	c := cron.New()
	if err := c.AddFunc("@every 00h05m00s", sweepJob.SweepSessions); err != nil {
		log.Fatalf("Could not schedule session sweep: %v", err)
	}
	c.Start()
	defer c.Stop()

	//queue
	queueW := queue.NewQueue(postRepo, selectedAccountRepo, socialAccountRepo, historyRepo)

	server := asynq.NewServer(redisConn, asynq.Config{
		Concurrency: 10,
	})

	go func() {
		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypePublishPost, queueW.HandlePublishPostTask)

		slog.Info("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	slog.Info("Server is running", "port", cfg.Port)

	gracefulShutdown(app, server)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, server *asynq.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}
	server.Shutdown()

	log.Println("Server shutdown complete.")
}
