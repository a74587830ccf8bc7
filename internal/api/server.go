package api

import (
	"log"
	"time"

	"github.com/campustrack/achievement_service/config"
	"github.com/campustrack/achievement_service/infra/queue"
	"github.com/campustrack/achievement_service/internal/api/rest/handlers"
	"github.com/campustrack/achievement_service/internal/api/rest/middleware"
	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/campustrack/achievement_service/internal/helper"
	"github.com/campustrack/achievement_service/internal/interfaces"
	"github.com/campustrack/achievement_service/internal/metrics"
	"github.com/campustrack/achievement_service/internal/repository"
	"github.com/campustrack/achievement_service/internal/services"
	"github.com/campustrack/achievement_service/pkg/cloudinary"
	"github.com/campustrack/achievement_service/pkg/storage"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- Middleware ----------
	app.Use(logger.New())
	app.Use(cors.New(corsConfig(cfg.BaseURL)))
	app.Use(limiter.New(limiter.Config{
		Max:        300,
		Expiration: time.Minute,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), gormConfig())
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260115

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.Department{},
		&domain.Program{},
		&domain.Year{},
		&domain.Division{},
		&domain.Batch{},
		&domain.Category{},
		&domain.User{},
		&domain.File{},
		&domain.Achievement{},
		&domain.ParticipantCertificate{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	seedCategories(db)

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	var fileStorage interfaces.FileStorage
	switch cfg.FileStorage {
	case "cloudinary":
		cld, err := cloudinary.New()
		if err != nil {
			log.Fatalf("cloudinary init error: %v", err)
		}
		fileStorage = cloudinary.NewCloudinaryStorage(cld)
	default:
		local, err := storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			log.Fatalf("local storage init error: %v", err)
		}
		fileStorage = local
	}

	authHelper := helper.SetupAuth(cfg.AccessSecret)
	metrics.Register()

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	fileRepo := repository.NewFileRepository(db)
	academicRepo := repository.NewAcademicRepository(db)

	// ---------- Services ----------
	userSvc := services.NewUserService(userRepo, authHelper)
	achievementSvc := services.NewAchievementService(
		achievementRepo,
		userRepo,
		fileRepo,
		academicRepo,
		fileStorage,
		kafkaProducer,
	)
	academicSvc := services.NewAcademicService(academicRepo)
	analyticsSvc := services.NewAnalyticsService(achievementRepo, userRepo, academicRepo)
	fileSvc := services.NewFileService(fileRepo, fileStorage)

	authenticated := middleware.AuthMiddleware(authHelper, userSvc)

	// ---------- Handlers ----------
	handlers.NewAuthHandler(userSvc, authHelper).SetupRoutes(app)
	handlers.NewUserHandler(userSvc, authHelper).SetupRoutes(app)
	handlers.NewAchievementHandler(achievementSvc, authenticated).SetupRoutes(app)
	handlers.NewAcademicHandler(academicSvc, authenticated).SetupRoutes(app)
	handlers.NewAnalyticsHandler(analyticsSvc, authenticated).SetupRoutes(app)
	handlers.NewFileHandler(fileSvc, authenticated).SetupRoutes(app)

	// ---------- Health + Metrics ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

// corsConfig only sends credentials for a concrete origin list. Fiber
// refuses AllowCredentials together with a wildcard origin at startup.
func corsConfig(origins string) cors.Config {
	c := cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}
	if origins != "*" {
		c.AllowCredentials = true
	}
	return c
}

// gormConfig enables TranslateError so the postgres driver surfaces
// unique violations as gorm.ErrDuplicatedKey to the services.
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

func seedCategories(db *gorm.DB) {
	seeds := []domain.Category{
		{Code: "academic", Name: "Academic"},
		{Code: "sports", Name: "Sports"},
		{Code: "cultural", Name: "Cultural"},
		{Code: "technical", Name: "Technical"},
		{Code: "social", Name: "Social Service"},
		{Code: "other", Name: "Other"},
	}

	for _, seed := range seeds {
		var c domain.Category
		err := db.Where("code = ?", seed.Code).First(&c).Error
		if err == gorm.ErrRecordNotFound {
			seed.IsActive = true
			_ = db.Create(&seed).Error
		}
	}
}
