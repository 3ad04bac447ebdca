package main

import (
	"context"
	"gin-fooddelivery/cache"
	"gin-fooddelivery/config"
	"gin-fooddelivery/controllers"
	"gin-fooddelivery/infra"
	"gin-fooddelivery/logging"
	"gin-fooddelivery/middlewares"
	"gin-fooddelivery/models"
	"gin-fooddelivery/notify"
	"gin-fooddelivery/repositories"
	"gin-fooddelivery/services"
	"gin-fooddelivery/storage"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// deps はルーター構築に必要な外部リソース。
type deps struct {
	db            *gorm.DB
	tokens        services.ITokenService
	images        storage.ImageStore
	cache         cache.Store
	notifier      notify.Notifier
	logger        logging.Logger
	adminSetupKey string
}

func setupRouter(d deps) *gin.Engine {
	userRepository := repositories.NewUserRepository(d.db)
	categoryRepository := repositories.NewCategoryRepository(d.db)
	foodRepository := repositories.NewFoodRepository(d.db)
	orderRepository := repositories.NewOrderRepository(d.db)

	authService := services.NewAuthService(userRepository, d.tokens)
	categoryService := services.NewCategoryService(categoryRepository, foodRepository, d.images, d.cache, d.logger)
	foodService := services.NewFoodService(foodRepository, categoryRepository, d.images, d.cache, d.logger)
	cartService := services.NewCartService(userRepository)
	orderService := services.NewOrderService(orderRepository, userRepository, d.notifier, d.logger)

	authController := controllers.NewAuthController(authService, d.adminSetupKey, d.logger)
	categoryController := controllers.NewCategoryController(categoryService, d.logger)
	foodController := controllers.NewFoodController(foodService, d.logger)
	cartController := controllers.NewCartController(cartService, d.logger)
	orderController := controllers.NewOrderController(orderService, d.logger)

	auth := middlewares.AuthMiddleware(d.tokens)
	adminOnly := middlewares.RoleBasedAccessControl(middlewares.NewRoleSet(models.RoleAdmin))

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig()))

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	r.GET("/", health)
	r.GET("/health", health)

	switch store := d.images.(type) {
	case *storage.DiskStore:
		r.Static("/images", store.Dir())
	case storage.URLSigner:
		r.GET("/images/:name", controllers.NewImageController(store, d.logger).Redirect)
	}

	api := r.Group("/api")

	userRouter := api.Group("/user")
	userRouter.POST("/register", authController.Register)
	userRouter.POST("/login", authController.Login)
	userRouter.POST("/get", auth, authController.Get)
	userRouter.POST("/create-admin", authController.CreateAdmin)

	categoryRouter := api.Group("/category")
	categoryRouterWithAdminAuth := api.Group("/category", auth, adminOnly)
	categoryRouter.GET("", categoryController.List)
	categoryRouterWithAdminAuth.POST("/add", categoryController.Add)
	categoryRouterWithAdminAuth.POST("/update-image", categoryController.UpdateImage)
	categoryRouterWithAdminAuth.POST("/delete", categoryController.Delete)

	foodRouter := api.Group("/food")
	foodRouterWithAdminAuth := api.Group("/food", auth, adminOnly)
	foodRouter.GET("/list", foodController.List)
	foodRouter.GET("/categories", foodController.Categories)
	foodRouterWithAdminAuth.POST("/add", foodController.Add)
	foodRouterWithAdminAuth.POST("/remove", foodController.Remove)
	foodRouterWithAdminAuth.POST("/update-category", foodController.UpdateCategory)

	cartRouterWithAuth := api.Group("/cart", auth)
	cartRouterWithAuth.POST("/add", cartController.Add)
	cartRouterWithAuth.POST("/remove", cartController.Remove)
	cartRouterWithAuth.POST("/get", cartController.Get)

	orderRouter := api.Group("/order")
	orderRouterWithAuth := api.Group("/order", auth)
	orderRouterWithAdminAuth := api.Group("/order", auth, adminOnly)
	orderRouter.POST("/verify", orderController.Verify)
	orderRouterWithAuth.POST("/place", orderController.Place)
	orderRouterWithAuth.POST("/placecod", orderController.PlaceCOD)
	orderRouterWithAuth.POST("/userorders", orderController.UserOrders)
	orderRouterWithAdminAuth.GET("/list", orderController.List)
	orderRouterWithAdminAuth.POST("/list", orderController.List)
	orderRouterWithAdminAuth.POST("/status", orderController.UpdateStatus)

	return r
}

// corsConfig はフロントエンドが送る独自ヘッダー(token, setup-key)を許可する。
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AddAllowHeaders("token", "setup-key")
	return cfg
}

func newImageStore(ctx context.Context, cfg *config.Config) (storage.ImageStore, error) {
	if cfg.ImageStore == config.ImageStoreS3 {
		return storage.NewS3Store(ctx, storage.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}
	return storage.NewDiskStore(cfg.UploadDir)
}

func newNotifier(cfg *config.Config, logger logging.Logger) notify.Notifier {
	if cfg.TelegramBotToken == "" || cfg.TelegramAdminChatID == 0 {
		return notify.Noop{}
	}
	bot, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramAdminChatID)
	if err != nil {
		// 通知は必須ではないため起動は続ける
		logger.Warn(context.Background(), "telegram notifier disabled", "err", err)
		return notify.Noop{}
	}
	return bot
}

func main() {
	infra.Initialize()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := logging.New(cfg.Env)

	tokenOpt := services.NoExpiry()
	if cfg.TokenTTL > 0 {
		tokenOpt = services.WithExpiry(cfg.TokenTTL)
	}
	tokens, err := services.NewTokenService(cfg.JWTSecret, tokenOpt)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatalf("Failed to setup database: %v", err)
	}
	if cfg.AutoMigrate {
		if err := infra.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	var listCache *cache.Client
	if cfg.RedisAddr != "" {
		listCache = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		log.Printf("List cache enabled: %s", cfg.RedisAddr)
	}

	images, err := newImageStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to setup image store: %v", err)
	}

	r := setupRouter(deps{
		db:            db,
		tokens:        tokens,
		images:        images,
		cache:         listCache,
		notifier:      newNotifier(cfg, logger),
		logger:        logger,
		adminSetupKey: cfg.AdminSetupKey,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	if err := listCache.Close(); err != nil {
		log.Printf("Failed to close cache: %v", err)
	}
	if err := infra.CloseDB(db); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
	log.Println("Server exited")
}
