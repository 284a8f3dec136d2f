package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lemonscar/detailing-api/internal/catalog"
	"github.com/lemonscar/detailing-api/internal/config"
	dbpkg "github.com/lemonscar/detailing-api/internal/db"
	"github.com/lemonscar/detailing-api/internal/logging"
	"github.com/lemonscar/detailing-api/internal/mailer"
	"github.com/lemonscar/detailing-api/internal/metrics"
	"github.com/lemonscar/detailing-api/internal/routes"
	"github.com/lemonscar/detailing-api/internal/storage"
)

func main() {

	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.New(cfg.IsProduction())
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := dbpkg.NewDB(cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	catalogStore := catalog.NewRedisStore(redisClient)

	m := metrics.Registry("lemonscar")

	sender := mailer.NewSender(mailer.SenderConfig{
		APIKey:   cfg.SendGridAPIKey,
		From:     cfg.EmailFrom,
		FromName: cfg.EmailFromName,
	}, logger)
	mailDispatcher := mailer.NewDispatcher(sender, logger, m)

	imageStore := storage.NewImageStore(storage.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	}, logger)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Logger:  logger,
		Catalog: catalogStore,
		Mailer:  mailDispatcher,
		Images:  imageStore,
		Metrics: m,
	})

	logger.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
