package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/altsora/SocialNetwork-sub000/infrastructure/mail"
	db "github.com/altsora/SocialNetwork-sub000/infrastructure/persistence/database"
	"github.com/altsora/SocialNetwork-sub000/pkg/app"
	"github.com/altsora/SocialNetwork-sub000/pkg/configs"
	"github.com/altsora/SocialNetwork-sub000/pkg/di"
	"github.com/altsora/SocialNetwork-sub000/pkg/logger"
)

func main() {
	// Missing .env is fine, the process environment is used as-is.
	_ = godotenv.Load()

	logger.Init(os.Getenv("LOG_LEVEL"))

	database, err := configs.NewDatabase()
	if err != nil {
		logger.Log.Fatal("database connection failed", zap.Error(err))
	}

	if err := db.SetupDatabase(database.DB); err != nil {
		logger.Log.Fatal("database migration failed", zap.Error(err))
	}

	storageService, err := configs.SetupStorageService()
	if err != nil {
		logger.Log.Fatal("storage service setup failed", zap.Error(err))
	}

	mailSender := mail.NewSMTPSender(configs.LoadSMTPConfig())

	redisConfig := configs.LoadRedisConfig()
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Host + ":" + redisConfig.Port,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logger.Log.Fatal("redis connection failed", zap.Error(err))
	}
	logger.Log.Info("connected to redis")

	container, err := di.NewContainer(database.DB, storageService, mailSender, redisClient)
	if err != nil {
		logger.Log.Fatal("container setup failed", zap.Error(err))
	}

	go container.PresenceSweeper.Start(ctx)

	fiberApp := app.SetupApp(container)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}

		logger.Log.Info("server listening", zap.String("port", port))
		if err := fiberApp.Listen(":" + port); err != nil {
			logger.Log.Fatal("server start failed", zap.Error(err))
		}
	}()

	<-c
	logger.Log.Info("shutting down")

	cancel()

	if err := fiberApp.Shutdown(); err != nil {
		logger.Log.Fatal("server shutdown failed", zap.Error(err))
	}

	if err := database.Close(); err != nil {
		logger.Log.Fatal("database close failed", zap.Error(err))
	}

	logger.Log.Info("server stopped")
}
