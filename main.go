package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"busline/internal/config"
	intdb "busline/internal/db"
	"busline/internal/events"
	router "busline/internal/http"
	"busline/internal/http/handlers"
	"busline/internal/logger"
	"busline/internal/repositories"
	"busline/internal/seatlock"
	"busline/internal/seed"
	"busline/internal/services"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	appLog := logger.New(env.GinMode != gin.ReleaseMode)

	db := config.ConnectDB(env)
	defer config.CloseDB()
	appLog.Infof("main", "connected to MySQL at %s/%s", env.DBHost, env.DBName)

	if err := intdb.Migrate(db); err != nil {
		log.Fatalf("schema migration failed: %v", err)
	}

	routeRepo := repositories.RouteRepository{DB: db}
	bookingRepo := repositories.BookingRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}
	statsRepo := repositories.StatsRepository{DB: db}

	if env.SeedDemo {
		if err := seed.Demo(routeRepo, appLog); err != nil {
			appLog.Errorf("main", "demo seed failed: %v", err)
		}
	}

	var redisClient *redis.Client
	if env.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: env.RedisAddr})
		appLog.Infof("main", "seat holds enabled via redis at %s", env.RedisAddr)
	}
	holder := seatlock.New(redisClient)

	producer, err := events.NewProducer(env.KafkaBrokers, appLog)
	if err != nil {
		log.Fatalf("event producer init failed: %v", err)
	}
	defer producer.Close()

	handlers.Init(handlers.Deps{
		Env: env,
		Log: appLog,
		Auth: services.AuthService{
			UserRepo:  userRepo,
			JWTSecret: []byte(env.JWTSecret),
			TokenTTL:  env.TokenTTL,
			Log:       appLog,
		},
		Routes: services.RouteService{RouteRepo: routeRepo, Log: appLog},
		Bookings: services.BookingService{
			BookingRepo: bookingRepo,
			RouteRepo:   routeRepo,
			Holder:      holder,
			Events:      producer,
			Log:         appLog,
		},
		Stats: services.StatsService{StatsRepo: statsRepo},
		Docs:  services.DocsService{},
	})

	r := router.NewRouter(env, appLog)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		appLog.Infof("main", "listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLog.Info("main", "shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	appLog.Info("main", "server stopped")
}
