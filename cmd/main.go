package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/muhammadheryan/car-showroom/application/admin"
	carapp "github.com/muhammadheryan/car-showroom/application/car"
	cartapp "github.com/muhammadheryan/car-showroom/application/cart"
	creditapp "github.com/muhammadheryan/car-showroom/application/credit"
	headerapp "github.com/muhammadheryan/car-showroom/application/header"
	orderapp "github.com/muhammadheryan/car-showroom/application/order"
	userapp "github.com/muhammadheryan/car-showroom/application/user"
	"github.com/muhammadheryan/car-showroom/cmd/config"
	redisclient "github.com/muhammadheryan/car-showroom/cmd/redis"
	_ "github.com/muhammadheryan/car-showroom/docs"
	carRepo "github.com/muhammadheryan/car-showroom/repository/car"
	cartRepo "github.com/muhammadheryan/car-showroom/repository/cart"
	creditRepo "github.com/muhammadheryan/car-showroom/repository/credit"
	redisRepo "github.com/muhammadheryan/car-showroom/repository/redis"
	transactionRepo "github.com/muhammadheryan/car-showroom/repository/transaction"
	txRepo "github.com/muhammadheryan/car-showroom/repository/tx"
	userRepo "github.com/muhammadheryan/car-showroom/repository/user"
	"github.com/muhammadheryan/car-showroom/thirdparty/oauth"
	"github.com/muhammadheryan/car-showroom/thirdparty/rabbitmq"
	"github.com/muhammadheryan/car-showroom/transport"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	validatorx "github.com/muhammadheryan/car-showroom/utils/validator"
	"go.uber.org/zap"
)

// @title SHOWROOM MOBIL API
// @version 1.0
// @description Car showroom API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Checkout keeps working without the broker; expiration is then skipped.
	var publisher rabbitmq.Publisher
	amqpPublisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, transaction expiration disabled", zap.Error(err))
	} else {
		publisher = amqpPublisher
		defer amqpPublisher.Close()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	CarRepo := carRepo.NewCarRepository(db)
	CartRepo := cartRepo.NewCartRepository(db)
	TransactionRepo := transactionRepo.NewTransactionRepository(db)
	CreditRepo := creditRepo.NewCreditApplicationRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	identity := oauth.NewHTTPProvider(cfg.OAuth, &http.Client{Timeout: 10 * time.Second})

	// Initialize application layers
	httpTransport := transport.NewTransport(&transport.RestHandler{
		Config:    cfg,
		UserApp:   userapp.NewUserApp(cfg, UserRepo, RedisRepo, identity),
		HeaderApp: headerapp.NewHeaderApp(CarRepo, CartRepo, UserRepo),
		CarApp:    carapp.NewCarApp(CarRepo),
		CartApp:   cartapp.NewCartApp(CartRepo, CarRepo),
		OrderApp:  orderapp.NewOrderApp(cfg, TxRepo, CarRepo, CartRepo, UserRepo, TransactionRepo, publisher),
		CreditApp: creditapp.NewCreditApp(CarRepo, CreditRepo),
		AdminApp:  adminapp.NewAdminApp(UserRepo, CarRepo, TransactionRepo, CreditRepo),
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}
