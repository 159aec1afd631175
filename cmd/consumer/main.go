package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/car-showroom/cmd/config"
	"github.com/muhammadheryan/car-showroom/thirdparty/rabbitmq"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"go.uber.org/zap"
)

// The consumer cancels transactions whose payment window passed by calling
// the internal API of the showroom service.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.APIURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("transaction expiration consumer running", zap.String("queue", rabbitmq.ExpirationQueue))
	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	<-ctx.Done()
	logger.Info("shutting down consumer")
}
