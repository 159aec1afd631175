package main

import (
	"context"
	"flag"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/car-showroom/cmd/config"
	carRepo "github.com/muhammadheryan/car-showroom/repository/car"
	creditRepo "github.com/muhammadheryan/car-showroom/repository/credit"
	"github.com/muhammadheryan/car-showroom/repository/factory"
	transactionRepo "github.com/muhammadheryan/car-showroom/repository/transaction"
	userRepo "github.com/muhammadheryan/car-showroom/repository/user"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development database with generated users, cars, transactions
// and credit applications.
func main() {
	var counts factory.Counts
	flag.IntVar(&counts.Users, "users", 10, "number of users")
	flag.IntVar(&counts.Cars, "cars", 20, "number of cars")
	flag.IntVar(&counts.Transactions, "transactions", 50, "number of transactions")
	flag.IntVar(&counts.CreditApplications, "credit-applications", 20, "number of credit applications")
	password := flag.String("password", "password", "password of every generated user")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	cfg := config.Load()
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("err hash password", zap.Error(err))
	}

	seeder := factory.NewSeeder(
		factory.New(*seed),
		userRepo.NewUserRepository(db),
		carRepo.NewCarRepository(db),
		transactionRepo.NewTransactionRepository(db),
		creditRepo.NewCreditApplicationRepository(db),
	)
	if err := seeder.Seed(context.Background(), counts, string(hash)); err != nil {
		logger.Fatal("err seed", zap.Error(err), zap.Int64("seed", *seed))
	}
}
