package factory

import (
	"context"
	"fmt"

	carrepo "github.com/muhammadheryan/car-showroom/repository/car"
	creditrepo "github.com/muhammadheryan/car-showroom/repository/credit"
	transactionrepo "github.com/muhammadheryan/car-showroom/repository/transaction"
	userrepo "github.com/muhammadheryan/car-showroom/repository/user"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"go.uber.org/zap"
)

// Counts is how many records of each kind one Seed run inserts.
type Counts struct {
	Users              int
	Cars               int
	Transactions       int
	CreditApplications int
}

type Seeder struct {
	factory         *Factory
	userRepo        userrepo.UserRepository
	carRepo         carrepo.CarRepository
	transactionRepo transactionrepo.TransactionRepository
	creditRepo      creditrepo.CreditApplicationRepository
}

func NewSeeder(
	factory *Factory,
	userRepo userrepo.UserRepository,
	carRepo carrepo.CarRepository,
	transactionRepo transactionrepo.TransactionRepository,
	creditRepo creditrepo.CreditApplicationRepository,
) *Seeder {
	return &Seeder{
		factory:         factory,
		userRepo:        userRepo,
		carRepo:         carRepo,
		transactionRepo: transactionRepo,
		creditRepo:      creditRepo,
	}
}

// Seed inserts users and cars first, then transactions and credit
// applications referencing them at random. passwordHash is shared by every
// generated user.
func (s *Seeder) Seed(ctx context.Context, counts Counts, passwordHash string) error {
	if counts.Users < 1 || counts.Cars < 1 {
		return fmt.Errorf("seed needs at least one user and one car, got %d users and %d cars", counts.Users, counts.Cars)
	}

	userIDs := make([]uint64, 0, counts.Users)
	for i := 0; i < counts.Users; i++ {
		user, err := s.userRepo.Create(ctx, s.factory.User(passwordHash))
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		userIDs = append(userIDs, user.ID)
	}

	carIDs := make([]uint64, 0, counts.Cars)
	for i := 0; i < counts.Cars; i++ {
		id, err := s.carRepo.Create(ctx, s.factory.Car())
		if err != nil {
			return fmt.Errorf("create car: %w", err)
		}
		carIDs = append(carIDs, id)
	}

	for i := 0; i < counts.Transactions; i++ {
		userID, carID := s.pair(userIDs, carIDs)
		if _, err := s.transactionRepo.Create(ctx, s.factory.Transaction(userID, carID)); err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
	}

	for i := 0; i < counts.CreditApplications; i++ {
		userID, carID := s.pair(userIDs, carIDs)
		if _, err := s.creditRepo.Create(ctx, s.factory.CreditApplication(userID, carID)); err != nil {
			return fmt.Errorf("create credit application: %w", err)
		}
	}

	logger.Info("seed finished",
		zap.Int("users", counts.Users),
		zap.Int("cars", counts.Cars),
		zap.Int("transactions", counts.Transactions),
		zap.Int("credit_applications", counts.CreditApplications),
	)
	return nil
}

func (s *Seeder) pair(userIDs, carIDs []uint64) (uint64, uint64) {
	return userIDs[s.factory.fake.IntN(len(userIDs))], carIDs[s.factory.fake.IntN(len(carIDs))]
}
