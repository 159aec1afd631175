package cart

import (
	"context"

	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/model"
	carrepo "github.com/muhammadheryan/car-showroom/repository/car"
	cartrepo "github.com/muhammadheryan/car-showroom/repository/cart"
	"github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"github.com/muhammadheryan/car-showroom/utils/money"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CartApp interface {
	// AddToCart puts a car in the user's cart. Adding the same car twice
	// returns the existing entry.
	AddToCart(ctx context.Context, userID, carID uint64) (*model.CartEntity, error)
	RemoveFromCart(ctx context.Context, userID, carID uint64) error
	ListCart(ctx context.Context, userID uint64) (*model.CartResponse, error)
	CountCart(ctx context.Context, userID uint64) (int64, error)
}

type CartAppImpl struct {
	cartRepo cartrepo.CartRepository
	carRepo  carrepo.CarRepository
}

func NewCartApp(cartRepo cartrepo.CartRepository, carRepo carrepo.CarRepository) CartApp {
	return &CartAppImpl{
		cartRepo: cartRepo,
		carRepo:  carRepo,
	}
}

func (s *CartAppImpl) AddToCart(ctx context.Context, userID, carID uint64) (*model.CartEntity, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		logger.Error("[AddToCart] err carRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	existing, err := s.cartRepo.Get(ctx, userID, carID)
	if err != nil {
		logger.Error("[AddToCart] err cartRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return existing, nil
	}

	entry, err := s.cartRepo.Create(ctx, userID, carID)
	if err != nil {
		logger.Error("[AddToCart] err cartRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entry, nil
}

func (s *CartAppImpl) RemoveFromCart(ctx context.Context, userID, carID uint64) error {
	affected, err := s.cartRepo.Remove(ctx, userID, carID)
	if err != nil {
		logger.Error("[RemoveFromCart] err cartRepo.Remove", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *CartAppImpl) ListCart(ctx context.Context, userID uint64) (*model.CartResponse, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListCart] err cartRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}

	return &model.CartResponse{
		Items:        items,
		Count:        len(items),
		Total:        total,
		TotalDisplay: money.FormatIDR(total),
	}, nil
}

func (s *CartAppImpl) CountCart(ctx context.Context, userID uint64) (int64, error) {
	count, err := s.cartRepo.CountByUser(ctx, userID)
	if err != nil {
		logger.Error("[CountCart] err cartRepo.CountByUser", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return count, nil
}
