package car

import (
	"context"

	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/model"
	carrepo "github.com/muhammadheryan/car-showroom/repository/car"
	"github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"github.com/muhammadheryan/car-showroom/utils/money"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 12
	maxPerPage     = 60
)

type CarApp interface {
	ListCars(ctx context.Context, filter *model.CarFilter) (*model.CarListResponse, error)
	GetCar(ctx context.Context, id uint64) (*model.CarDetailResponse, error)
}

type CarAppImpl struct {
	carRepo carrepo.CarRepository
}

func NewCarApp(carRepo carrepo.CarRepository) CarApp {
	return &CarAppImpl{carRepo: carRepo}
}

func (s *CarAppImpl) ListCars(ctx context.Context, filter *model.CarFilter) (*model.CarListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = defaultPerPage
	}
	if filter.PerPage > maxPerPage {
		filter.PerPage = maxPerPage
	}

	items, total, err := s.carRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListCars] err carRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CarListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *CarAppImpl) GetCar(ctx context.Context, id uint64) (*model.CarDetailResponse, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetCar] err carRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return &model.CarDetailResponse{
		Car:          car,
		PriceDisplay: money.FormatIDR(car.Price),
	}, nil
}
