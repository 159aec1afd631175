package credit

import (
	"context"

	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/model"
	carrepo "github.com/muhammadheryan/car-showroom/repository/car"
	creditrepo "github.com/muhammadheryan/car-showroom/repository/credit"
	"github.com/muhammadheryan/car-showroom/utils/datetime"
	"github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"github.com/muhammadheryan/car-showroom/utils/money"
	validatorx "github.com/muhammadheryan/car-showroom/utils/validator"
	"go.uber.org/zap"
)

type CreditApp interface {
	Apply(ctx context.Context, userID, carID uint64, req *model.CreditApplyRequest) (*model.CreditApplyResponse, error)
}

type creditAppImpl struct {
	carRepo    carrepo.CarRepository
	creditRepo creditrepo.CreditApplicationRepository
}

func NewCreditApp(carRepo carrepo.CarRepository, creditRepo creditrepo.CreditApplicationRepository) CreditApp {
	return &creditAppImpl{carRepo: carRepo, creditRepo: creditRepo}
}

func (s *creditAppImpl) Apply(ctx context.Context, userID, carID uint64, req *model.CreditApplyRequest) (*model.CreditApplyResponse, error) {
	req.Income = money.StripSeparators(req.Income)
	if err := validatorx.ValidateForm(req); err != nil {
		return nil, err
	}
	income, err := money.Parse(req.Income)
	if err != nil {
		return nil, validatorx.FieldError("income", "numeric")
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		logger.Error("[Apply] err carRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	id, err := s.creditRepo.Create(ctx, &model.CreditApplicationEntity{
		UserID:          userID,
		CarID:           carID,
		ApplicationDate: datetime.Now(),
		Income:          income,
		Status:          constant.CreditStatusPending,
	})
	if err != nil {
		logger.Error("[Apply] err creditRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CreditApplyResponse{
		ApplicationID: id,
		Status:        constant.CreditStatusPending,
	}, nil
}
