package order

import (
	"context"
	"strings"
	"time"

	"github.com/muhammadheryan/car-showroom/cmd/config"
	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/model"
	carrepo "github.com/muhammadheryan/car-showroom/repository/car"
	cartrepo "github.com/muhammadheryan/car-showroom/repository/cart"
	transactionrepo "github.com/muhammadheryan/car-showroom/repository/transaction"
	txrepo "github.com/muhammadheryan/car-showroom/repository/tx"
	userrepo "github.com/muhammadheryan/car-showroom/repository/user"
	"github.com/muhammadheryan/car-showroom/thirdparty/rabbitmq"
	"github.com/muhammadheryan/car-showroom/utils/datetime"
	"github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"github.com/muhammadheryan/car-showroom/utils/money"
	"go.uber.org/zap"
)

type OrderApp interface {
	OrderForm(ctx context.Context, userID, carID uint64) (*model.OrderFormResponse, error)
	Checkout(ctx context.Context, userID, carID uint64, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
	GetTransaction(ctx context.Context, userID, transactionID uint64) (*model.TransactionDetailResponse, error)
	// CancelExpired cancels a transaction that is still pending once its
	// payment window has passed.
	CancelExpired(ctx context.Context, transactionID uint64) error
}

type orderAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	carRepo         carrepo.CarRepository
	cartRepo        cartrepo.CartRepository
	userRepo        userrepo.UserRepository
	transactionRepo transactionrepo.TransactionRepository
	publisher       rabbitmq.Publisher
}

func NewOrderApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	carRepo carrepo.CarRepository,
	cartRepo cartrepo.CartRepository,
	userRepo userrepo.UserRepository,
	transactionRepo transactionrepo.TransactionRepository,
	publisher rabbitmq.Publisher,
) OrderApp {
	return &orderAppImpl{
		config:          config,
		txRepo:          txRepo,
		carRepo:         carRepo,
		cartRepo:        cartRepo,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		publisher:       publisher,
	}
}

func (s *orderAppImpl) OrderForm(ctx context.Context, userID, carID uint64) (*model.OrderFormResponse, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		logger.Error("[OrderForm] get car", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[OrderForm] get user", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return &model.OrderFormResponse{
		Car:          car,
		PriceDisplay: money.FormatIDR(car.Price),
		Buyer: model.OrderBuyer{
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
		},
		PaymentMethods: constant.PaymentMethodOptions,
	}, nil
}

func (s *orderAppImpl) Checkout(ctx context.Context, userID, carID uint64, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Checkout] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	car, err := s.carRepo.GetByIDTx(ctx, tx, carID)
	if err != nil {
		logger.Error("[Checkout] get car", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if car == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	latitude, longitude := req.Latitude, req.Longitude
	entity := &model.TransactionEntity{
		UserID:          userID,
		CarID:           carID,
		TransactionDate: datetime.Now(),
		TotalAmount:     car.Price,
		PaymentMethod:   constant.PaymentMethod(req.PaymentMethod),
		Status:          constant.TransactionStatusPending,
		Latitude:        &latitude,
		Longitude:       &longitude,
		OrderAddress:    strings.TrimSpace(req.OrderAddress),
	}

	transactionID, err := s.transactionRepo.InsertTx(ctx, tx, entity)
	if err != nil {
		logger.Error("[Checkout] insert transaction", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// the ordered car leaves the cart
	if err := s.cartRepo.RemoveTx(ctx, tx, userID, carID); err != nil {
		logger.Error("[Checkout] remove cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Checkout] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	expiresAt := time.Now().Add(s.config.Transaction.PaymentExpiration)
	if s.publisher != nil {
		msg := rabbitmq.TransactionExpirationMessage{
			TransactionID: transactionID,
			UserID:        userID,
			ExpiresAt:     expiresAt,
		}
		if err := s.publisher.PublishTransactionExpiration(msg); err != nil {
			logger.Error("[Checkout] publish transaction expiration", zap.String("error", err.Error()))
		}
	}

	return &model.CheckoutResponse{
		TransactionID: transactionID,
		Status:        constant.TransactionStatusPending,
		TotalAmount:   car.Price,
		ExpiresAt:     expiresAt,
	}, nil
}

func (s *orderAppImpl) GetTransaction(ctx context.Context, userID, transactionID uint64) (*model.TransactionDetailResponse, error) {
	detail, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		logger.Error("[GetTransaction] get transaction", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	// another user's transaction is reported as missing
	if detail == nil || detail.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return &model.TransactionDetailResponse{
		Transaction:        detail,
		DateDisplay:        datetime.FormatTable(detail.TransactionDate),
		TotalAmountDisplay: money.FormatIDR(detail.TotalAmount),
	}, nil
}

func (s *orderAppImpl) CancelExpired(ctx context.Context, transactionID uint64) error {
	changed, err := s.transactionRepo.UpdateStatusIf(ctx, transactionID, constant.TransactionStatusPending, constant.TransactionStatusCancel)
	if err != nil {
		logger.Error("[CancelExpired] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if changed {
		logger.Info("[CancelExpired] transaction cancelled", zap.Uint64("transaction_id", transactionID))
		return nil
	}

	detail, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		logger.Error("[CancelExpired] get transaction", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return errors.SetCustomError(constant.ErrInvalidTransactionStatus)
}
