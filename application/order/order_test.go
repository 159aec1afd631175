package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	apporder "github.com/muhammadheryan/car-showroom/application/order"
	"github.com/muhammadheryan/car-showroom/cmd/config"
	"github.com/muhammadheryan/car-showroom/constant"
	carmocks "github.com/muhammadheryan/car-showroom/mocks/repository/car"
	cartmocks "github.com/muhammadheryan/car-showroom/mocks/repository/cart"
	transactionmocks "github.com/muhammadheryan/car-showroom/mocks/repository/transaction"
	txmocks "github.com/muhammadheryan/car-showroom/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/car-showroom/mocks/repository/user"
	rabbitmqmocks "github.com/muhammadheryan/car-showroom/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/car-showroom/model"
	"github.com/muhammadheryan/car-showroom/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	txRepo          *txmocks.TxRepository
	carRepo         *carmocks.CarRepository
	cartRepo        *cartmocks.CartRepository
	userRepo        *usermocks.UserRepository
	transactionRepo *transactionmocks.TransactionRepository
	publisher       *rabbitmqmocks.Publisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:          txmocks.NewTxRepository(t),
		carRepo:         carmocks.NewCarRepository(t),
		cartRepo:        cartmocks.NewCartRepository(t),
		userRepo:        usermocks.NewUserRepository(t),
		transactionRepo: transactionmocks.NewTransactionRepository(t),
		publisher:       rabbitmqmocks.NewPublisher(t),
	}
}

func newApp(f fields) apporder.OrderApp {
	cfg := &config.Config{
		Transaction: config.TransactionConfig{PaymentExpiration: 24 * time.Hour},
	}
	return apporder.NewOrderApp(cfg, f.txRepo, f.carRepo, f.cartRepo, f.userRepo, f.transactionRepo, f.publisher)
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestOrderApp_Checkout(t *testing.T) {
	price := decimal.NewFromInt(275000000)
	req := &model.CheckoutRequest{
		PaymentMethod: "transfer_bank",
		Latitude:      -7.9666,
		Longitude:     112.6326,
		OrderAddress:  " Jl. Ijen No. 1, Malang ",
	}
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantID   uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: pending transaction and cart cleared",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.carRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).
					Return(&model.CarEntity{ID: 3, Price: price}, nil).Once()
				f.transactionRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(e *model.TransactionEntity) bool {
					return e.UserID == 1 && e.CarID == 3 &&
						e.Status == constant.TransactionStatusPending &&
						e.PaymentMethod == constant.PaymentMethodTransferBank &&
						e.TotalAmount.Equal(price) &&
						e.OrderAddress == "Jl. Ijen No. 1, Malang" &&
						*e.Latitude == -7.9666 && *e.Longitude == 112.6326
				})).Return(uint64(11), nil).Once()
				f.cartRepo.On("RemoveTx", mock.Anything, tx, uint64(1), uint64(3)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishTransactionExpiration", mock.MatchedBy(func(m rabbitmq.TransactionExpirationMessage) bool {
					return m.TransactionID == 11 && m.UserID == 1 && m.ExpiresAt.After(time.Now().Add(23*time.Hour))
				})).Return(nil).Once()
			},
			wantID: 11,
		},
		{
			name: "success: publish failure does not fail checkout",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.carRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).
					Return(&model.CarEntity{ID: 3, Price: price}, nil).Once()
				f.transactionRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(12), nil).Once()
				f.cartRepo.On("RemoveTx", mock.Anything, tx, uint64(1), uint64(3)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishTransactionExpiration", mock.Anything).Return(errors.New("broker down")).Once()
			},
			wantID: 12,
		},
		{
			name: "error: car not found rolls back",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.carRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: insert fails rolls back",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.carRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).
					Return(&model.CarEntity{ID: 3, Price: price}, nil).Once()
				f.transactionRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("db error")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: begin tx fails",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := newApp(f).Checkout(context.Background(), 1, 3, req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Checkout() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.TransactionID != tt.wantID || got.Status != constant.TransactionStatusPending || !got.TotalAmount.Equal(price) {
				t.Fatalf("Checkout() = %+v", got)
			}
		})
	}
}

func TestOrderApp_OrderForm(t *testing.T) {
	f := newFields(t)
	f.carRepo.On("GetByID", mock.Anything, uint64(3)).
		Return(&model.CarEntity{ID: 3, Price: decimal.NewFromInt(1500000)}, nil).Once()
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).
		Return(&model.UserEntity{ID: 1, Name: "Budi", Email: "budi@example.com", Phone: "0811"}, nil).Once()

	got, err := newApp(f).OrderForm(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("OrderForm() error = %v", err)
	}
	if got.PriceDisplay != "Rp 1.500.000" || got.Buyer.Name != "Budi" || len(got.PaymentMethods) != 3 {
		t.Fatalf("OrderForm() = %+v", got)
	}
}

func TestOrderApp_GetTransaction(t *testing.T) {
	detail := &model.TransactionDetail{
		TransactionEntity: model.TransactionEntity{
			ID:              5,
			UserID:          1,
			TransactionDate: time.Date(2024, 8, 17, 3, 0, 0, 0, time.UTC),
			TotalAmount:     decimal.NewFromInt(1500000),
		},
	}
	tests := []struct {
		name    string
		userID  uint64
		detail  *model.TransactionDetail
		wantErr bool
	}{
		{name: "owner sees transaction", userID: 1, detail: detail},
		{name: "other user gets not found", userID: 2, detail: detail, wantErr: true},
		{name: "missing transaction", userID: 1, detail: nil, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.transactionRepo.On("GetByID", mock.Anything, uint64(5)).Return(tt.detail, nil).Once()

			got, err := newApp(f).GetTransaction(context.Background(), tt.userID, 5)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetTransaction() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, constant.ErrNotFound)
				return
			}
			if got.DateDisplay != "17-08-2024 | 10:00:00" || got.TotalAmountDisplay != "Rp 1.500.000" {
				t.Fatalf("GetTransaction() = %+v", got)
			}
		})
	}
}

func TestOrderApp_CancelExpired(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: pending is cancelled",
			mockCall: func(f fields) {
				f.transactionRepo.On("UpdateStatusIf", mock.Anything, uint64(5), constant.TransactionStatusPending, constant.TransactionStatusCancel).
					Return(true, nil).Once()
			},
		},
		{
			name: "error: already paid",
			mockCall: func(f fields) {
				f.transactionRepo.On("UpdateStatusIf", mock.Anything, uint64(5), constant.TransactionStatusPending, constant.TransactionStatusCancel).
					Return(false, nil).Once()
				f.transactionRepo.On("GetByID", mock.Anything, uint64(5)).
					Return(&model.TransactionDetail{TransactionEntity: model.TransactionEntity{ID: 5, Status: constant.TransactionStatusSuccess}}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransactionStatus,
		},
		{
			name: "error: not found",
			mockCall: func(f fields) {
				f.transactionRepo.On("UpdateStatusIf", mock.Anything, uint64(5), constant.TransactionStatusPending, constant.TransactionStatusCancel).
					Return(false, nil).Once()
				f.transactionRepo.On("GetByID", mock.Anything, uint64(5)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: update fails",
			mockCall: func(f fields) {
				f.transactionRepo.On("UpdateStatusIf", mock.Anything, uint64(5), constant.TransactionStatusPending, constant.TransactionStatusCancel).
					Return(false, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			err := newApp(f).CancelExpired(context.Background(), 5)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CancelExpired() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}
