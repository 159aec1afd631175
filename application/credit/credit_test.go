package credit_test

import (
	"context"
	"errors"
	"testing"

	appcredit "github.com/muhammadheryan/car-showroom/application/credit"
	"github.com/muhammadheryan/car-showroom/constant"
	carmocks "github.com/muhammadheryan/car-showroom/mocks/repository/car"
	creditmocks "github.com/muhammadheryan/car-showroom/mocks/repository/credit"
	"github.com/muhammadheryan/car-showroom/model"
	cerr "github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func TestCreditApp_Apply(t *testing.T) {
	type fields struct {
		carRepo    *carmocks.CarRepository
		creditRepo *creditmocks.CreditApplicationRepository
	}
	tests := []struct {
		name       string
		income     string
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
		wantFields map[string]string
	}{
		{
			name:   "success: separators stripped and status pending",
			income: "12,500,000",
			mockCall: func(f fields) {
				f.carRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.CarEntity{ID: 3}, nil).Once()
				f.creditRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.CreditApplicationEntity) bool {
					return e.UserID == 1 && e.CarID == 3 &&
						e.Income.Equal(decimal.NewFromInt(12500000)) &&
						e.Status == constant.CreditStatusPending &&
						!e.ApplicationDate.IsZero()
				})).Return(uint64(21), nil).Once()
			},
		},
		{
			name:       "error: empty income",
			income:     "",
			mockCall:   func(f fields) {},
			wantErr:    true,
			errCode:    constant.ErrValidation,
			wantFields: map[string]string{"income": "Form penghasilan tidak boleh kosong."},
		},
		{
			name:       "error: non numeric income",
			income:     "banyak",
			mockCall:   func(f fields) {},
			wantErr:    true,
			errCode:    constant.ErrValidation,
			wantFields: map[string]string{"income": "Form penghasilan harus berupa angka."},
		},
		{
			name:       "error: income beyond column range",
			income:     "99999999999999999999",
			mockCall:   func(f fields) {},
			wantErr:    true,
			errCode:    constant.ErrValidation,
			wantFields: map[string]string{"income": "Form penghasilan harus di antara 0 dan 9.999.999.999.999,99."},
		},
		{
			name:   "success: largest storable income",
			income: "9,999,999,999,999.99",
			mockCall: func(f fields) {
				f.carRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.CarEntity{ID: 3}, nil).Once()
				f.creditRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.CreditApplicationEntity) bool {
					return e.Income.Equal(decimal.RequireFromString("9999999999999.99"))
				})).Return(uint64(21), nil).Once()
			},
		},
		{
			name:   "error: car not found",
			income: "5000000",
			mockCall: func(f fields) {
				f.carRepo.On("GetByID", mock.Anything, uint64(3)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{carRepo: carmocks.NewCarRepository(t), creditRepo: creditmocks.NewCreditApplicationRepository(t)}
			tt.mockCall(f)

			got, err := appcredit.NewCreditApp(f.carRepo, f.creditRepo).
				Apply(context.Background(), 1, 3, &model.CreditApplyRequest{Income: tt.income})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Apply() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("Apply() error = %v, want %v", err, tt.errCode)
				}
				for k, v := range tt.wantFields {
					if ce.Fields()[k] != v {
						t.Fatalf("Apply() field %s = %q, want %q", k, ce.Fields()[k], v)
					}
				}
				return
			}
			if got.ApplicationID != 21 || got.Status != constant.CreditStatusPending {
				t.Fatalf("Apply() = %+v", got)
			}
		})
	}
}
