package cart_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appcart "github.com/muhammadheryan/car-showroom/application/cart"
	"github.com/muhammadheryan/car-showroom/constant"
	carmocks "github.com/muhammadheryan/car-showroom/mocks/repository/car"
	cartmocks "github.com/muhammadheryan/car-showroom/mocks/repository/cart"
	"github.com/muhammadheryan/car-showroom/model"
	cerr "github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func TestCartApp_AddToCart(t *testing.T) {
	type fields struct {
		cartRepo *cartmocks.CartRepository
		carRepo  *carmocks.CarRepository
	}
	tests := []struct {
		name     string
		mockCall func(f fields)
		want     *model.CartEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: new entry",
			mockCall: func(f fields) {
				f.carRepo.On("GetByID", mock.Anything, uint64(2)).Return(&model.CarEntity{ID: 2}, nil).Once()
				f.cartRepo.On("Get", mock.Anything, uint64(1), uint64(2)).Return(nil, nil).Once()
				f.cartRepo.On("Create", mock.Anything, uint64(1), uint64(2)).
					Return(&model.CartEntity{ID: 10, UserID: 1, CarID: 2}, nil).Once()
			},
			want: &model.CartEntity{ID: 10, UserID: 1, CarID: 2},
		},
		{
			name: "success: idempotent when already in cart",
			mockCall: func(f fields) {
				f.carRepo.On("GetByID", mock.Anything, uint64(2)).Return(&model.CarEntity{ID: 2}, nil).Once()
				f.cartRepo.On("Get", mock.Anything, uint64(1), uint64(2)).
					Return(&model.CartEntity{ID: 9, UserID: 1, CarID: 2}, nil).Once()
			},
			want: &model.CartEntity{ID: 9, UserID: 1, CarID: 2},
		},
		{
			name: "error: car not found",
			mockCall: func(f fields) {
				f.carRepo.On("GetByID", mock.Anything, uint64(2)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: create fails",
			mockCall: func(f fields) {
				f.carRepo.On("GetByID", mock.Anything, uint64(2)).Return(&model.CarEntity{ID: 2}, nil).Once()
				f.cartRepo.On("Get", mock.Anything, uint64(1), uint64(2)).Return(nil, nil).Once()
				f.cartRepo.On("Create", mock.Anything, uint64(1), uint64(2)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{cartRepo: cartmocks.NewCartRepository(t), carRepo: carmocks.NewCarRepository(t)}
			tt.mockCall(f)

			got, err := appcart.NewCartApp(f.cartRepo, f.carRepo).AddToCart(context.Background(), 1, 2)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddToCart() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("AddToCart() error = %v, want %v", err, tt.errCode)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("AddToCart() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCartApp_RemoveFromCart(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  bool
	}{
		{name: "removed", affected: 1},
		{name: "not in cart", affected: 0, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cartRepo := cartmocks.NewCartRepository(t)
			cartRepo.On("Remove", mock.Anything, uint64(1), uint64(2)).Return(tt.affected, nil).Once()

			err := appcart.NewCartApp(cartRepo, carmocks.NewCarRepository(t)).RemoveFromCart(context.Background(), 1, 2)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RemoveFromCart() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCartApp_ListCart(t *testing.T) {
	cartRepo := cartmocks.NewCartRepository(t)
	cartRepo.On("ListByUser", mock.Anything, uint64(1)).Return([]model.CartItem{
		{ID: 1, CarID: 2, Price: decimal.NewFromInt(150000000)},
		{ID: 2, CarID: 3, Price: decimal.NewFromInt(225500000)},
	}, nil).Once()

	got, err := appcart.NewCartApp(cartRepo, carmocks.NewCarRepository(t)).ListCart(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListCart() error = %v", err)
	}
	if got.Count != 2 || !got.Total.Equal(decimal.NewFromInt(375500000)) || got.TotalDisplay != "Rp 375.500.000" {
		t.Fatalf("ListCart() = %+v", got)
	}
}
