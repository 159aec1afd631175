package header_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appheader "github.com/muhammadheryan/car-showroom/application/header"
	"github.com/muhammadheryan/car-showroom/constant"
	carmocks "github.com/muhammadheryan/car-showroom/mocks/repository/car"
	cartmocks "github.com/muhammadheryan/car-showroom/mocks/repository/cart"
	usermocks "github.com/muhammadheryan/car-showroom/mocks/repository/user"
	"github.com/muhammadheryan/car-showroom/model"
	cerr "github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestDistinctTypes(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{name: "duplicates removed", raw: []string{"Sedan", "SUV", "Sedan"}, want: []string{"sedan", "suv"}},
		{name: "case and space folded", raw: []string{" MPV", "mpv ", "Mpv"}, want: []string{"mpv"}},
		{name: "empty dropped", raw: []string{"", "  ", "Hatchback"}, want: []string{"hatchback"}},
		{name: "accented letters folded", raw: []string{"Coupé", "COUPÉ"}, want: []string{"coupé"}},
		{name: "nothing", raw: nil, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := appheader.DistinctTypes(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("DistinctTypes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeaderApp_Render(t *testing.T) {
	type fields struct {
		carRepo  *carmocks.CarRepository
		cartRepo *cartmocks.CartRepository
		userRepo *usermocks.UserRepository
	}
	viewer := uint64(7)
	tests := []struct {
		name        string
		viewer      *uint64
		currentType string
		mockCall    func(f fields)
		want        *model.Header
		wantErr     bool
	}{
		{
			name:        "guest with active type",
			currentType: "SUV",
			mockCall: func(f fields) {
				f.carRepo.On("DistinctTypes", mock.Anything).Return([]string{"Sedan", "SUV", "Sedan"}, nil).Once()
			},
			want: &model.Header{
				Title: appheader.Title,
				CarTypes: []model.CarTypeLink{
					{Type: "sedan", URL: "/?type=sedan"},
					{Type: "suv", URL: "/?type=suv", Active: true},
				},
				CurrentType: "suv",
				Links: []model.NavLink{
					{Name: "Masuk", URL: "/login", Method: "GET"},
					{Name: "Daftar", URL: "/register", Method: "GET"},
				},
			},
		},
		{
			name:   "authenticated viewer",
			viewer: &viewer,
			mockCall: func(f fields) {
				f.carRepo.On("DistinctTypes", mock.Anything).Return([]string{"MPV"}, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 7}).
					Return(&model.UserEntity{ID: 7, Name: "siti"}, nil).Once()
				f.cartRepo.On("CountByUser", mock.Anything, uint64(7)).Return(int64(2), nil).Once()
			},
			want: &model.Header{
				Title:         appheader.Title,
				CarTypes:      []model.CarTypeLink{{Type: "mpv", URL: "/?type=mpv"}},
				Authenticated: true,
				User:          &model.HeaderUser{Name: "siti", Initial: "S"},
				Links: []model.NavLink{
					{Name: "Keranjang", URL: "/cart", Method: "GET"},
					{Name: "Pengaturan Akun", URL: "/account/settings", Method: "GET"},
					{Name: "Keluar", URL: "/logout", Method: "POST"},
				},
				CartCount: 2,
			},
		},
		{
			name:   "deleted user renders as guest",
			viewer: &viewer,
			mockCall: func(f fields) {
				f.carRepo.On("DistinctTypes", mock.Anything).Return([]string{}, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 7}).Return(nil, nil).Once()
			},
			want: &model.Header{
				Title:    appheader.Title,
				CarTypes: []model.CarTypeLink{},
				Links: []model.NavLink{
					{Name: "Masuk", URL: "/login", Method: "GET"},
					{Name: "Daftar", URL: "/register", Method: "GET"},
				},
			},
		},
		{
			name: "car types query fails",
			mockCall: func(f fields) {
				f.carRepo.On("DistinctTypes", mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				carRepo:  carmocks.NewCarRepository(t),
				cartRepo: cartmocks.NewCartRepository(t),
				userRepo: usermocks.NewUserRepository(t),
			}
			tt.mockCall(f)

			app := appheader.NewHeaderApp(f.carRepo, f.cartRepo, f.userRepo)
			got, err := app.Render(context.Background(), tt.viewer, tt.currentType)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Render() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
					t.Fatalf("Render() error = %v, want ErrInternal", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Render() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
