package admin_test

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	appadmin "github.com/muhammadheryan/car-showroom/application/admin"
	"github.com/muhammadheryan/car-showroom/constant"
	carmocks "github.com/muhammadheryan/car-showroom/mocks/repository/car"
	creditmocks "github.com/muhammadheryan/car-showroom/mocks/repository/credit"
	transactionmocks "github.com/muhammadheryan/car-showroom/mocks/repository/transaction"
	usermocks "github.com/muhammadheryan/car-showroom/mocks/repository/user"
	"github.com/muhammadheryan/car-showroom/model"
	cerr "github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/muhammadheryan/car-showroom/utils/rangefilter"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"
)

type fields struct {
	userRepo        *usermocks.UserRepository
	carRepo         *carmocks.CarRepository
	transactionRepo *transactionmocks.TransactionRepository
	creditRepo      *creditmocks.CreditApplicationRepository
}

func newFields(t *testing.T) fields {
	return fields{
		userRepo:        usermocks.NewUserRepository(t),
		carRepo:         carmocks.NewCarRepository(t),
		transactionRepo: transactionmocks.NewTransactionRepository(t),
		creditRepo:      creditmocks.NewCreditApplicationRepository(t),
	}
}

func newApp(f fields) appadmin.AdminApp {
	return appadmin.NewAdminApp(f.userRepo, f.carRepo, f.transactionRepo, f.creditRepo)
}

func customError(t *testing.T, err error, want constant.ErrorType) cerr.CustomError {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
	return ce
}

func sampleTransaction() model.TransactionDetail {
	return model.TransactionDetail{
		TransactionEntity: model.TransactionEntity{
			ID:              7,
			UserID:          1,
			CarID:           3,
			TransactionDate: time.Date(2024, 8, 17, 3, 0, 0, 0, time.UTC),
			TotalAmount:     decimal.NewFromInt(275000000),
			PaymentMethod:   constant.PaymentMethodCash,
			Status:          constant.TransactionStatusSuccess,
		},
		UserName: "Budi",
		CarBrand: "Toyota",
	}
}

func TestAdminApp_TransactionSchema(t *testing.T) {
	f := newFields(t)
	users := []constant.Option{{Value: "1", Label: "Budi"}}
	cars := []constant.Option{{Value: "3", Label: "Toyota"}}
	f.userRepo.On("Options", mock.Anything).Return(users, nil).Once()
	f.carRepo.On("Options", mock.Anything).Return(cars, nil).Once()

	got, err := newApp(f).TransactionSchema(context.Background())
	if err != nil {
		t.Fatalf("TransactionSchema() error = %v", err)
	}
	if got.Name != appadmin.ResourceTransactions || got.Label != "Transaksi" {
		t.Fatalf("TransactionSchema() = %+v", got)
	}
	if !reflect.DeepEqual(got.Fields[0].Options, users) || !reflect.DeepEqual(got.Fields[1].Options, cars) {
		t.Fatalf("relation options = %+v / %+v", got.Fields[0].Options, got.Fields[1].Options)
	}
	rangeFilter := got.Filters[0]
	if rangeFilter.Type != "range" || rangeFilter.Fields[0].Name != "min_total_amount" || rangeFilter.Fields[1].Name != "max_total_amount" {
		t.Fatalf("range filter = %+v", rangeFilter)
	}
}

func TestAdminApp_CreditApplicationSchema_OptionsError(t *testing.T) {
	f := newFields(t)
	f.userRepo.On("Options", mock.Anything).Return(nil, errors.New("db error")).Once()

	_, err := newApp(f).CreditApplicationSchema(context.Background())
	customError(t, err, constant.ErrInternal)
}

func TestAdminApp_ListTransactions(t *testing.T) {
	tests := []struct {
		name           string
		req            model.TransactionListRequest
		wantPredicates []rangefilter.Predicate
		wantIndicators []string
		wantErr        bool
	}{
		{
			name:           "no filter",
			req:            model.TransactionListRequest{},
			wantPredicates: []rangefilter.Predicate{},
			wantIndicators: []string{},
		},
		{
			name: "min only with separators",
			req:  model.TransactionListRequest{MinTotalAmount: "1,500,000"},
			wantPredicates: []rangefilter.Predicate{
				{Column: "t.total_amount", Operator: rangefilter.GreaterOrEqual, Value: decimal.NewFromInt(1500000)},
			},
			wantIndicators: []string{"Total Harga Terendah: Rp 1.500.000"},
		},
		{
			name: "both bounds plus status",
			req:  model.TransactionListRequest{MinTotalAmount: "100", MaxTotalAmount: "200", Status: "cancel"},
			wantPredicates: []rangefilter.Predicate{
				{Column: "t.total_amount", Operator: rangefilter.GreaterOrEqual, Value: decimal.NewFromInt(100)},
				{Column: "t.total_amount", Operator: rangefilter.LessOrEqual, Value: decimal.NewFromInt(200)},
			},
			wantIndicators: []string{
				"Total Harga Terendah: Rp 100 - Total Harga Tertinggi: Rp 200",
				"Status: Dibatalkan",
			},
		},
		{
			name:    "non numeric bound",
			req:     model.TransactionListRequest{MinTotalAmount: "abc"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			var gotFilter *model.TransactionFilter
			if !tt.wantErr {
				f.transactionRepo.On("List", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) { gotFilter = args.Get(1).(*model.TransactionFilter) }).
					Return([]model.TransactionDetail{sampleTransaction()}, int64(1), nil).Once()
			}

			req := tt.req
			got, err := newApp(f).ListTransactions(context.Background(), &req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListTransactions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				customError(t, err, constant.ErrValidation)
				return
			}
			if len(gotFilter.Predicates) != len(tt.wantPredicates) {
				t.Fatalf("predicates = %+v, want %+v", gotFilter.Predicates, tt.wantPredicates)
			}
			for i, p := range tt.wantPredicates {
				g := gotFilter.Predicates[i]
				if g.Column != p.Column || g.Operator != p.Operator || !g.Value.Equal(p.Value) {
					t.Fatalf("predicate[%d] = %+v, want %+v", i, g, p)
				}
			}
			if !reflect.DeepEqual(got.Indicators, tt.wantIndicators) {
				t.Fatalf("indicators = %q, want %q", got.Indicators, tt.wantIndicators)
			}
			if gotFilter.Page != 1 || gotFilter.PerPage != 10 {
				t.Fatalf("page = %d/%d", gotFilter.Page, gotFilter.PerPage)
			}
			row := got.Items[0]
			if row.TotalAmountDisplay != "275.000.000" || row.TransactionDate != "17-08-2024 | 10:00:00" {
				t.Fatalf("row = %+v", row)
			}
		})
	}
}

func TestAdminApp_CreateTransaction(t *testing.T) {
	validForm := func() *model.TransactionForm {
		return &model.TransactionForm{
			UserID:          1,
			CarID:           3,
			TransactionDate: "17-08-2024 10:00:00",
			TotalAmount:     "275,000,000",
			PaymentMethod:   "cash",
		}
	}
	tests := []struct {
		name       string
		form       *model.TransactionForm
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
		wantFields map[string]string
	}{
		{
			name: "success: status defaults to pending",
			form: validForm(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{ID: 1}, nil).Once()
				f.carRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.CarEntity{ID: 3}, nil).Once()
				f.transactionRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.TransactionEntity) bool {
					return e.Status == constant.TransactionStatusPending &&
						e.TotalAmount.Equal(decimal.NewFromInt(275000000)) &&
						e.TransactionDate.Hour() == 10
				})).Return(uint64(7), nil).Once()
				detail := sampleTransaction()
				f.transactionRepo.On("GetByID", mock.Anything, uint64(7)).Return(&detail, nil).Once()
			},
		},
		{
			name:     "error: missing required fields",
			form:     &model.TransactionForm{},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrValidation,
			wantFields: map[string]string{
				"user_id":        "Form nama pengguna tidak boleh kosong.",
				"car_id":         "Form merek mobil tidak boleh kosong.",
				"total_amount":   "Form harga tidak boleh kosong.",
				"payment_method": "Form ini tidak boleh kosong.",
			},
		},
		{
			name: "error: amount beyond column range",
			form: func() *model.TransactionForm {
				form := validForm()
				form.TotalAmount = "99999999999999999999"
				return form
			}(),
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrValidation,
			wantFields: map[string]string{
				"total_amount": "Form harga harus di antara 0 dan 9.999.999.999.999,99.",
			},
		},
		{
			name: "error: negative amount",
			form: func() *model.TransactionForm {
				form := validForm()
				form.TotalAmount = "-1"
				return form
			}(),
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrValidation,
			wantFields: map[string]string{
				"total_amount": "Form harga harus di antara 0 dan 9.999.999.999.999,99.",
			},
		},
		{
			name: "error: unknown user",
			form: validForm(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(nil, nil).Once()
			},
			wantErr:    true,
			errCode:    constant.ErrValidation,
			wantFields: map[string]string{"user_id": "Pengguna yang dipilih tidak ditemukan."},
		},
		{
			name: "error: unknown car",
			form: validForm(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{ID: 1}, nil).Once()
				f.carRepo.On("GetByID", mock.Anything, uint64(3)).Return(nil, nil).Once()
			},
			wantErr:    true,
			errCode:    constant.ErrValidation,
			wantFields: map[string]string{"car_id": "Mobil yang dipilih tidak ditemukan."},
		},
		{
			name: "error: create fails",
			form: validForm(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{ID: 1}, nil).Once()
				f.carRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.CarEntity{ID: 3}, nil).Once()
				f.transactionRepo.On("Create", mock.Anything, mock.Anything).Return(uint64(0), errors.New("db error")).Once()
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

			got, err := newApp(f).CreateTransaction(context.Background(), tt.form)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateTransaction() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				ce := customError(t, err, tt.errCode)
				for k, v := range tt.wantFields {
					if ce.Fields()[k] != v {
						t.Fatalf("field %s = %q, want %q", k, ce.Fields()[k], v)
					}
				}
				return
			}
			if got.ID != 7 {
				t.Fatalf("CreateTransaction() = %+v", got)
			}
		})
	}
}

func TestAdminApp_UpdateTransaction_NotFound(t *testing.T) {
	f := newFields(t)
	f.transactionRepo.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()

	_, err := newApp(f).UpdateTransaction(context.Background(), 99, &model.TransactionForm{})
	customError(t, err, constant.ErrNotFound)
}

func TestAdminApp_DeleteTransaction(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		repoErr  error
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: true, errCode: constant.ErrNotFound},
		{name: "db error", repoErr: errors.New("db error"), wantErr: true, errCode: constant.ErrInternal},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.transactionRepo.On("Delete", mock.Anything, uint64(7)).Return(tt.affected, tt.repoErr).Once()

			err := newApp(f).DeleteTransaction(context.Background(), 7)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteTransaction() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				customError(t, err, tt.errCode)
			}
		})
	}
}

func TestAdminApp_BulkDeleteTransactions(t *testing.T) {
	f := newFields(t)
	f.transactionRepo.On("BulkDelete", mock.Anything, []uint64{1, 2, 3}).Return(int64(3), nil).Once()

	app := newApp(f)
	got, err := app.BulkDeleteTransactions(context.Background(), &model.BulkDeleteRequest{IDs: []uint64{1, 2, 3}})
	if err != nil || got.Deleted != 3 {
		t.Fatalf("BulkDeleteTransactions() = %+v, %v", got, err)
	}

	_, err = app.BulkDeleteTransactions(context.Background(), &model.BulkDeleteRequest{})
	customError(t, err, constant.ErrValidation)
}

func TestAdminApp_ExportTransactions(t *testing.T) {
	f := newFields(t)
	f.transactionRepo.On("List", mock.Anything, mock.MatchedBy(func(filter *model.TransactionFilter) bool {
		return filter.Page == 1 && filter.PerPage == 10000 && len(filter.Predicates) == 1
	})).Return([]model.TransactionDetail{sampleTransaction()}, int64(1), nil).Once()

	got, err := newApp(f).ExportTransactions(context.Background(), &model.TransactionListRequest{MaxTotalAmount: "300000000"})
	if err != nil {
		t.Fatalf("ExportTransactions() error = %v", err)
	}
	if !strings.HasPrefix(got.Name, "transaksi-") || !strings.HasSuffix(got.Name, ".xlsx") {
		t.Fatalf("file name = %s", got.Name)
	}

	file, err := excelize.OpenReader(bytes.NewReader(got.Content))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer file.Close()
	rows, err := file.GetRows("Transaksi")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	want := []string{"7", "Budi", "Toyota", "17-08-2024 | 10:00:00", "275.000.000", "Uang Tunai", "Sukses"}
	if len(rows) != 2 || !reflect.DeepEqual(rows[1], want) {
		t.Fatalf("rows = %q", rows)
	}
}

func TestAdminApp_ListCreditApplications(t *testing.T) {
	f := newFields(t)
	f.creditRepo.On("List", mock.Anything, mock.MatchedBy(func(filter *model.CreditApplicationFilter) bool {
		return len(filter.Predicates) == 1 && filter.Predicates[0].Operator == rangefilter.LessOrEqual && filter.Status == "ditolak"
	})).Return([]model.CreditApplicationDetail{{
		CreditApplicationEntity: model.CreditApplicationEntity{
			ID:              2,
			ApplicationDate: time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC),
			Income:          decimal.NewFromInt(8000000),
			Status:          constant.CreditStatusRejected,
		},
		UserName: "Sari",
		CarBrand: "Honda",
	}}, int64(1), nil).Once()

	got, err := newApp(f).ListCreditApplications(context.Background(), &model.CreditApplicationListRequest{
		MaxIncome: "10,000,000",
		Status:    "ditolak",
	})
	if err != nil {
		t.Fatalf("ListCreditApplications() error = %v", err)
	}
	wantIndicators := []string{"Pendapatan Tertinggi: Rp 10.000.000", "Status: Ditolak"}
	if !reflect.DeepEqual(got.Indicators, wantIndicators) {
		t.Fatalf("indicators = %q, want %q", got.Indicators, wantIndicators)
	}
	if got.Items[0].IncomeDisplay != "8.000.000" || got.Items[0].ApplicationDate != "02-01-2024 | 08:00:00" {
		t.Fatalf("row = %+v", got.Items[0])
	}
}

func TestAdminApp_CreateCreditApplication_DefaultStatus(t *testing.T) {
	f := newFields(t)
	f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{ID: 1}, nil).Once()
	f.carRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.CarEntity{ID: 3}, nil).Once()
	f.creditRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.CreditApplicationEntity) bool {
		return e.Status == constant.CreditStatusPending && e.Income.Equal(decimal.NewFromInt(12000000))
	})).Return(uint64(4), nil).Once()
	f.creditRepo.On("GetByID", mock.Anything, uint64(4)).Return(&model.CreditApplicationDetail{
		CreditApplicationEntity: model.CreditApplicationEntity{ID: 4},
	}, nil).Once()

	got, err := newApp(f).CreateCreditApplication(context.Background(), &model.CreditApplicationForm{
		UserID: 1,
		CarID:  3,
		Income: "12,000,000",
	})
	if err != nil || got.ID != 4 {
		t.Fatalf("CreateCreditApplication() = %+v, %v", got, err)
	}
}

func TestAdminApp_CreateCreditApplication_IncomeOutOfRange(t *testing.T) {
	f := newFields(t)

	_, err := newApp(f).CreateCreditApplication(context.Background(), &model.CreditApplicationForm{
		UserID: 1,
		CarID:  3,
		Income: "10,000,000,000,000",
	})
	ce := customError(t, err, constant.ErrValidation)
	if got := ce.Fields()["income"]; got != "Form penghasilan harus di antara 0 dan 9.999.999.999.999,99." {
		t.Fatalf("income message = %q", got)
	}
}
