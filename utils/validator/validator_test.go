package validatorx_test

import (
	"errors"
	"testing"

	"github.com/muhammadheryan/car-showroom/constant"
	cerr "github.com/muhammadheryan/car-showroom/utils/errors"
	validatorx "github.com/muhammadheryan/car-showroom/utils/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderForm struct {
	UserID        uint64 `json:"user_id" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash credit_card"`
	Email         string `json:"email" validate:"omitempty,email"`
	Note          string `json:"note" validate:"omitempty,alpha"`
}

func TestValidateForm(t *testing.T) {
	validatorx.Init()

	tests := []struct {
		name string
		form orderForm
		want map[string]string
	}{
		{
			name: "valid form",
			form: orderForm{UserID: 1, PaymentMethod: "cash", Email: "budi@example.com", Note: "lunas"},
		},
		{
			name: "required fields use field then tag messages",
			form: orderForm{},
			want: map[string]string{
				"user_id":        "Form nama pengguna tidak boleh kosong.",
				"payment_method": "Form ini tidak boleh kosong.",
			},
		},
		{
			name: "unknown tag falls back",
			form: orderForm{UserID: 1, PaymentMethod: "giro", Email: "budi", Note: "123"},
			want: map[string]string{
				"payment_method": "Form tipe harus berupa salah satu dari opsi yang tersedia.",
				"email":          "Form email harus berupa alamat email yang valid.",
				"note":           "Form ini tidak valid.",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateForm(&tt.form)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}

			var ce cerr.CustomError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, constant.ErrValidation, ce.Type())
			assert.Equal(t, tt.want, ce.Fields())
		})
	}
}

func TestValidateForm_NotAStruct(t *testing.T) {
	err := validatorx.ValidateForm(42)
	require.Error(t, err)

	var ce cerr.CustomError
	assert.False(t, errors.As(err, &ce))
}

func TestFieldError(t *testing.T) {
	err := validatorx.FieldError("car_id", "exists")

	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, map[string]string{"car_id": "Mobil yang dipilih tidak ditemukan."}, ce.Fields())
	assert.Nil(t, validatorx.Messages(errors.New("plain")))
}

type incomeForm struct {
	Income string `json:"income" validate:"required,numeric,amount"`
}

func TestValidateForm_Amount(t *testing.T) {
	tests := []struct {
		income  string
		wantErr bool
	}{
		{income: "0"},
		{income: "12500000.50"},
		{income: "9999999999999.99"},
		{income: "10000000000000", wantErr: true},
		{income: "99999999999999999999", wantErr: true},
		{income: "-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.income, func(t *testing.T) {
			err := validatorx.ValidateForm(&incomeForm{Income: tt.income})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var ce cerr.CustomError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, "Form penghasilan harus di antara 0 dan 9.999.999.999.999,99.", ce.Fields()["income"])
		})
	}
}
