package admin

import (
	"context"

	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/model"
	"github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"go.uber.org/zap"
)

const (
	ResourceTransactions       = "transactions"
	ResourceCreditApplications = "credit-applications"
)

func (s *adminAppImpl) relationOptions(ctx context.Context, op string) ([]constant.Option, []constant.Option, error) {
	users, err := s.userRepo.Options(ctx)
	if err != nil {
		logger.Error("["+op+"] err userRepo.Options", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	cars, err := s.carRepo.Options(ctx)
	if err != nil {
		logger.Error("["+op+"] err carRepo.Options", zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	return users, cars, nil
}

func relationFields(users, cars []constant.Option) []model.FieldSchema {
	return []model.FieldSchema{
		{Name: "user_id", Label: "Nama Pengguna", Type: "select", Placeholder: "Pilih nama pengguna", Required: true, Options: users},
		{Name: "car_id", Label: "Merek Mobil", Type: "select", Placeholder: "Pilih merek mobil", Required: true, Options: cars},
	}
}

func rangeFields(name, label string) []model.FieldSchema {
	return []model.FieldSchema{
		{Name: "min_" + name, Label: label + " Terendah", Type: "number", Placeholder: "Masukan angka tanpa titik (.)", Prefix: "Rp "},
		{Name: "max_" + name, Label: label + " Tertinggi", Type: "number", Placeholder: "Masukan angka tanpa titik (.)", Prefix: "Rp "},
	}
}

func (s *adminAppImpl) TransactionSchema(ctx context.Context) (*model.ResourceSchema, error) {
	users, cars, err := s.relationOptions(ctx, "TransactionSchema")
	if err != nil {
		return nil, err
	}

	fields := append(relationFields(users, cars),
		model.FieldSchema{Name: "transaction_date", Label: "Waktu Transaksi", Type: "datetime", Placeholder: constant.FormDateTimeLayout},
		model.FieldSchema{Name: "total_amount", Label: "Jumlah Pembayaran", Type: "money", Placeholder: "Masukkan jumlah pembayaran", Prefix: "Rp ", Required: true},
		model.FieldSchema{Name: "payment_method", Label: "Metode Pembayaran", Type: "select", Placeholder: "Pilih metode pembayaran", Required: true, Options: constant.PaymentMethodOptions},
		model.FieldSchema{Name: "status", Label: "Status Transaksi", Type: "select", Placeholder: "Pilih status transaksi", Options: constant.TransactionStatusOptions},
	)

	return &model.ResourceSchema{
		Name:        ResourceTransactions,
		Label:       "Transaksi",
		PluralLabel: "Transaksi",
		Fields:      fields,
		Columns: []model.ColumnSchema{
			{Name: "user_name", Label: "Nama Pengguna", Sortable: true, Searchable: true},
			{Name: "car_brand", Label: "Merek Mobil", Sortable: true, Searchable: true},
			{Name: "transaction_date", Label: "Waktu Transaksi", Sortable: true},
			{Name: "total_amount", Label: "Jumlah Pembayaran", Sortable: true},
			{Name: "payment_method", Label: "Metode Pembayaran", Sortable: true, Searchable: true},
			{Name: "status", Label: "Status Transaksi", Sortable: true, Searchable: true},
		},
		Filters: []model.FilterSchema{
			{Name: "total_amount", Type: "range", Fields: rangeFields("total_amount", "Total Harga")},
			{Name: "payment_method", Type: "select", Options: constant.PaymentMethodOptions},
			{Name: "status", Type: "select", Options: constant.TransactionStatusOptions},
		},
	}, nil
}

func (s *adminAppImpl) CreditApplicationSchema(ctx context.Context) (*model.ResourceSchema, error) {
	users, cars, err := s.relationOptions(ctx, "CreditApplicationSchema")
	if err != nil {
		return nil, err
	}

	fields := append(relationFields(users, cars),
		model.FieldSchema{Name: "application_date", Label: "Waktu Pengajuan", Type: "datetime", Placeholder: constant.FormDateTimeLayout},
		model.FieldSchema{Name: "income", Label: "Jumlah Penghasilan", Type: "money", Placeholder: "Masukkan jumlah penghasilan", Prefix: "Rp ", Required: true},
		model.FieldSchema{Name: "status", Label: "Status Kredit", Type: "select", Placeholder: "Pilih status kredit", Options: constant.CreditStatusOptions},
	)

	return &model.ResourceSchema{
		Name:        ResourceCreditApplications,
		Label:       "Pengajuan Kredit",
		PluralLabel: "Pengajuan Kredit",
		Fields:      fields,
		Columns: []model.ColumnSchema{
			{Name: "user_name", Label: "Nama Pengguna", Sortable: true, Searchable: true},
			{Name: "car_brand", Label: "Merek Mobil", Sortable: true, Searchable: true},
			{Name: "application_date", Label: "Waktu Pengajuan", Sortable: true},
			{Name: "income", Label: "Jumlah Penghasilan", Sortable: true},
			{Name: "status", Label: "Status Kredit", Sortable: true, Searchable: true},
		},
		Filters: []model.FilterSchema{
			{Name: "income", Type: "range", Fields: rangeFields("income", "Pendapatan")},
			{Name: "status", Type: "select", Options: constant.CreditStatusOptions},
		},
	}, nil
}
