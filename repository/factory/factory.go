// Package factory generates plausible showroom records for local development.
package factory

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/model"
	"github.com/muhammadheryan/car-showroom/utils/datetime"
	"github.com/shopspring/decimal"
)

var (
	colors = []string{"Hitam", "Putih", "Silver", "Merah", "Abu-abu", "Biru"}

	catalogue = []struct {
		brand, model, carType string
		minPrice, maxPrice    int64
	}{
		{"Toyota", "Avanza", "MPV", 230000000, 310000000},
		{"Toyota", "Fortuner", "SUV", 520000000, 700000000},
		{"Honda", "Civic", "Sedan", 550000000, 620000000},
		{"Honda", "HR-V", "SUV", 380000000, 550000000},
		{"Mitsubishi", "Xpander", "MPV", 260000000, 350000000},
		{"Suzuki", "Ertiga", "MPV", 220000000, 300000000},
		{"Hyundai", "Ioniq 5", "Hatchback", 720000000, 860000000},
		{"Daihatsu", "Ayla", "Hatchback", 140000000, 190000000},
		{"Mazda", "3", "Sedan", 480000000, 560000000},
	}

	paymentMethods = []constant.PaymentMethod{
		constant.PaymentMethodTransferBank,
		constant.PaymentMethodCreditCard,
		constant.PaymentMethodCash,
	}
	transactionStatuses = []constant.TransactionStatus{
		constant.TransactionStatusPending,
		constant.TransactionStatusProcessing,
		constant.TransactionStatusSuccess,
		constant.TransactionStatusCancel,
		constant.TransactionStatusFailed,
	}
	creditStatuses = []constant.CreditStatus{
		constant.CreditStatusPending,
		constant.CreditStatusApproved,
		constant.CreditStatusRejected,
	}
)

// Coordinates of generated orders stay inside East Java around Malang.
const (
	minLatitude  = -8.2
	maxLatitude  = -7.6
	minLongitude = 108.9861
	maxLongitude = 112.6315
)

type Factory struct {
	fake *gofakeit.Faker
	seq  int
}

// New returns a factory whose output is fully determined by a non-zero
// seed. Zero picks a random seed.
func New(seed int64) *Factory {
	return &Factory{fake: gofakeit.New(uint64(seed))}
}

// emailPart keeps the ASCII letters of s, lower-cased.
func emailPart(s string) string {
	part := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
	if part == "" {
		return "user"
	}
	return part
}

// User returns a member account; every generated email and phone is unique
// within one factory.
func (f *Factory) User(passwordHash string) *model.UserEntity {
	f.seq++
	first, last := f.fake.FirstName(), f.fake.LastName()
	return &model.UserEntity{
		Name:         first + " " + last,
		Email:        fmt.Sprintf("%s.%s%d@example.com", emailPart(first), emailPart(last), f.seq),
		Phone:        fmt.Sprintf("0812%08d", f.seq),
		PasswordHash: passwordHash,
	}
}

func (f *Factory) Car() *model.CarEntity {
	c := catalogue[f.fake.IntN(len(catalogue))]
	// prices are rounded to the million
	price := c.minPrice + int64(f.fake.IntN(int(c.maxPrice-c.minPrice+1)))
	price -= price % 1000000
	return &model.CarEntity{
		Brand:       c.brand,
		Model:       c.model,
		Type:        c.carType,
		Year:        f.fake.IntRange(2018, 2024),
		Color:       f.fake.RandomString(colors),
		Price:       decimal.NewFromInt(price),
		Description: fmt.Sprintf("%s %s kondisi terawat, siap pakai.", c.brand, c.model),
	}
}

func (f *Factory) Address() string {
	return fmt.Sprintf("Jl. %s No. %d, %s", f.fake.StreetName(), f.fake.IntRange(1, 200), f.fake.City())
}

// Transaction returns an order of userID for carID dated within the last
// 90 days.
func (f *Factory) Transaction(userID, carID uint64) *model.TransactionEntity {
	latitude := f.fake.Float64Range(minLatitude, maxLatitude)
	longitude := f.fake.Float64Range(minLongitude, maxLongitude)
	return &model.TransactionEntity{
		UserID:          userID,
		CarID:           carID,
		TransactionDate: f.recent(),
		TotalAmount:     decimal.NewFromFloat(f.fake.Float64Range(10000, 100000)).Round(2),
		PaymentMethod:   paymentMethods[f.fake.IntN(len(paymentMethods))],
		Status:          transactionStatuses[f.fake.IntN(len(transactionStatuses))],
		Latitude:        &latitude,
		Longitude:       &longitude,
		OrderAddress:    f.Address(),
	}
}

func (f *Factory) CreditApplication(userID, carID uint64) *model.CreditApplicationEntity {
	income := 3000000 + int64(f.fake.IntN(47))*1000000
	return &model.CreditApplicationEntity{
		UserID:          userID,
		CarID:           carID,
		ApplicationDate: f.recent(),
		Income:          decimal.NewFromInt(income),
		Status:          creditStatuses[f.fake.IntN(len(creditStatuses))],
	}
}

func (f *Factory) recent() time.Time {
	now := datetime.Now()
	return f.fake.DateRange(now.Add(-90*24*time.Hour), now).In(now.Location()).Truncate(time.Second)
}
