package model

import (
	"time"

	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/utils/rangefilter"
	"github.com/shopspring/decimal"
)

type TransactionEntity struct {
	ID              uint64                     `db:"id" json:"id"`
	UserID          uint64                     `db:"user_id" json:"user_id"`
	CarID           uint64                     `db:"car_id" json:"car_id"`
	TransactionDate time.Time                  `db:"transaction_date" json:"transaction_date"`
	TotalAmount     decimal.Decimal            `db:"total_amount" json:"total_amount"`
	PaymentMethod   constant.PaymentMethod     `db:"payment_method" json:"payment_method"`
	Status          constant.TransactionStatus `db:"status" json:"status"`
	Latitude        *float64                   `db:"latitude" json:"latitude,omitempty"`
	Longitude       *float64                   `db:"longitude" json:"longitude,omitempty"`
	OrderAddress    string                     `db:"order_address" json:"order_address,omitempty"`
	CreatedAt       time.Time                  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time                 `db:"updated_at" json:"updated_at,omitempty"`
}

// TransactionDetail is a transaction joined with its buyer and car.
type TransactionDetail struct {
	TransactionEntity
	UserName string `db:"user_name" json:"user_name"`
	CarBrand string `db:"car_brand" json:"car_brand"`
	CarModel string `db:"car_model" json:"car_model"`
}

type TransactionFilter struct {
	Predicates    []rangefilter.Predicate
	PaymentMethod string
	Status        string
	Search        string
	SortColumn    string
	SortDesc      bool
	Page          int
	PerPage       int
}

// CheckoutRequest is the order form submitted by a buyer.
type CheckoutRequest struct {
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=transfer_bank credit_card cash"`
	Latitude      float64 `json:"latitude" validate:"latitude"`
	Longitude     float64 `json:"longitude" validate:"longitude"`
	OrderAddress  string  `json:"order_address" validate:"required,max=500"`
}

type CheckoutResponse struct {
	TransactionID uint64                     `json:"transaction_id"`
	Status        constant.TransactionStatus `json:"status"`
	TotalAmount   decimal.Decimal            `json:"total_amount"`
	ExpiresAt     time.Time                  `json:"expires_at"`
}

type OrderBuyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OrderFormResponse is the payload of the order form page.
type OrderFormResponse struct {
	Car            *CarEntity        `json:"car"`
	PriceDisplay   string            `json:"price_display"`
	Buyer          OrderBuyer        `json:"buyer"`
	PaymentMethods []constant.Option `json:"payment_methods"`
}

type TransactionDetailResponse struct {
	Transaction        *TransactionDetail `json:"transaction"`
	DateDisplay        string             `json:"transaction_date_display"`
	TotalAmountDisplay string             `json:"total_amount_display"`
}
