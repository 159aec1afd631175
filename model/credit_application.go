package model

import (
	"time"

	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/utils/rangefilter"
	"github.com/shopspring/decimal"
)

type CreditApplicationEntity struct {
	ID              uint64                `db:"id" json:"id"`
	UserID          uint64                `db:"user_id" json:"user_id"`
	CarID           uint64                `db:"car_id" json:"car_id"`
	ApplicationDate time.Time             `db:"application_date" json:"application_date"`
	Income          decimal.Decimal       `db:"income" json:"income"`
	Status          constant.CreditStatus `db:"status" json:"status"`
	CreatedAt       time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time            `db:"updated_at" json:"updated_at,omitempty"`
}

type CreditApplicationDetail struct {
	CreditApplicationEntity
	UserName string `db:"user_name" json:"user_name"`
	CarBrand string `db:"car_brand" json:"car_brand"`
	CarModel string `db:"car_model" json:"car_model"`
}

type CreditApplicationFilter struct {
	Predicates []rangefilter.Predicate
	Status     string
	Search     string
	SortColumn string
	SortDesc   bool
	Page       int
	PerPage    int
}

// CreditApplyRequest is submitted by a buyer applying for credit on a car.
type CreditApplyRequest struct {
	Income string `json:"income" validate:"required,numeric,amount"`
}

type CreditApplyResponse struct {
	ApplicationID uint64                `json:"application_id"`
	Status        constant.CreditStatus `json:"status"`
}
