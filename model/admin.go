package model

import (
	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/shopspring/decimal"
)

// TransactionListRequest carries the admin table state for transactions.
type TransactionListRequest struct {
	MinTotalAmount string `json:"min_total_amount" validate:"omitempty,numeric"`
	MaxTotalAmount string `json:"max_total_amount" validate:"omitempty,numeric"`
	PaymentMethod  string `json:"payment_method" validate:"omitempty,oneof=transfer_bank credit_card cash"`
	Status         string `json:"status" validate:"omitempty,oneof=pending processing success cancel failed"`
	Search         string `json:"search" validate:"max=100"`
	Sort           string `json:"sort"`
	Direction      string `json:"direction" validate:"omitempty,oneof=asc desc"`
	Page           int    `json:"page"`
	PerPage        int    `json:"per_page"`
}

type CreditApplicationListRequest struct {
	MinIncome string `json:"min_income" validate:"omitempty,numeric"`
	MaxIncome string `json:"max_income" validate:"omitempty,numeric"`
	Status    string `json:"status" validate:"omitempty,oneof=tertunda disetujui ditolak"`
	Search    string `json:"search" validate:"max=100"`
	Sort      string `json:"sort"`
	Direction string `json:"direction" validate:"omitempty,oneof=asc desc"`
	Page      int    `json:"page"`
	PerPage   int    `json:"per_page"`
}

// TransactionForm is the admin create/edit form for a transaction.
type TransactionForm struct {
	UserID          uint64 `json:"user_id" validate:"required"`
	CarID           uint64 `json:"car_id" validate:"required"`
	TransactionDate string `json:"transaction_date" validate:"omitempty,datetime=02-01-2006 15:04:05"`
	TotalAmount     string `json:"total_amount" validate:"required,numeric,amount"`
	PaymentMethod   string `json:"payment_method" validate:"required,oneof=transfer_bank credit_card cash"`
	Status          string `json:"status" validate:"omitempty,oneof=pending processing success cancel failed"`
}

type CreditApplicationForm struct {
	UserID          uint64 `json:"user_id" validate:"required"`
	CarID           uint64 `json:"car_id" validate:"required"`
	ApplicationDate string `json:"application_date" validate:"omitempty,datetime=02-01-2006 15:04:05"`
	Income          string `json:"income" validate:"required,numeric,amount"`
	Status          string `json:"status" validate:"omitempty,oneof=tertunda disetujui ditolak"`
}

type BulkDeleteRequest struct {
	IDs []uint64 `json:"ids" validate:"required,min=1,dive,required"`
}

type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

type TransactionRow struct {
	ID                 uint64                     `json:"id"`
	UserName           string                     `json:"user_name"`
	CarBrand           string                     `json:"car_brand"`
	TransactionDate    string                     `json:"transaction_date"`
	TotalAmount        decimal.Decimal            `json:"total_amount"`
	TotalAmountDisplay string                     `json:"total_amount_display"`
	PaymentMethod      constant.PaymentMethod     `json:"payment_method"`
	Status             constant.TransactionStatus `json:"status"`
}

type TransactionListResponse struct {
	Items      []TransactionRow `json:"items"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	Indicators []string         `json:"indicators"`
}

type CreditApplicationRow struct {
	ID              uint64                `json:"id"`
	UserName        string                `json:"user_name"`
	CarBrand        string                `json:"car_brand"`
	ApplicationDate string                `json:"application_date"`
	Income          decimal.Decimal       `json:"income"`
	IncomeDisplay   string                `json:"income_display"`
	Status          constant.CreditStatus `json:"status"`
}

type CreditApplicationListResponse struct {
	Items      []CreditApplicationRow `json:"items"`
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	PerPage    int                    `json:"per_page"`
	Indicators []string               `json:"indicators"`
}

// ResourceSchema is the declarative description of an admin resource:
// its form fields, table columns and filters.
type ResourceSchema struct {
	Name        string         `json:"name"`
	Label       string         `json:"label"`
	PluralLabel string         `json:"plural_label"`
	Fields      []FieldSchema  `json:"fields"`
	Columns     []ColumnSchema `json:"columns"`
	Filters     []FilterSchema `json:"filters"`
}

type FieldSchema struct {
	Name        string            `json:"name"`
	Label       string            `json:"label"`
	Type        string            `json:"type"`
	Placeholder string            `json:"placeholder,omitempty"`
	Prefix      string            `json:"prefix,omitempty"`
	Required    bool              `json:"required"`
	Options     []constant.Option `json:"options,omitempty"`
}

type ColumnSchema struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	Sortable   bool   `json:"sortable"`
	Searchable bool   `json:"searchable"`
}

type FilterSchema struct {
	Name    string            `json:"name"`
	Type    string            `json:"type"`
	Fields  []FieldSchema     `json:"fields,omitempty"`
	Options []constant.Option `json:"options,omitempty"`
}

// ExportFile is a generated spreadsheet.
type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}
