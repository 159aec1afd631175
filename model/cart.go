package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartEntity struct {
	ID        uint64     `db:"id" json:"id"`
	UserID    uint64     `db:"user_id" json:"user_id"`
	CarID     uint64     `db:"car_id" json:"car_id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// CartItem is a cart row joined with its car.
type CartItem struct {
	ID       uint64          `db:"id" json:"id"`
	CarID    uint64          `db:"car_id" json:"car_id"`
	Brand    string          `db:"brand" json:"brand"`
	Model    string          `db:"model" json:"model"`
	Type     string          `db:"type" json:"type"`
	Price    decimal.Decimal `db:"price" json:"price"`
	ImageURL string          `db:"image_url" json:"image_url,omitempty"`
	AddedAt  time.Time       `db:"created_at" json:"added_at"`
}

type CartResponse struct {
	Items        []CartItem      `json:"items"`
	Count        int             `json:"count"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
}
