package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CarEntity struct {
	ID          uint64          `db:"id" json:"id"`
	Brand       string          `db:"brand" json:"brand"`
	Model       string          `db:"model" json:"model"`
	Type        string          `db:"type" json:"type"`
	Year        int             `db:"year" json:"year"`
	Color       string          `db:"color" json:"color"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Description string          `db:"description" json:"description,omitempty"`
	ImageURL    string          `db:"image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

type CarFilter struct {
	Type    string
	Page    int
	PerPage int
}

type CarListResponse struct {
	Items      []CarEntity `json:"items"`
	TotalCount int64       `json:"total_count"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
}

// LandingResponse is the payload of the landing page.
type LandingResponse struct {
	Header *Header          `json:"header"`
	Cars   *CarListResponse `json:"cars"`
}

// CarDetailResponse is the payload of the car detail page.
type CarDetailResponse struct {
	Car          *CarEntity `json:"car"`
	PriceDisplay string     `json:"price_display"`
}
