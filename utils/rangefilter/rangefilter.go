// Package rangefilter turns optional numeric lower/upper bounds typed by an
// admin into query predicates and a short indicator text.
package rangefilter

import (
	"strings"

	"github.com/muhammadheryan/car-showroom/utils/money"
	"github.com/shopspring/decimal"
)

const (
	defaultMinLabel = "Lower bound"
	defaultMaxLabel = "Upper bound"
	separator       = " - "
)

// Bounds holds the parsed bounds. A nil pointer means the bound is absent.
type Bounds struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

// Empty reports whether neither bound is present.
func (b Bounds) Empty() bool {
	return b.Min == nil && b.Max == nil
}

// Parse converts the raw form values into Bounds. Empty, unparsable and zero
// inputs are all treated as "no bound".
func Parse(min, max string) Bounds {
	return Bounds{Min: parseBound(min), Max: parseBound(max)}
}

func parseBound(s string) *decimal.Decimal {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d, err := money.Parse(s)
	if err != nil || d.IsZero() {
		return nil
	}
	return &d
}

type Operator string

const (
	GreaterOrEqual Operator = ">="
	LessOrEqual    Operator = "<="
)

// Predicate is a single "column op value" restriction.
type Predicate struct {
	Column   string
	Operator Operator
	Value    decimal.Decimal
}

// SQL renders the predicate as a placeholder clause and its argument.
func (p Predicate) SQL() (string, interface{}) {
	return p.Column + " " + string(p.Operator) + " ?", p.Value
}

// Filter describes one range filter on a numeric column.
type Filter struct {
	Column   string
	MinLabel string
	MaxLabel string
	// Prefix is written before the formatted amount, e.g. "Rp ".
	Prefix string
}

// Predicates returns the restriction for b: column >= min when min is
// present and column <= max when max is present.
func (f Filter) Predicates(b Bounds) []Predicate {
	preds := make([]Predicate, 0, 2)
	if b.Min != nil {
		preds = append(preds, Predicate{Column: f.Column, Operator: GreaterOrEqual, Value: *b.Min})
	}
	if b.Max != nil {
		preds = append(preds, Predicate{Column: f.Column, Operator: LessOrEqual, Value: *b.Max})
	}
	return preds
}

// Indicator summarizes the active bounds. ok is false when no bound is set.
func (f Filter) Indicator(b Bounds) (text string, ok bool) {
	parts := make([]string, 0, 2)
	if b.Min != nil {
		parts = append(parts, f.label(f.MinLabel, defaultMinLabel)+": "+f.Prefix+money.Format(*b.Min))
	}
	if b.Max != nil {
		parts = append(parts, f.label(f.MaxLabel, defaultMaxLabel)+": "+f.Prefix+money.Format(*b.Max))
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, separator), true
}

func (f Filter) label(l, fallback string) string {
	if l == "" {
		return fallback
	}
	return l
}
