package rangefilter_test

import (
	"testing"

	"github.com/muhammadheryan/car-showroom/utils/rangefilter"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var totalAmount = rangefilter.Filter{
	Column:   "t.total_amount",
	MinLabel: "Total Harga Terendah",
	MaxLabel: "Total Harga Tertinggi",
	Prefix:   "Rp ",
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		min     string
		max     string
		wantMin string
		wantMax string
	}{
		{name: "both absent", min: "", max: ""},
		{name: "whitespace only", min: "  ", max: "\t"},
		{name: "zero is no bound", min: "0", max: "0.00"},
		{name: "garbage is no bound", min: "abc", max: "12x"},
		{name: "min only", min: "1500000", wantMin: "1500000"},
		{name: "max only", max: "250000000", wantMax: "250000000"},
		{name: "comma separators stripped", min: "1,500,000", max: "2,000,000.50", wantMin: "1500000", wantMax: "2000000.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := rangefilter.Parse(tt.min, tt.max)
			if tt.wantMin == "" {
				assert.Nil(t, b.Min)
			} else {
				require.NotNil(t, b.Min)
				assert.True(t, b.Min.Equal(decimal.RequireFromString(tt.wantMin)), "min = %s", b.Min)
			}
			if tt.wantMax == "" {
				assert.Nil(t, b.Max)
			} else {
				require.NotNil(t, b.Max)
				assert.True(t, b.Max.Equal(decimal.RequireFromString(tt.wantMax)), "max = %s", b.Max)
			}
		})
	}
}

func TestFilter_NoBounds(t *testing.T) {
	b := rangefilter.Parse("", "")

	assert.True(t, b.Empty())
	assert.Empty(t, totalAmount.Predicates(b))

	text, ok := totalAmount.Indicator(b)
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestFilter_MinOnly(t *testing.T) {
	b := rangefilter.Parse("1500000", "")

	preds := totalAmount.Predicates(b)
	require.Len(t, preds, 1)
	assert.Equal(t, "t.total_amount", preds[0].Column)
	assert.Equal(t, rangefilter.GreaterOrEqual, preds[0].Operator)
	assert.True(t, preds[0].Value.Equal(decimal.NewFromInt(1500000)))

	clause, arg := preds[0].SQL()
	assert.Equal(t, "t.total_amount >= ?", clause)
	assert.Equal(t, preds[0].Value, arg)

	text, ok := totalAmount.Indicator(b)
	assert.True(t, ok)
	assert.Equal(t, "Total Harga Terendah: Rp 1.500.000", text)
}

func TestFilter_MaxOnly(t *testing.T) {
	b := rangefilter.Parse("", "75000")

	preds := totalAmount.Predicates(b)
	require.Len(t, preds, 1)
	assert.Equal(t, rangefilter.LessOrEqual, preds[0].Operator)

	clause, _ := preds[0].SQL()
	assert.Equal(t, "t.total_amount <= ?", clause)

	text, ok := totalAmount.Indicator(b)
	assert.True(t, ok)
	assert.Equal(t, "Total Harga Tertinggi: Rp 75.000", text)
}

func TestFilter_BothBounds(t *testing.T) {
	b := rangefilter.Parse("10000", "100000")

	preds := totalAmount.Predicates(b)
	require.Len(t, preds, 2)
	assert.Equal(t, rangefilter.GreaterOrEqual, preds[0].Operator)
	assert.Equal(t, rangefilter.LessOrEqual, preds[1].Operator)

	text, ok := totalAmount.Indicator(b)
	assert.True(t, ok)
	assert.Equal(t, "Total Harga Terendah: Rp 10.000 - Total Harga Tertinggi: Rp 100.000", text)
}

func TestFilter_DefaultLabels(t *testing.T) {
	f := rangefilter.Filter{Column: "income"}

	text, ok := f.Indicator(rangefilter.Parse("1234567", "9876543"))
	assert.True(t, ok)
	assert.Equal(t, "Lower bound: 1.234.567 - Upper bound: 9.876.543", text)
}

func TestFilter_LargeBound(t *testing.T) {
	b := rangefilter.Parse("99999999999999999999", "")

	preds := totalAmount.Predicates(b)
	require.Len(t, preds, 1)
	_, arg := preds[0].SQL()
	assert.True(t, arg.(decimal.Decimal).Equal(decimal.RequireFromString("99999999999999999999")))

	text, ok := totalAmount.Indicator(b)
	assert.True(t, ok)
	assert.Equal(t, "Total Harga Terendah: Rp 99.999.999.999.999.999.999", text)
}
