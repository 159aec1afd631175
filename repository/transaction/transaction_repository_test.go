package transaction

import (
	"testing"

	"github.com/muhammadheryan/car-showroom/model"
	"github.com/muhammadheryan/car-showroom/utils/rangefilter"
	"github.com/stretchr/testify/assert"
)

func TestBuildWhere(t *testing.T) {
	amount := rangefilter.Filter{Column: "t.total_amount"}

	tests := []struct {
		name      string
		filter    *model.TransactionFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    &model.TransactionFilter{},
			wantWhere: " WHERE true",
			wantArgs:  []any{},
		},
		{
			name:      "search wildcards match literally",
			filter:    &model.TransactionFilter{Search: "100%_"},
			wantWhere: " WHERE true AND (u.name LIKE ? OR c.brand LIKE ? OR t.payment_method LIKE ? OR t.status LIKE ?)",
			wantArgs:  []any{`%100\%\_%`, `%100\%\_%`, `%100\%\_%`, `%100\%\_%`},
		},
		{
			name:      "status and payment method",
			filter:    &model.TransactionFilter{PaymentMethod: "cash", Status: "success"},
			wantWhere: " WHERE true AND t.payment_method = ? AND t.status = ?",
			wantArgs:  []any{"cash", "success"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildWhere(tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}

	t.Run("range predicate", func(t *testing.T) {
		filter := &model.TransactionFilter{Predicates: amount.Predicates(rangefilter.Parse("1500000", ""))}
		where, args := buildWhere(filter)
		assert.Equal(t, " WHERE true AND t.total_amount >= ?", where)
		assert.Len(t, args, 1)
	})
}
