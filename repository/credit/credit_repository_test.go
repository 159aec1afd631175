package credit

import (
	"testing"

	"github.com/muhammadheryan/car-showroom/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildWhere(t *testing.T) {
	tests := []struct {
		name      string
		filter    *model.CreditApplicationFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    &model.CreditApplicationFilter{},
			wantWhere: " WHERE true",
			wantArgs:  []any{},
		},
		{
			name:      "search percent matches literally",
			filter:    &model.CreditApplicationFilter{Search: "%", Status: "ditolak"},
			wantWhere: " WHERE true AND ca.status = ? AND (u.name LIKE ? OR c.brand LIKE ? OR ca.status LIKE ?)",
			wantArgs:  []any{"ditolak", `%\%%`, `%\%%`, `%\%%`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildWhere(tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
