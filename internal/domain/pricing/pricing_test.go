package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-cli/internal/domain/pricing"
)

func TestSellingPrice_MarkupFijo(t *testing.T) {
	cases := []struct {
		cost string
		want string
	}{
		{"100", "300"},
		{"0.5", "1.5"},
		{"199.99", "599.97"},
		{"1000000", "3000000"},
	}
	for _, tc := range cases {
		cost := decimal.RequireFromString(tc.cost)
		got := pricing.SellingPrice(cost)
		assert.True(t, decimal.RequireFromString(tc.want).Equal(got),
			"precio de venta para costo %s: esperado %s, obtenido %s", tc.cost, tc.want, got)
	}
}

func TestSellingPrice_IdaYVuelta(t *testing.T) {
	// selling_price(p) / 3 == p para todo costo almacenado
	for _, c := range []string{"1", "33.33", "250", "999999.99"} {
		cost := decimal.RequireFromString(c)
		back := pricing.SellingPrice(cost).Div(pricing.Markup)
		assert.True(t, cost.Equal(back), "ida y vuelta para %s", c)
	}
}
