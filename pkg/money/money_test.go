package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-cli/pkg/money"
)

func TestFormat_SeparadorDeMilesYDosDecimales(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"150", "150.00"},
		{"750", "750.00"},
		{"10000", "10,000.00"},
		{"1234.5", "1,234.50"},
		{"1000000", "1,000,000.00"},
		{"99.999", "100.00"}, // redondeo a dos decimales
	}
	for _, tc := range cases {
		got := money.Format(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "formato para %s", tc.in)
	}
}
