package currency

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_Format(t *testing.T) {
	f := New("ل.س", ",")

	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 0, want: "0 ل.س"},
		{amount: 999, want: "999 ل.س"},
		{amount: 1800, want: "1,800 ل.س"},
		{amount: 1234567, want: "1,234,567 ل.س"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.amount))
		})
	}
}

func TestNewFormatter_UsesConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Currency.Symbol = "SYP"
	cfg.Currency.Thousand = "."

	assert.Equal(t, "25.000 SYP", NewFormatter(cfg).Format(25000))
}
