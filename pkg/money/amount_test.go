package money_test

import (
	"testing"

	"github.com/finflow/finflow/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"12.50", "12.5"},
		{"0012.50", "12.5"},
		{"-42.10", "-42.1"},
		{"0", "0"},
		{"1500.00", "1500"},
		{"0.001", "0.001"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := money.NormalizeAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeAmount_Invalid(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "abc", "12.5.0", "$10"} {
		_, err := money.NormalizeAmount(in)
		assert.Error(t, err, "input %q should be rejected", in)
	}
}

func TestIsValidAmount(t *testing.T) {
	t.Parallel()
	assert.True(t, money.IsValidAmount("10.25"))
	assert.True(t, money.IsValidAmount("-3"))
	assert.False(t, money.IsValidAmount(""))
	assert.False(t, money.IsValidAmount("ten"))
}
