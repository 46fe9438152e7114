package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromInt(100), INR)
	require.NoError(t, err)
	assert.Equal(t, INR, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))

	_, err = NewMoney(decimal.NewFromInt(100), "")
	assert.Error(t, err)
}

func TestMoney_Add(t *testing.T) {
	a := NewMoneyINRFromFloat(100.50)
	b := NewMoneyINRFromFloat(49.50)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromInt(150)))

	usd, err := NewMoney(decimal.NewFromInt(10), USD)
	require.NoError(t, err)
	_, err = a.Add(usd)
	assert.Error(t, err)
}

func TestMoney_MultiplyByInt(t *testing.T) {
	unit := NewMoneyINRFromFloat(99.99)
	total := unit.MultiplyByInt(3)
	assert.Equal(t, "299.97", total.StringFixed(2))
}

func TestMoney_Paise(t *testing.T) {
	tests := []struct {
		amount string
		paise  int64
	}{
		{"100", 10000},
		{"99.99", 9999},
		{"0.5", 50},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			m, err := NewMoneyINRFromString(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.paise, m.Paise())
		})
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	original := NewMoneyINRFromFloat(275.50)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Money
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.True(t, original.Equals(restored))
}

func TestMoney_Scan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("150.00"))
	assert.Equal(t, INR, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(150)))

	var zero Money
	require.NoError(t, zero.Scan(nil))
	assert.True(t, zero.IsZero())
}

func TestMoney_Comparisons(t *testing.T) {
	a := NewMoneyINRFromFloat(100)
	b := NewMoneyINRFromFloat(50)

	gt, err := a.GreaterThan(b)
	require.NoError(t, err)
	assert.True(t, gt)

	assert.True(t, a.IsPositive())
	assert.False(t, a.IsNegative())
	assert.True(t, ZeroINR().IsZero())
}
