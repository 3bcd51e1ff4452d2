package models

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Amount
		wantErr error
	}{
		{"Whole Units", "25", 2500, nil},
		{"One Fraction Digit", "25.5", 2550, nil},
		{"Two Fraction Digits", "25.00", 2500, nil},
		{"Leading Dot", ".75", 75, nil},
		{"Explicit Plus", "+1.05", 105, nil},
		{"Negative", "-3.75", -375, nil},
		{"Surrounding Spaces", "  12.34 ", 1234, nil},
		{"Three Fraction Digits", "0.123", 0, ErrAmountPrecision},
		{"Letters", "abc", 0, ErrAmountFormat},
		{"Empty", "", 0, ErrAmountFormat},
		{"Lone Dot", ".", 0, ErrAmountFormat},
		{"Trailing Dot", "25.", 0, ErrAmountFormat},
		{"Exponent", "1e3", 0, ErrAmountFormat},
		{"Just Above The Largest Amount", "92233720368547758.00", 0, ErrAmountRange},
		{"Does Not Fit In int64", "99999999999999999999999", 0, ErrAmountRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Largest Amount Is Accepted", func(t *testing.T) {
		got, err := ParseAmount("92233720368547757.99")
		require.NoError(t, err)
		assert.Equal(t, Amount(9223372036854775799), got)
	})
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Price *Amount `json:"price"`
	}

	t.Run("Number", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"price":25.5}`), &p))
		require.NotNil(t, p.Price)
		assert.Equal(t, Amount(2550), *p.Price)
	})

	t.Run("Quoted String", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"price":"19.99"}`), &p))
		require.NotNil(t, p.Price)
		assert.Equal(t, Amount(1999), *p.Price)
	})

	t.Run("Null Leaves The Field Unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"price":null}`), &p))
		assert.Nil(t, p.Price)
	})

	t.Run("Null On A Value Keeps It", func(t *testing.T) {
		amount := Amount(500)
		require.NoError(t, amount.UnmarshalJSON([]byte("null")))
		assert.Equal(t, Amount(500), amount)
	})

	t.Run("Too Precise Is Rejected", func(t *testing.T) {
		var amount Amount
		err := amount.UnmarshalJSON([]byte("0.123"))
		assert.True(t, errors.Is(err, ErrAmountPrecision))
	})

	t.Run("Overflow Is Rejected", func(t *testing.T) {
		var amount Amount
		err := amount.UnmarshalJSON([]byte(`"99999999999999999999"`))
		assert.True(t, errors.Is(err, ErrAmountRange))
	})

	t.Run("Bad Quoted String Is Rejected", func(t *testing.T) {
		var amount Amount
		err := amount.UnmarshalJSON([]byte(`"abc"`))
		assert.True(t, errors.Is(err, ErrAmountFormat))
	})
}

func TestAmount_String(t *testing.T) {
	tests := []struct {
		amount Amount
		want   string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{2550, "25.50"},
		{-375, "-3.75"},
		{NewAmountFromUnits(40), "40.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.amount.String())

			parsed, err := ParseAmount(tt.amount.String())
			require.NoError(t, err)
			assert.Equal(t, tt.amount, parsed)
		})
	}

	t.Run("JSON Round Trip", func(t *testing.T) {
		data, err := json.Marshal(map[string]Amount{"price": 1234})
		require.NoError(t, err)
		assert.JSONEq(t, `{"price":12.34}`, string(data))
	})
}
