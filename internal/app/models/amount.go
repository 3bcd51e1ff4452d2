package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value in minor units (cents). It renders in JSON as
// a decimal number with two fraction digits and parses decimals exactly.
type Amount int64

var (
	ErrAmountFormat    = errors.New("amount must be a decimal number")
	ErrAmountPrecision = errors.New("amount must have at most two decimal places")
	ErrAmountRange     = errors.New("amount out of range")
)

// ParseAmount parses values such as "25", "25.5" and "-3.75".
func ParseAmount(value string) (Amount, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, ErrAmountFormat
	}

	negative := false
	switch value[0] {
	case '-':
		negative = true
		value = value[1:]
	case '+':
		value = value[1:]
	}

	whole, fraction, hasFraction := strings.Cut(value, ".")
	if whole == "" && (!hasFraction || fraction == "") {
		return 0, ErrAmountFormat
	}
	if !isDigits(whole) || (hasFraction && (fraction == "" || !isDigits(fraction))) {
		return 0, ErrAmountFormat
	}
	if len(fraction) > 2 {
		return 0, ErrAmountPrecision
	}
	for len(fraction) < 2 {
		fraction += "0"
	}
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > (1<<63-1)/100-1 {
		return 0, ErrAmountRange
	}
	cents, _ := strconv.ParseInt(fraction, 10, 64)

	total := units*100 + cents
	if negative {
		total = -total
	}
	return Amount(total), nil
}

func NewAmountFromUnits(units int64) Amount {
	return Amount(units * 100)
}

func (a Amount) Cents() int64 {
	return int64(a)
}

func (a Amount) String() string {
	value := int64(a)
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	return fmt.Sprintf("%s%d.%02d", sign, value/100, value%100)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return ErrAmountFormat
		}
		raw = unquoted
	}

	parsed, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
