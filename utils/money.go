package utils

import "math"

// Cents converts a decimal(10,2) amount to integer cents. Amounts are stored
// as float64 on the models, so equality checks must go through here instead of
// comparing floats directly.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// SameAmount reports whether two monetary amounts are equal at two decimals.
func SameAmount(a, b float64) bool {
	return Cents(a) == Cents(b)
}
