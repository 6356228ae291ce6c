package shipping

import (
	"fmt"
	"math"
)

// Money is an amount in cents.
type Money int64

// MoneyFromFloat converts an amount in currency units (ex: 5.5) to Money, rounding to the nearest cent, ties to even.
func MoneyFromFloat(f float64) Money {
	return Money(math.RoundToEven(f * 100))
}

// String renders m with two decimals (ex: "21.45").
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Factor is a multiplier in ten-thousandths (ex: 15000 is 1.5).
type Factor int64

// FactorOne leaves amounts unchanged.
const FactorOne Factor = 10000

// FactorFromFloat converts f (ex: 1.1) to a Factor, rounding ties to even.
func FactorFromFloat(f float64) Factor {
	return Factor(math.RoundToEven(f * float64(FactorOne)))
}

func (f Factor) String() string {
	return fmt.Sprintf("%g", float64(f)/float64(FactorOne))
}

// Times returns m*f rounded to the nearest cent, ties to even.
func (m Money) Times(f Factor) Money {
	return Money(divRoundHalfEven(int64(m)*int64(f), int64(FactorOne)))
}

// divRoundHalfEven returns num/den rounded to the nearest integer, ties to even. den must be positive.
func divRoundHalfEven(num, den int64) int64 {
	q := num / den
	r := num % den
	if r < 0 {
		r = -r
	}
	twice := 2 * r
	if twice < den || (twice == den && q%2 == 0) {
		return q
	}
	if num < 0 {
		return q - 1
	}
	return q + 1
}
