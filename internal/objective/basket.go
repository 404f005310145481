package objective

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// BasketLiquidation represents "fully liquidate a basket of input amounts
// into exactly one output token". Token indices are 1-based, matching how
// tokens are numbered across the routing network.
type BasketLiquidation struct {
	expiry
	out     int // 1-based output token index
	amounts []float64
	masked  []float64 // amounts with the output position zeroed
}

// NewBasketLiquidation builds a liquidation objective that never expires.
func NewBasketLiquidation(out int, amounts []float64) (*BasketLiquidation, error) {
	return NewBasketLiquidationWithExpiry(out, amounts, NeverExpires)
}

// NewBasketLiquidationWithExpiry builds a liquidation objective valid for tau
// seconds. out must be within [1, len(amounts)] and tau must be positive.
func NewBasketLiquidationWithExpiry(out int, amounts []float64, tau float64) (*BasketLiquidation, error) {
	if len(amounts) == 0 {
		return nil, fmt.Errorf("basket is empty: %w", ErrInvalidArgument)
	}
	if out < 1 || out > len(amounts) {
		return nil, fmt.Errorf("output token %d out of range [1, %d]: %w", out, len(amounts), ErrInvalidArgument)
	}
	if err := checkExpiry(tau); err != nil {
		return nil, err
	}
	in := make([]float64, len(amounts))
	copy(in, amounts)
	masked := make([]float64, len(amounts))
	copy(masked, amounts)
	masked[out-1] = 0
	return &BasketLiquidation{expiry: expiry{tau}, out: out, amounts: in, masked: masked}, nil
}

// NewSwap builds the two-token special case: sell amount of token in for
// token out on a network of tokens tokens. It is sugar over
// NewBasketLiquidation with a one-hot basket and never expires.
func NewSwap(out, in int, amount float64, tokens int) (*BasketLiquidation, error) {
	return NewSwapWithExpiry(out, in, amount, tokens, NeverExpires)
}

// NewSwapWithExpiry is NewSwap with an explicit expiry in seconds. Callers
// wanting a genuine swap are responsible for in != out.
func NewSwapWithExpiry(out, in int, amount float64, tokens int, tau float64) (*BasketLiquidation, error) {
	if tokens <= 0 {
		return nil, fmt.Errorf("token count %d is not positive: %w", tokens, ErrInvalidArgument)
	}
	if in < 1 || in > tokens {
		return nil, fmt.Errorf("input token %d out of range [1, %d]: %w", in, tokens, ErrInvalidArgument)
	}
	amounts := make([]float64, tokens)
	amounts[in-1] = amount
	return NewBasketLiquidationWithExpiry(out, amounts, tau)
}

func (o *BasketLiquidation) Tokens() int { return len(o.amounts) }

// OutToken returns the 1-based index of the output token.
func (o *BasketLiquidation) OutToken() int { return o.out }

// Amounts returns a copy of the input basket.
func (o *BasketLiquidation) Amounts() []float64 {
	in := make([]float64, len(o.amounts))
	copy(in, o.amounts)
	return in
}

func (o *BasketLiquidation) F(v []float64) (float64, error) {
	if err := checkLen("argument vector", len(v), len(o.amounts)); err != nil {
		return 0, err
	}
	if v[o.out-1] < 1 {
		return math.Inf(1), nil
	}
	return floats.Dot(o.masked, v), nil
}

func (o *BasketLiquidation) Grad(dst, v []float64) error {
	if err := checkLen("argument vector", len(v), len(o.amounts)); err != nil {
		return err
	}
	if err := checkLen("gradient buffer", len(dst), len(o.amounts)); err != nil {
		return err
	}
	if v[o.out-1] < 1 {
		fillInf(dst)
		return nil
	}
	copy(dst, o.masked)
	return nil
}

// LowerLimit keeps every component strictly positive and the output
// component above the v[out] >= 1 feasibility threshold.
func (o *BasketLiquidation) LowerLimit() []float64 {
	lo := make([]float64, len(o.amounts))
	for i := range lo {
		lo[i] = sqrtMachEps
	}
	lo[o.out-1] = 1 + sqrtMachEps
	return lo
}

func (o *BasketLiquidation) UpperLimit() []float64 {
	return infVector(len(o.amounts))
}
