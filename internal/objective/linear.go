package objective

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// LinearNonnegative represents "maximize revenue at a fixed positive price
// vector, subject to a nonnegative allocation". It is the conjugate of
// U(psi) = c'psi over psi >= 0: F is zero wherever the dual variable
// dominates the price and +Inf everywhere else.
type LinearNonnegative struct {
	expiry
	prices []float64
}

// NewLinearNonnegative builds a fee-maximizing objective that never expires.
func NewLinearNonnegative(prices []float64) (*LinearNonnegative, error) {
	return NewLinearNonnegativeWithExpiry(prices, NeverExpires)
}

// NewLinearNonnegativeWithExpiry builds a fee-maximizing objective valid for
// tau seconds. Every price must be strictly positive and tau must be
// positive.
func NewLinearNonnegativeWithExpiry(prices []float64, tau float64) (*LinearNonnegative, error) {
	if len(prices) == 0 {
		return nil, fmt.Errorf("price vector is empty: %w", ErrInvalidArgument)
	}
	for k, p := range prices {
		if math.IsNaN(p) || p <= 0 {
			return nil, fmt.Errorf("price %v for token %d is not strictly positive: %w", p, k+1, ErrInvalidArgument)
		}
	}
	if err := checkExpiry(tau); err != nil {
		return nil, err
	}
	c := make([]float64, len(prices))
	copy(c, prices)
	return &LinearNonnegative{expiry: expiry{tau}, prices: c}, nil
}

func (o *LinearNonnegative) Tokens() int { return len(o.prices) }

// Prices returns a copy of the stored price vector.
func (o *LinearNonnegative) Prices() []float64 {
	c := make([]float64, len(o.prices))
	copy(c, o.prices)
	return c
}

// feasible reports whether every price is dominated by the argument.
func (o *LinearNonnegative) feasible(v []float64) bool {
	for k, c := range o.prices {
		if v[k] < c {
			return false
		}
	}
	return true
}

func (o *LinearNonnegative) F(v []float64) (float64, error) {
	if err := checkLen("argument vector", len(v), len(o.prices)); err != nil {
		return 0, err
	}
	if o.feasible(v) {
		return 0, nil
	}
	return math.Inf(1), nil
}

func (o *LinearNonnegative) Grad(dst, v []float64) error {
	if err := checkLen("argument vector", len(v), len(o.prices)); err != nil {
		return err
	}
	if err := checkLen("gradient buffer", len(dst), len(o.prices)); err != nil {
		return err
	}
	if !o.feasible(v) {
		fillInf(dst)
		return nil
	}
	for i := range dst {
		dst[i] = 0
	}
	return nil
}

func (o *LinearNonnegative) LowerLimit() []float64 {
	lo := o.Prices()
	floats.AddConst(sqrtMachEps, lo)
	return lo
}

func (o *LinearNonnegative) UpperLimit() []float64 {
	return infVector(len(o.prices))
}
