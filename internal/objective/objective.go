// Package objective
package objective

import (
	"errors"
	"fmt"
	"math"
)

// Objective encodes a trader's intent as the convex conjugate of a utility
// function over a portfolio-adjustment vector. The router's solver evaluates
// F and Grad inside its iteration loop and clamps the argument to the box
// [LowerLimit, UpperLimit] before every evaluation.
//
// Infeasibility is never reported as an error: F returns +Inf and Grad fills
// the buffer with +Inf when the argument violates the objective's implicit
// constraint. The solver relies on receiving a numeric value to continue its
// search, so callers must treat an all-+Inf gradient as an infeasibility
// signal rather than a literal step direction.
//
// All methods are safe for concurrent use on shared instances, except that
// two concurrent Grad calls must not share the same dst buffer.
type Objective interface {
	// Tokens returns n, the number of tokens the objective spans. Every
	// vector passed to or returned from the methods below has length n.
	Tokens() int

	// F evaluates the conjugate at v. The result is in [0, +Inf].
	F(v []float64) (float64, error)

	// Grad writes the gradient of F at v into dst, overwriting every
	// component. dst and v must both have length Tokens().
	Grad(dst, v []float64) error

	// LowerLimit returns the componentwise lower bounds the solver must
	// enforce on v before calling F or Grad. A fresh slice every call.
	LowerLimit() []float64

	// UpperLimit returns the componentwise upper bounds on v. A fresh
	// slice every call.
	UpperLimit() []float64

	// TimeToExpiry returns the remaining validity of the order in
	// seconds. NeverExpires means the order has no expiry.
	TimeToExpiry() float64
}

var (
	// ErrInvalidArgument is returned by constructors when a parameter
	// violates the objective's construction contract.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLengthMismatch is returned by F and Grad when a vector's length
	// differs from the objective's token count.
	ErrLengthMismatch = errors.New("length mismatch")
)

// NeverExpires is the expiry of an order that stays valid forever.
var NeverExpires = math.Inf(1)

const machEps = 0x1p-52

// sqrtMachEps keeps the feasibility tests satisfiable under floating-point
// rounding when the solver sits exactly on a lower bound.
var sqrtMachEps = math.Sqrt(machEps)

// expiry carries the stored tau for both concrete objectives.
type expiry struct {
	tau float64
}

func (e expiry) TimeToExpiry() float64 { return e.tau }

func checkExpiry(tau float64) error {
	if math.IsNaN(tau) || tau <= 0 {
		return fmt.Errorf("expiry %v is not positive: %w", tau, ErrInvalidArgument)
	}
	return nil
}

func checkLen(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s has length %d, want %d: %w", name, got, want, ErrLengthMismatch)
	}
	return nil
}

func fillInf(dst []float64) {
	for i := range dst {
		dst[i] = math.Inf(1)
	}
}

func infVector(n int) []float64 {
	v := make([]float64, n)
	fillInf(v)
	return v
}
