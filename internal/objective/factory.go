package objective

import "fmt"

// Objective kinds accepted by New.
const (
	KindLinear = "linear"
	KindBasket = "basket"
	KindSwap   = "swap"
)

// Spec describes one objective declaratively, the way it arrives from a
// routing request or an orders file. Only the fields relevant to Kind are
// consulted; Expiry is in seconds, with 0 meaning the order never expires.
type Spec struct {
	Kind    string
	Prices  []float64 // linear: per-token price vector
	Out     int       // basket, swap: 1-based output token
	In      int       // swap: 1-based input token
	Amounts []float64 // basket: input amounts per token
	Amount  float64   // swap: input amount
	Tokens  int       // swap: network token count
	Expiry  float64
}

// New dispatches on Kind and builds the matching objective.
func New(s Spec) (Objective, error) {
	tau := s.Expiry
	if tau == 0 {
		tau = NeverExpires
	}
	switch s.Kind {
	case KindLinear:
		return NewLinearNonnegativeWithExpiry(s.Prices, tau)
	case KindBasket:
		return NewBasketLiquidationWithExpiry(s.Out, s.Amounts, tau)
	case KindSwap:
		return NewSwapWithExpiry(s.Out, s.In, s.Amount, s.Tokens, tau)
	default:
		return nil, fmt.Errorf("unknown objective kind %q: %w", s.Kind, ErrInvalidArgument)
	}
}
