package quantfolio

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidPricingInput reports Black-Scholes inputs outside the model's
// domain (non-positive spot or strike, non-positive volatility, negative
// time to maturity).
var ErrInvalidPricingInput = errors.New("invalid pricing input")

// PricingInputs carries the market assumptions for theoretical option
// pricing.
type PricingInputs struct {
	RiskFreeRate   float64 // annual rate, as a ratio (e.g. 0.04 for 4%)
	Volatility     float64 // annualized volatility, must be positive
	TimeToMaturity float64 // in years, must not be negative
}

func (in PricingInputs) validate(spot, strike float64) error {
	switch {
	case spot <= 0:
		return fmt.Errorf("%w: market price %g must be positive", ErrInvalidPricingInput, spot)
	case strike <= 0:
		return fmt.Errorf("%w: strike price %g must be positive", ErrInvalidPricingInput, strike)
	case in.Volatility <= 0:
		return fmt.Errorf("%w: volatility %g must be positive", ErrInvalidPricingInput, in.Volatility)
	case in.TimeToMaturity < 0:
		return fmt.Errorf("%w: time to maturity %g must not be negative", ErrInvalidPricingInput, in.TimeToMaturity)
	}
	return nil
}

// normCDF is the standard normal cumulative distribution function.
func normCDF(x float64) float64 { return distuv.UnitNormal.CDF(x) }

// TheoreticalValue prices the option contract with the Black-Scholes closed
// form, using the option's market price as the underlying spot.
//
// An expired option (TimeToMaturity == 0) is worth its intrinsic value per
// unit; the contract multiplier is not applied on that branch. Everywhere
// else the result is scaled by the multiplier. An option whose type is
// neither Call nor Put has a theoretical value of 0.
//
// Input validation applies on every branch: pricing an expired option still
// requires a positive volatility even though the intrinsic value does not
// depend on it.
func (o Option) TheoreticalValue(in PricingInputs) (float64, error) {
	S, K := o.marketPrice, o.strike
	if err := in.validate(S, K); err != nil {
		return 0, err
	}

	if in.TimeToMaturity == 0 {
		switch o.typ {
		case Call:
			return math.Max(0, S-K), nil
		case Put:
			return math.Max(0, K-S), nil
		}
		return 0, nil
	}

	sigma, T := in.Volatility, in.TimeToMaturity
	d1 := (math.Log(S/K) + (in.RiskFreeRate+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
	d2 := d1 - sigma*math.Sqrt(T)
	discount := math.Exp(-in.RiskFreeRate * T)

	var price float64
	switch o.typ {
	case Call:
		price = S*normCDF(d1) - K*discount*normCDF(d2)
	case Put:
		price = K*discount*normCDF(-d2) - S*normCDF(-d1)
	}
	return price * o.multiplier, nil
}
