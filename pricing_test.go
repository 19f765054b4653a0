package quantfolio

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testExpiry = NewDate(2026, time.June, 19)

func TestTheoreticalValueReference(t *testing.T) {
	// Classic textbook case: S=100, K=100, r=5%, sigma=20%, T=1y.
	in := PricingInputs{RiskFreeRate: 0.05, Volatility: 0.20, TimeToMaturity: 1}

	call := NewOption("CALL", 1, 100, testExpiry, 1, 100, Call)
	got, err := call.TheoreticalValue(in)
	if err != nil {
		t.Fatalf("TheoreticalValue() failed: %v", err)
	}
	if want := 10.450584; math.Abs(got-want) > 1e-4 {
		t.Errorf("call TheoreticalValue() = %v, want %v", got, want)
	}

	put := NewOption("PUT", 1, 100, testExpiry, 1, 100, Put)
	got, err = put.TheoreticalValue(in)
	if err != nil {
		t.Fatalf("TheoreticalValue() failed: %v", err)
	}
	if want := 5.573526; math.Abs(got-want) > 1e-4 {
		t.Errorf("put TheoreticalValue() = %v, want %v", got, want)
	}
}

func TestTheoreticalValueExpired(t *testing.T) {
	in := PricingInputs{RiskFreeRate: 0.04, Volatility: 0.25, TimeToMaturity: 0}
	tests := []struct {
		name   string
		spot   float64
		strike float64
		typ    OptionType
		want   float64
	}{
		{name: "call in the money", spot: 120, strike: 100, typ: Call, want: 20},
		{name: "call out of the money", spot: 80, strike: 100, typ: Call, want: 0},
		{name: "put in the money", spot: 80, strike: 100, typ: Put, want: 20},
		{name: "put out of the money", spot: 120, strike: 100, typ: Put, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// The multiplier is deliberately large: at expiry the value is
			// intrinsic per unit, the multiplier must not be applied.
			o := NewOption("OPT", 10, tc.spot, testExpiry, 100, tc.strike, tc.typ)
			got, err := o.TheoreticalValue(in)
			if err != nil {
				t.Fatalf("TheoreticalValue() failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("TheoreticalValue() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTheoreticalValuePutCallParity(t *testing.T) {
	// C - P == S - K*exp(-rT) must hold for any parameter set, with
	// multiplier 1.
	tests := []struct {
		name string
		spot float64
		K    float64
		in   PricingInputs
	}{
		{name: "at the money", spot: 100, K: 100, in: PricingInputs{0.05, 0.2, 1}},
		{name: "deep out of the money", spot: 25, K: 250, in: PricingInputs{0.04, 0.25, 0.5}},
		{name: "deep in the money", spot: 250, K: 25, in: PricingInputs{0.04, 0.25, 0.5}},
		{name: "high volatility", spot: 50, K: 60, in: PricingInputs{0.01, 0.9, 2}},
		{name: "near expiry", spot: 100, K: 95, in: PricingInputs{0.03, 0.15, 0.01}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			call := NewOption("C", 1, tc.spot, testExpiry, 1, tc.K, Call)
			put := NewOption("P", 1, tc.spot, testExpiry, 1, tc.K, Put)

			c, err := call.TheoreticalValue(tc.in)
			if err != nil {
				t.Fatalf("call TheoreticalValue() failed: %v", err)
			}
			p, err := put.TheoreticalValue(tc.in)
			if err != nil {
				t.Fatalf("put TheoreticalValue() failed: %v", err)
			}

			want := tc.spot - tc.K*math.Exp(-tc.in.RiskFreeRate*tc.in.TimeToMaturity)
			if got := c - p; math.Abs(got-want) > 1e-6 {
				t.Errorf("parity C-P = %v, want %v", got, want)
			}
		})
	}
}

func TestTheoreticalValueMultiplierScaling(t *testing.T) {
	in := PricingInputs{RiskFreeRate: 0.05, Volatility: 0.2, TimeToMaturity: 1}
	unit := NewOption("OPT", 1, 100, testExpiry, 1, 100, Call)
	contract := NewOption("OPT", 1, 100, testExpiry, 100, 100, Call)

	u, err := unit.TheoreticalValue(in)
	if err != nil {
		t.Fatalf("TheoreticalValue() failed: %v", err)
	}
	c, err := contract.TheoreticalValue(in)
	if err != nil {
		t.Fatalf("TheoreticalValue() failed: %v", err)
	}
	if math.Abs(c-100*u) > 1e-9 {
		t.Errorf("multiplier scaling: got %v, want %v", c, 100*u)
	}
}

func TestTheoreticalValueInvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		spot float64
		K    float64
		in   PricingInputs
	}{
		{name: "zero spot", spot: 0, K: 100, in: PricingInputs{0.05, 0.2, 1}},
		{name: "negative spot", spot: -10, K: 100, in: PricingInputs{0.05, 0.2, 1}},
		{name: "zero strike", spot: 100, K: 0, in: PricingInputs{0.05, 0.2, 1}},
		{name: "zero volatility", spot: 100, K: 100, in: PricingInputs{0.05, 0, 1}},
		{name: "negative volatility", spot: 100, K: 100, in: PricingInputs{0.05, -0.2, 1}},
		{name: "negative maturity", spot: 100, K: 100, in: PricingInputs{0.05, 0.2, -1}},
		{name: "zero volatility at expiry", spot: 100, K: 100, in: PricingInputs{0.05, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := NewOption("OPT", 1, tc.spot, testExpiry, 1, tc.K, Call)
			v, err := o.TheoreticalValue(tc.in)
			if !errors.Is(err, ErrInvalidPricingInput) {
				t.Fatalf("TheoreticalValue() error = %v, want ErrInvalidPricingInput", err)
			}
			if v != 0 {
				t.Errorf("TheoreticalValue() = %v on error, want 0", v)
			}
		})
	}
}

func TestTheoreticalValueUnknownType(t *testing.T) {
	in := PricingInputs{RiskFreeRate: 0.05, Volatility: 0.2, TimeToMaturity: 1}
	o := NewOption("OPT", 1, 100, testExpiry, 100, 100, OptionType("Straddle"))
	got, err := o.TheoreticalValue(in)
	if err != nil {
		t.Fatalf("TheoreticalValue() failed: %v", err)
	}
	if got != 0 {
		t.Errorf("TheoreticalValue() = %v for unknown type, want 0", got)
	}

	// Also 0 on the expiry branch.
	in.TimeToMaturity = 0
	got, err = o.TheoreticalValue(in)
	if err != nil {
		t.Fatalf("TheoreticalValue() failed: %v", err)
	}
	if got != 0 {
		t.Errorf("expired TheoreticalValue() = %v for unknown type, want 0", got)
	}
}

// normCDF must agree with the erf identity N(x) = (1+erf(x/sqrt(2)))/2 well
// below the 1e-7 accuracy the pricing formula needs.
func TestNormCDF(t *testing.T) {
	for x := -6.0; x <= 6.0; x += 0.25 {
		want := 0.5 * (1 + math.Erf(x/math.Sqrt2))
		if got := normCDF(x); math.Abs(got-want) > 1e-12 {
			t.Errorf("normCDF(%v) = %v, want %v", x, got, want)
		}
	}
}
