package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tbillard/quantfolio"
)

type priceCmd struct {
	typ        string
	spot       float64
	strike     float64
	multiplier float64
	rate       float64
	volatility float64
	maturity   float64
}

func (*priceCmd) Name() string { return "price" }
func (*priceCmd) Synopsis() string {
	return "compute the Black-Scholes theoretical value of a single option"
}
func (*priceCmd) Usage() string {
	return `qfm price -type <call|put> -S <spot> -K <strike> [-m <multiplier>] [-r <rate>] [-sigma <volatility>] [-t <years>]

  Prices one option contract with the Black-Scholes closed form, without
  touching the book.

Usage Examples:
# Price a call on a 25.00 underlying struck at 250, 100x contract, 6 months out.
$ qfm price -type call -S 25 -K 250 -m 100 -t 0.5

`
}

func (p *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "type", "call", "Option type: call or put.")
	f.Float64Var(&p.spot, "S", 0, "Spot (market) price of the underlying.")
	f.Float64Var(&p.strike, "K", 0, "Strike price.")
	f.Float64Var(&p.multiplier, "m", 1, "Contract multiplier.")
	f.Float64Var(&p.rate, "r", envFloatOr("QFM_RATE", 0.04), "Annual risk-free rate, as a ratio.")
	f.Float64Var(&p.volatility, "sigma", envFloatOr("QFM_VOLATILITY", 0.25), "Annualized volatility, as a ratio.")
	f.Float64Var(&p.maturity, "t", 0.5, "Time to maturity in years.")
}

func (p *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := quantfolio.ParseOptionType(p.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	option := quantfolio.NewOption("OPTION", 1, p.spot, quantfolio.Today(), p.multiplier, p.strike, typ)
	value, err := option.TheoreticalValue(quantfolio.PricingInputs{
		RiskFreeRate:   p.rate,
		Volatility:     p.volatility,
		TimeToMaturity: p.maturity,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%.4f\n", value)
	return subcommands.ExitSuccess
}
