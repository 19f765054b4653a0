package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tbillard/quantfolio"
	"github.com/tbillard/quantfolio/renderer"
)

type reportCmd struct {
	rate       float64
	volatility float64
	maturity   float64
	noPricing  bool
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "display net worth, risk and opportunity analytics for the whole book"
}
func (*reportCmd) Usage() string {
	return `qfm report [-r <rate>] [-sigma <volatility>] [-t <years>] [-no-pricing]

  Runs every analytic query over the book (net worth per account, dividend
  opportunities, deep OTM calls, leveraged outrights, inactive accounts,
  hedging ratio, average prices, straddle alerts) and renders the result as
  a markdown report. Unless -no-pricing is set, every option position is
  also valued with the Black-Scholes model.
`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.rate, "r", envFloatOr("QFM_RATE", 0.04), "Annual risk-free rate, as a ratio.")
	f.Float64Var(&p.volatility, "sigma", envFloatOr("QFM_VOLATILITY", 0.25), "Annualized volatility, as a ratio.")
	f.Float64Var(&p.maturity, "t", 0.5, "Time to maturity in years for option pricing.")
	f.BoolVar(&p.noPricing, "no-pricing", false, "Skip the Black-Scholes valuation section.")
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBookFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	opts := quantfolio.ReportOptions{}
	if !p.noPricing {
		opts.Pricing = &quantfolio.PricingInputs{
			RiskFreeRate:   p.rate,
			Volatility:     p.volatility,
			TimeToMaturity: p.maturity,
		}
	}

	report, err := quantfolio.NewReport(book, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}

	renderer.Render(os.Stdout, report)
	return subcommands.ExitSuccess
}
