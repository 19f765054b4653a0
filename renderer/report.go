// Package renderer renders book analytics as markdown reports.
package renderer

import (
	"fmt"
	"io"

	"github.com/tbillard/quantfolio"
)

// Render writes the full book report to w as markdown. It is a pure
// function of the report value.
func Render(w io.Writer, r *quantfolio.Report) {
	fmt.Fprintf(w, "# Client Book Report\n")

	renderNetWorths(w, r)
	renderDividendPayers(w, r)
	renderDeepOTMCall(w, r)
	renderLeveragedOutrights(w, r)
	renderInactive(w, r)
	renderHedgingRatio(w, r)
	renderAveragePrices(w, r)
	renderStraddles(w, r)
	renderValuations(w, r)
}

func renderNetWorths(w io.Writer, r *quantfolio.Report) {
	fmt.Fprintf(w, "\n## Net Worth\n\n")
	fmt.Fprintln(w, "| Account | Net Worth |")
	fmt.Fprintln(w, "|:---|---:|")
	for _, entry := range r.NetWorths {
		fmt.Fprintf(w, "| %s | %s |\n", entry.IBAN, quantfolio.M(entry.NetWorth, entry.Currency).SignedString())
	}
}

func renderDividendPayers(w io.Writer, r *quantfolio.Report) {
	ConditionalBlock(w, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Dividend Opportunities\n\n")
		for _, holding := range r.DividendPayers {
			fmt.Fprintf(w, "- %s pays dividends (account %s)\n", holding.Stock.Ticker(), holding.IBAN)
		}
		return len(r.DividendPayers) > 0
	})
}

func renderDeepOTMCall(w io.Writer, r *quantfolio.Report) {
	fmt.Fprintf(w, "\n## Deep OTM Calls\n\n")
	if r.DeepOTMCall == nil {
		fmt.Fprintln(w, "No call options found.")
		return
	}
	fmt.Fprintf(w, "Highest strike found: %s @ %g (account %s)\n",
		r.DeepOTMCall.Option.Ticker(), r.DeepOTMCall.Option.Strike(), r.DeepOTMCall.IBAN)
}

func renderLeveragedOutrights(w io.Writer, r *quantfolio.Report) {
	ConditionalBlock(w, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Leveraged Outright Derivatives\n\n")
		for _, holding := range r.LeveragedOutrights {
			fmt.Fprintf(w, "- %s (multiplier %g, account %s)\n",
				holding.Derivative.Ticker(), holding.Derivative.Multiplier(), holding.IBAN)
		}
		return len(r.LeveragedOutrights) > 0
	})
}

func renderInactive(w io.Writer, r *quantfolio.Report) {
	ConditionalBlock(w, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Inactive Accounts\n\n")
		for _, iban := range r.Inactive {
			fmt.Fprintf(w, "- %s\n", iban)
		}
		return len(r.Inactive) > 0
	})
}

func renderHedgingRatio(w io.Writer, r *quantfolio.Report) {
	if !r.HasHedgingRatio {
		return
	}
	fmt.Fprintf(w, "\n## Hedging Ratio\n\n")
	fmt.Fprintf(w, "Options represent %.2f%% of all derivative positions.\n", r.HedgingRatio)
}

func renderAveragePrices(w io.Writer, r *quantfolio.Report) {
	ConditionalBlock(w, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Average Market Price per Portfolio\n\n")
		fmt.Fprintln(w, "| Account | Average Price |")
		fmt.Fprintln(w, "|:---|---:|")
		for _, entry := range r.AveragePrices {
			fmt.Fprintf(w, "| %s | %.2f |\n", entry.IBAN, entry.Average)
		}
		return len(r.AveragePrices) > 0
	})
}

func renderStraddles(w io.Writer, r *quantfolio.Report) {
	ConditionalBlock(w, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Straddle Alerts\n\n")
		for _, iban := range r.Straddles {
			fmt.Fprintf(w, "- %s is executing a straddle (call + put)\n", iban)
		}
		return len(r.Straddles) > 0
	})
}

func renderValuations(w io.Writer, r *quantfolio.Report) {
	ConditionalBlock(w, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Black-Scholes Valuations\n\n")
		fmt.Fprintln(w, "| Account | Option | Market Value | Model Value |")
		fmt.Fprintln(w, "|:---|:---|---:|---:|")
		for _, v := range r.Valuations {
			fmt.Fprintf(w, "| %s | %s | %.2f | %.2f |\n",
				v.IBAN, v.Option.Ticker(), v.MarketValue, v.Theoretical)
		}
		return len(r.Valuations) > 0
	})
}
