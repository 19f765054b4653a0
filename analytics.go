package quantfolio

// This file contains the read-only queries derived from a book of accounts.
// Every query is a pure function: it never mutates the book and returns a
// fresh result on each call, in book order.

// NetWorthEntry is the net worth of a single account.
type NetWorthEntry struct {
	IBAN     string
	Currency string
	NetWorth float64
}

// NetWorths returns the net worth of every account in book order.
func NetWorths(b *Book) []NetWorthEntry {
	var entries []NetWorthEntry
	for account := range b.Accounts() {
		entries = append(entries, NetWorthEntry{
			IBAN:     account.IBAN(),
			Currency: account.CashBalance().Currency(),
			NetWorth: account.NetWorth(),
		})
	}
	return entries
}

// StockHolding is a stock position together with its owning account.
type StockHolding struct {
	IBAN  string
	Stock Stock
}

// DividendPayers returns every dividend-paying stock position across the
// book, with the owning account identifier.
func DividendPayers(b *Book) []StockHolding {
	var holdings []StockHolding
	for account := range b.Accounts() {
		if account.Portfolio() == nil {
			continue
		}
		for pos := range account.Portfolio().Positions() {
			if s, ok := pos.(Stock); ok && s.PaysDividends() {
				holdings = append(holdings, StockHolding{IBAN: account.IBAN(), Stock: s})
			}
		}
	}
	return holdings
}

// OptionHolding is an option position together with its owning account.
type OptionHolding struct {
	IBAN   string
	Option Option
}

// HighestStrikeCall returns the call option with the highest strike price
// across all accounts. On equal strikes the first one encountered in book
// order wins. The second return value is false when the book holds no call
// options.
func HighestStrikeCall(b *Book) (OptionHolding, bool) {
	var best OptionHolding
	var found bool
	for account := range b.Accounts() {
		if account.Portfolio() == nil {
			continue
		}
		for pos := range account.Portfolio().Positions() {
			o, ok := pos.(Option)
			if !ok || o.Type() != Call {
				continue
			}
			if !found || o.Strike() > best.Option.Strike() {
				best = OptionHolding{IBAN: account.IBAN(), Option: o}
				found = true
			}
		}
	}
	return best, found
}

// DerivativeHolding is an outright derivative position together with its
// owning account.
type DerivativeHolding struct {
	IBAN       string
	Derivative Derivative
}

// LeveragedOutrights returns the derivative positions that are not options
// and whose multiplier exceeds minMultiplier.
func LeveragedOutrights(b *Book, minMultiplier float64) []DerivativeHolding {
	var holdings []DerivativeHolding
	for account := range b.Accounts() {
		if account.Portfolio() == nil {
			continue
		}
		for pos := range account.Portfolio().Positions() {
			if d, ok := pos.(Derivative); ok && d.Multiplier() > minMultiplier {
				holdings = append(holdings, DerivativeHolding{IBAN: account.IBAN(), Derivative: d})
			}
		}
	}
	return holdings
}

// InactiveAccounts returns the accounts with no assigned portfolio.
func InactiveAccounts(b *Book) []*ClientAccount {
	var accounts []*ClientAccount
	for account := range b.Accounts() {
		if account.Portfolio() == nil {
			accounts = append(accounts, account)
		}
	}
	return accounts
}

// HedgingRatio returns the percentage of option positions among all
// derivative positions in the book, options counting as derivatives. The
// second return value is false when the book holds no derivative positions
// at all, in which case the ratio is undefined.
func HedgingRatio(b *Book) (float64, bool) {
	var derivatives, options int
	for account := range b.Accounts() {
		if account.Portfolio() == nil {
			continue
		}
		for pos := range account.Portfolio().Positions() {
			switch pos.Kind() {
			case KindDerivative:
				derivatives++
			case KindOption:
				derivatives++
				options++
			}
		}
	}
	if derivatives == 0 {
		return 0, false
	}
	return float64(options) / float64(derivatives) * 100, true
}

// AveragePriceEntry is the average per-unit market price of one portfolio.
type AveragePriceEntry struct {
	IBAN    string
	Average float64
}

// AveragePrices returns the average market price of every assigned
// portfolio, in book order.
func AveragePrices(b *Book) []AveragePriceEntry {
	var entries []AveragePriceEntry
	for account := range b.Accounts() {
		if account.Portfolio() == nil {
			continue
		}
		entries = append(entries, AveragePriceEntry{
			IBAN:    account.IBAN(),
			Average: account.Portfolio().AverageMarketPrice(),
		})
	}
	return entries
}

// StraddleAccounts returns the accounts whose portfolio holds a straddle
// (at least one call and one put option).
func StraddleAccounts(b *Book) []*ClientAccount {
	var accounts []*ClientAccount
	for account := range b.Accounts() {
		if account.Portfolio() != nil && account.Portfolio().HasStraddle() {
			accounts = append(accounts, account)
		}
	}
	return accounts
}

// OptionValuation compares the market value of an option position against
// its Black-Scholes theoretical value.
type OptionValuation struct {
	IBAN        string
	Option      Option
	MarketValue float64
	Theoretical float64
}

// OptionValuations prices every option in the book with the given inputs.
// It fails on the first option whose fields are outside the pricing domain.
func OptionValuations(b *Book, in PricingInputs) ([]OptionValuation, error) {
	var valuations []OptionValuation
	for account := range b.Accounts() {
		if account.Portfolio() == nil {
			continue
		}
		for pos := range account.Portfolio().Positions() {
			o, ok := pos.(Option)
			if !ok {
				continue
			}
			theoretical, err := o.TheoreticalValue(in)
			if err != nil {
				return nil, err
			}
			valuations = append(valuations, OptionValuation{
				IBAN:        account.IBAN(),
				Option:      o,
				MarketValue: o.CurrentValue(),
				Theoretical: theoretical,
			})
		}
	}
	return valuations, nil
}

// leveragedOutrightThreshold is the multiplier above which an outright
// derivative is reported as leveraged.
const leveragedOutrightThreshold = 10

// ReportOptions configures the optional sections of a Report.
type ReportOptions struct {
	// Pricing, when set, adds a Black-Scholes valuation of every option
	// position to the report.
	Pricing *PricingInputs
}

// Report bundles all book-level analytics for rendering.
type Report struct {
	NetWorths          []NetWorthEntry
	DividendPayers     []StockHolding
	DeepOTMCall        *OptionHolding // nil when the book holds no call options
	LeveragedOutrights []DerivativeHolding
	Inactive           []string // IBANs of accounts without a portfolio
	HedgingRatio       float64
	HasHedgingRatio    bool
	AveragePrices      []AveragePriceEntry
	Straddles          []string // IBANs of accounts holding a straddle
	Valuations         []OptionValuation
}

// NewReport runs every analytic query over the book and bundles the results.
func NewReport(b *Book, opts ReportOptions) (*Report, error) {
	r := &Report{
		NetWorths:          NetWorths(b),
		DividendPayers:     DividendPayers(b),
		LeveragedOutrights: LeveragedOutrights(b, leveragedOutrightThreshold),
		AveragePrices:      AveragePrices(b),
	}
	if call, ok := HighestStrikeCall(b); ok {
		r.DeepOTMCall = &call
	}
	for _, account := range InactiveAccounts(b) {
		r.Inactive = append(r.Inactive, account.IBAN())
	}
	r.HedgingRatio, r.HasHedgingRatio = HedgingRatio(b)
	for _, account := range StraddleAccounts(b) {
		r.Straddles = append(r.Straddles, account.IBAN())
	}
	if opts.Pricing != nil {
		valuations, err := OptionValuations(b, *opts.Pricing)
		if err != nil {
			return nil, err
		}
		r.Valuations = valuations
	}
	return r, nil
}
