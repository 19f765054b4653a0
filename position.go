package quantfolio

import (
	"fmt"
	"strings"
)

// Kind is a typed string identifying the concrete variant of a Position.
type Kind string

// Position variants.
const (
	KindStock      Kind = "stock"
	KindDerivative Kind = "derivative"
	KindOption     Kind = "option"
)

// OptionType identifies the exercise side of an option contract.
type OptionType string

const (
	Call OptionType = "Call"
	Put  OptionType = "Put"
)

// ParseOptionType parses an option type from a string, case-insensitively.
func ParseOptionType(str string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	default:
		return "", fmt.Errorf("unknown option type %q (want call or put)", str)
	}
}

// Position defines the common interface for all holdings in a portfolio.
// The set of variants is closed: Stock, Derivative, and Option.
//
// CurrentValue is a pure function of the position's own fields.
type Position interface {
	Ticker() string       // Ticker returns the symbol of the instrument (e.g. "AAPL").
	Quantity() float64    // Quantity returns the number of units held, possibly fractional or negative.
	MarketPrice() float64 // MarketPrice returns the current per-unit market price.
	Kind() Kind           // Kind returns the variant tag of the position.
	CurrentValue() float64
}

// position holds the fields common to every variant.
type position struct {
	ticker      string
	quantity    float64
	marketPrice float64
}

func (p position) Ticker() string       { return p.ticker }
func (p position) Quantity() float64    { return p.quantity }
func (p position) MarketPrice() float64 { return p.marketPrice }

func (p position) String() string {
	return fmt.Sprintf("%s (%v units @ %.2f)", p.ticker, p.quantity, p.marketPrice)
}

// contract is a component for leveraged instruments (derivatives, options).
type contract struct {
	position
	expiration Date
	multiplier float64
}

// Expiration returns the maturity date of the contract.
func (c contract) Expiration() Date { return c.expiration }

// Multiplier returns the contract size multiplier (leverage factor).
func (c contract) Multiplier() float64 { return c.multiplier }

// CurrentValue is the leveraged valuation: quantity * market price * multiplier.
func (c contract) CurrentValue() float64 {
	return c.quantity * c.marketPrice * c.multiplier
}

// Stock represents an equity instrument.
type Stock struct {
	position
	paysDividends bool
}

// NewStock creates a stock position.
func NewStock(ticker string, quantity, marketPrice float64, paysDividends bool) Stock {
	return Stock{
		position:      position{ticker: ticker, quantity: quantity, marketPrice: marketPrice},
		paysDividends: paysDividends,
	}
}

func (s Stock) Kind() Kind { return KindStock }

// PaysDividends reports whether the stock distributes dividends.
func (s Stock) PaysDividends() bool { return s.paysDividends }

// CurrentValue is the standard valuation: quantity * market price.
func (s Stock) CurrentValue() float64 {
	return s.quantity * s.marketPrice
}

// Derivative represents an outright derivative contract (future, forward,
// swap). Options are a separate variant carrying the same contract fields.
type Derivative struct {
	contract
}

// NewDerivative creates an outright derivative position.
func NewDerivative(ticker string, quantity, marketPrice float64, expiration Date, multiplier float64) Derivative {
	return Derivative{
		contract: contract{
			position:   position{ticker: ticker, quantity: quantity, marketPrice: marketPrice},
			expiration: expiration,
			multiplier: multiplier,
		},
	}
}

func (d Derivative) Kind() Kind { return KindDerivative }

// Option represents an option contract. It carries the contract fields of a
// derivative plus a strike price and an exercise side.
type Option struct {
	contract
	strike float64
	typ    OptionType
}

// NewOption creates an option position.
func NewOption(ticker string, quantity, marketPrice float64, expiration Date, multiplier, strike float64, typ OptionType) Option {
	return Option{
		contract: contract{
			position:   position{ticker: ticker, quantity: quantity, marketPrice: marketPrice},
			expiration: expiration,
			multiplier: multiplier,
		},
		strike: strike,
		typ:    typ,
	}
}

func (o Option) Kind() Kind { return KindOption }

// Strike returns the price at which the option can be exercised.
func (o Option) Strike() float64 { return o.strike }

// Type returns the exercise side of the option.
func (o Option) Type() OptionType { return o.typ }

// check that every variant satisfies the Position interface.
var (
	_ Position = Stock{}
	_ Position = Derivative{}
	_ Position = Option{}
)
