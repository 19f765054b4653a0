package quantfolio

import "fmt"

// ClientAccount represents a client account holding liquid cash and at most
// one investment portfolio. An account without a portfolio is inactive.
type ClientAccount struct {
	iban      string
	cash      Money
	portfolio *Portfolio
}

// NewClientAccount creates an account identified by its IBAN with an initial
// cash balance.
func NewClientAccount(iban string, cash Money) *ClientAccount {
	return &ClientAccount{iban: iban, cash: cash}
}

// IBAN returns the account identifier.
func (a *ClientAccount) IBAN() string { return a.iban }

// CashBalance returns the liquid capital available on the account.
func (a *ClientAccount) CashBalance() Money { return a.cash }

// Portfolio returns the portfolio assigned to the account, or nil when the
// account is inactive.
func (a *ClientAccount) Portfolio() *Portfolio { return a.portfolio }

// AssignPortfolio links a portfolio to the account. The assignment happens
// once in the account's lifetime; reassigning is an error.
func (a *ClientAccount) AssignPortfolio(p *Portfolio) error {
	if a.portfolio != nil {
		return fmt.Errorf("account %s already has a portfolio assigned", a.iban)
	}
	a.portfolio = p
	return nil
}

// NetWorth returns the total assets of the account: cash plus the market
// value of the portfolio, if one is assigned.
func (a *ClientAccount) NetWorth() float64 {
	total := a.cash.AsFloat()
	if a.portfolio != nil {
		total += a.portfolio.TotalValuation()
	}
	return total
}
