package quantfolio

import (
	"testing"
	"time"
)

// setupDemoBook creates a book with the four canonical demo accounts used
// across tests: a stock investor, a hedged account running a straddle, a
// deep OTM speculator, and an inactive account.
func setupDemoBook(t *testing.T) *Book {
	t.Helper()

	stocks := NewPortfolio()
	stocks.Add(
		NewStock("SAN", 1000, 3.80, true),
		NewStock("AMZN", 10, 130.00, false),
	)
	c1 := NewClientAccount("CH01-STOCKS", M(10000.00, "EUR"))
	if err := c1.AssignPortfolio(stocks); err != nil {
		t.Fatalf("AssignPortfolio() failed: %v", err)
	}

	hedge := NewPortfolio()
	hedge.Add(
		NewDerivative("FUT-DAX", 1, 15600.00, NewDate(2026, time.December, 18), 25.0),
		NewOption("CALL-TSLA", 10, 25.00, NewDate(2026, time.June, 19), 100.0, 250.0, Call),
		NewOption("PUT-TSLA", 10, 18.00, NewDate(2026, time.June, 19), 100.0, 200.0, Put),
	)
	c2 := NewClientAccount("CH02-HEDGE", M(500000.00, "EUR"))
	if err := c2.AssignPortfolio(hedge); err != nil {
		t.Fatalf("AssignPortfolio() failed: %v", err)
	}

	speculation := NewPortfolio()
	speculation.Add(
		NewOption("CALL-AMZN", 20, 5.00, NewDate(2026, time.March, 20), 100.0, 3000.0, Call),
	)
	c3 := NewClientAccount("US03-HIGH-GAMMA", M(20000.00, "EUR"))
	if err := c3.AssignPortfolio(speculation); err != nil {
		t.Fatalf("AssignPortfolio() failed: %v", err)
	}

	c4 := NewClientAccount("UK04-EMPTY", M(0.0, "EUR"))

	book := NewBook()
	if err := book.Add(c1, c2, c3, c4); err != nil {
		t.Fatalf("Book.Add() failed: %v", err)
	}
	return book
}
