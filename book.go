package quantfolio

import (
	"fmt"
	"iter"
	"slices"
)

// Book is the ordered collection of client accounts under management. The
// order is the order in which accounts were added, and is preserved in every
// report.
type Book struct {
	accounts []*ClientAccount
	index    map[string]*ClientAccount
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{index: make(map[string]*ClientAccount)}
}

// Add appends accounts to the book. Account IBANs must be unique within a
// book.
func (b *Book) Add(accounts ...*ClientAccount) error {
	for _, a := range accounts {
		if _, exists := b.index[a.IBAN()]; exists {
			return fmt.Errorf("account %s already exists in the book", a.IBAN())
		}
		b.accounts = append(b.accounts, a)
		b.index[a.IBAN()] = a
	}
	return nil
}

// Len returns the number of accounts in the book.
func (b *Book) Len() int { return len(b.accounts) }

// Account returns the account with the given IBAN, or nil if the book holds
// no such account.
func (b *Book) Account(iban string) *ClientAccount { return b.index[iban] }

// Accounts iterates over all accounts in book order.
func (b *Book) Accounts() iter.Seq[*ClientAccount] {
	return slices.Values(b.accounts)
}
