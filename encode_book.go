package quantfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The book is persisted as JSONL: one record per line, identified by a
// "kind" property. An account record precedes the position records that
// belong to it.

// recordKind identifies a line of the book file. Position records reuse the
// position Kind tags; accounts have their own.
const kindAccount = "account"

// cashRecord is a specialized struct to read a cash amount in two fields.
type cashRecord struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (c cashRecord) Money() Money {
	return M(c.Amount, c.Currency)
}

// positionRecord has all possible fields of a persisted position.
type positionRecord struct {
	Account    string  `json:"account"`
	Ticker     string  `json:"ticker"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
	Dividends  bool    `json:"dividends"`
	Expiration Date    `json:"expiration"`
	Multiplier float64 `json:"multiplier"`
	Strike     float64 `json:"strike"`
	Type       string  `json:"type"`
}

// EncodeBook writes the book to w in its canonical JSONL form: each account
// record followed by the account's position records, in book order.
func EncodeBook(w io.Writer, b *Book) error {
	for account := range b.Accounts() {
		if err := encodeAccount(w, account); err != nil {
			return err
		}
		if account.Portfolio() == nil {
			continue
		}
		for pos := range account.Portfolio().Positions() {
			if err := encodePosition(w, account.IBAN(), pos); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeAccount(w io.Writer, account *ClientAccount) error {
	var obj jsonObjectWriter
	obj.Append("kind", kindAccount)
	obj.Append("iban", account.IBAN())
	obj.Append("cash", account.CashBalance())
	if account.Portfolio() != nil {
		obj.Append("portfolio", true)
	}
	return writeLine(w, &obj)
}

func encodePosition(w io.Writer, iban string, pos Position) error {
	var obj jsonObjectWriter
	obj.Append("kind", pos.Kind())
	obj.Append("account", iban)
	obj.Append("ticker", pos.Ticker())
	obj.Append("quantity", pos.Quantity())
	obj.Append("price", pos.MarketPrice())

	switch p := pos.(type) {
	case Stock:
		obj.Optional("dividends", p.PaysDividends())
	case Derivative:
		obj.Append("expiration", p.Expiration())
		obj.Append("multiplier", p.Multiplier())
	case Option:
		obj.Append("expiration", p.Expiration())
		obj.Append("multiplier", p.Multiplier())
		obj.Append("strike", p.Strike())
		obj.Append("type", p.Type())
	default:
		return fmt.Errorf("unsupported position kind %q for ticker %s", pos.Kind(), pos.Ticker())
	}
	return writeLine(w, &obj)
}

func writeLine(w io.Writer, obj *jsonObjectWriter) error {
	line, err := obj.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(line); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// DecodeBook reads a stream of JSONL data from r, decodes each line into the
// appropriate record, and returns the reconstructed book.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		if identifier.Kind == kindAccount {
			var temp struct {
				IBAN      string     `json:"iban"`
				Cash      cashRecord `json:"cash"`
				Portfolio bool       `json:"portfolio"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("could not parse account record %q: %w", string(lineBytes), err)
			}
			account := NewClientAccount(temp.IBAN, temp.Cash.Money())
			if temp.Portfolio {
				if err := account.AssignPortfolio(NewPortfolio()); err != nil {
					return nil, err
				}
			}
			if err := book.Add(account); err != nil {
				return nil, err
			}
			continue
		}

		var record positionRecord
		if err := json.Unmarshal(lineBytes, &record); err != nil {
			return nil, fmt.Errorf("could not parse position record %q: %w", string(lineBytes), err)
		}

		pos, err := record.position(Kind(identifier.Kind))
		if err != nil {
			return nil, err
		}

		account := book.Account(record.Account)
		if account == nil {
			return nil, fmt.Errorf("position %s references unknown account %q", record.Ticker, record.Account)
		}
		if account.Portfolio() == nil {
			// A position implies an assigned portfolio even when the
			// account record did not declare one.
			if err := account.AssignPortfolio(NewPortfolio()); err != nil {
				return nil, err
			}
		}
		account.Portfolio().Add(pos)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return book, nil
}

// position builds the concrete variant for the record.
func (r positionRecord) position(kind Kind) (Position, error) {
	switch kind {
	case KindStock:
		return NewStock(r.Ticker, r.Quantity, r.Price, r.Dividends), nil
	case KindDerivative:
		return NewDerivative(r.Ticker, r.Quantity, r.Price, r.Expiration, r.Multiplier), nil
	case KindOption:
		typ, err := ParseOptionType(r.Type)
		if err != nil {
			return nil, fmt.Errorf("position %s: %w", r.Ticker, err)
		}
		return NewOption(r.Ticker, r.Quantity, r.Price, r.Expiration, r.Multiplier, r.Strike, typ), nil
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
}
