package quantfolio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

/*
	Broker statements are a single JSON document of the form:

	{
	    "statement": {
	        "account": {
	            "iban": "CH02-HEDGE",
	            "balance": {"amount": 500000.0, "currency": "EUR"}
	        },
	        "positions": [
	            {"class": "equity", "symbol": "SAN", "units": 1000, "quote": 3.80, "dividends": true},
	            {"class": "future", "symbol": "FUT-DAX", "units": 1, "quote": 15600.0, "expiry": "2026-12-18", "size": 25.0},
	            {"class": "option", "symbol": "CALL-TSLA", "units": 10, "quote": 25.0, "expiry": "2026-06-19", "size": 100.0, "strike": 250.0, "right": "Call"}
	        ]
	    }
	}
*/

// ImportStatement decodes a broker statement from r into a client account
// with its positions. Position classes the importer does not understand are
// skipped and returned in the second value so the caller can report them.
func ImportStatement(r io.Reader) (*ClientAccount, []string, error) {
	var jobj any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jobj); err != nil {
		return nil, nil, fmt.Errorf("cannot parse broker statement: %w", err)
	}

	iban, err := jstring(jobj, "$.statement.account.iban")
	if err != nil {
		return nil, nil, err
	}
	amount, err := jfloat(jobj, "$.statement.account.balance.amount")
	if err != nil {
		return nil, nil, err
	}
	currency, err := jstring(jobj, "$.statement.account.balance.currency")
	if err != nil {
		return nil, nil, err
	}

	account := NewClientAccount(iban, M(amount, currency))

	jpositions, err := jsonpath.Get("$.statement.positions", jobj)
	if err != nil {
		// A statement without a positions list describes an inactive account.
		return account, nil, nil
	}
	jlist, ok := jpositions.([]any)
	if !ok {
		return nil, nil, fmt.Errorf("broker statement positions is not a list")
	}

	portfolio := NewPortfolio()
	var skipped []string
	for i, jpos := range jlist {
		pos, class, err := importPosition(jpos)
		if err != nil {
			return nil, nil, fmt.Errorf("position %d of statement for %s: %w", i, iban, err)
		}
		if pos == nil {
			skipped = append(skipped, class)
			continue
		}
		portfolio.Add(pos)
	}
	if err := account.AssignPortfolio(portfolio); err != nil {
		return nil, nil, err
	}
	return account, skipped, nil
}

// importPosition maps one statement entry onto a position variant. It
// returns a nil position (and the class name) for classes it does not know.
func importPosition(jpos any) (Position, string, error) {
	class, err := jstring(jpos, "$.class")
	if err != nil {
		return nil, "", err
	}
	symbol, err := jstring(jpos, "$.symbol")
	if err != nil {
		return nil, class, err
	}
	units, err := jfloat(jpos, "$.units")
	if err != nil {
		return nil, class, err
	}
	quote, err := jfloat(jpos, "$.quote")
	if err != nil {
		return nil, class, err
	}

	switch class {
	case "equity":
		dividends, _ := jbool(jpos, "$.dividends")
		return NewStock(symbol, units, quote, dividends), class, nil

	case "future", "forward", "swap":
		expiry, size, err := importContract(jpos)
		if err != nil {
			return nil, class, err
		}
		return NewDerivative(symbol, units, quote, expiry, size), class, nil

	case "option":
		expiry, size, err := importContract(jpos)
		if err != nil {
			return nil, class, err
		}
		strike, err := jfloat(jpos, "$.strike")
		if err != nil {
			return nil, class, err
		}
		right, err := jstring(jpos, "$.right")
		if err != nil {
			return nil, class, err
		}
		typ, err := ParseOptionType(right)
		if err != nil {
			return nil, class, err
		}
		return NewOption(symbol, units, quote, expiry, size, strike, typ), class, nil
	}
	return nil, class, nil
}

func importContract(jpos any) (Date, float64, error) {
	expiryStr, err := jstring(jpos, "$.expiry")
	if err != nil {
		return Date{}, 0, err
	}
	expiry, err := ParseDate(expiryStr)
	if err != nil {
		return Date{}, 0, err
	}
	size, err := jfloat(jpos, "$.size")
	if err != nil {
		return Date{}, 0, err
	}
	return expiry, size, nil
}

// jsonpath helpers. jsonpath is never clear about whether it returns a list
// of one answer or a single answer, so scalars unwrap a single-element list.

func jget(jobj any, path string) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func jstring(jobj any, path string) (string, error) {
	jval, err := jget(jobj, path)
	if err != nil {
		return "", err
	}
	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing %q: not a string: %v", path, jval)
	}
	return val, nil
}

func jfloat(jobj any, path string) (float64, error) {
	jval, err := jget(jobj, path)
	if err != nil {
		return 0, err
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: not a number: %v", path, jval)
	}
	return val, nil
}

func jbool(jobj any, path string) (bool, error) {
	jval, err := jget(jobj, path)
	if err != nil {
		return false, err
	}
	val, ok := jval.(bool)
	if !ok {
		return false, fmt.Errorf("error parsing %q: not a boolean: %v", path, jval)
	}
	return val, nil
}
