package quantfolio

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoStatement = `{
    "statement": {
        "account": {
            "iban": "CH02-HEDGE",
            "balance": {"amount": 500000.0, "currency": "EUR"}
        },
        "positions": [
            {"class": "equity", "symbol": "SAN", "units": 1000, "quote": 3.80, "dividends": true},
            {"class": "future", "symbol": "FUT-DAX", "units": 1, "quote": 15600.0, "expiry": "2026-12-18", "size": 25.0},
            {"class": "bond", "symbol": "CH-GOV-10Y", "units": 5, "quote": 98.5},
            {"class": "option", "symbol": "CALL-TSLA", "units": 10, "quote": 25.0, "expiry": "2026-06-19", "size": 100.0, "strike": 250.0, "right": "Call"}
        ]
    }
}`

func TestImportStatement(t *testing.T) {
	account, skipped, err := ImportStatement(strings.NewReader(demoStatement))
	require.NoError(t, err)

	assert.Equal(t, "CH02-HEDGE", account.IBAN())
	assert.True(t, account.CashBalance().Equal(M(500000.00, "EUR")))
	assert.Equal(t, []string{"bond"}, skipped)

	p := account.Portfolio()
	require.NotNil(t, p)
	require.Equal(t, 3, p.Len())

	var positions []Position
	for pos := range p.Positions() {
		positions = append(positions, pos)
	}

	stock, ok := positions[0].(Stock)
	require.True(t, ok)
	assert.Equal(t, "SAN", stock.Ticker())
	assert.True(t, stock.PaysDividends())
	assert.Equal(t, 3800.0, stock.CurrentValue())

	future, ok := positions[1].(Derivative)
	require.True(t, ok)
	assert.Equal(t, "FUT-DAX", future.Ticker())
	assert.Equal(t, NewDate(2026, time.December, 18), future.Expiration())
	assert.Equal(t, 25.0, future.Multiplier())

	option, ok := positions[2].(Option)
	require.True(t, ok)
	assert.Equal(t, 250.0, option.Strike())
	assert.Equal(t, Call, option.Type())
	assert.Equal(t, 25000.0, option.CurrentValue())
}

func TestImportStatementWithoutPositions(t *testing.T) {
	in := `{"statement": {"account": {"iban": "UK04-EMPTY", "balance": {"amount": 0.0, "currency": "GBP"}}}}`
	account, skipped, err := ImportStatement(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "UK04-EMPTY", account.IBAN())
	assert.Empty(t, skipped)
	assert.Nil(t, account.Portfolio())
}

func TestImportStatementMissingIBAN(t *testing.T) {
	in := `{"statement": {"account": {"balance": {"amount": 1.0, "currency": "EUR"}}}}`
	_, _, err := ImportStatement(strings.NewReader(in))
	assert.Error(t, err)
}

func TestImportStatementBadRight(t *testing.T) {
	in := `{
	    "statement": {
	        "account": {"iban": "CH01", "balance": {"amount": 0.0, "currency": "EUR"}},
	        "positions": [
	            {"class": "option", "symbol": "X", "units": 1, "quote": 1.0, "expiry": "2026-06-19", "size": 100.0, "strike": 1.0, "right": "Both"}
	        ]
	    }
	}`
	_, _, err := ImportStatement(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown option type")
}

func TestImportStatementNotJSON(t *testing.T) {
	_, _, err := ImportStatement(strings.NewReader("not a statement"))
	assert.Error(t, err)
}
