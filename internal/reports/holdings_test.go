package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldings(t *testing.T) {
	f := newFixture(t)
	f.addCash(1, "2020-01-01", 1500)
	f.addCash(1, "2020-02-01", -300)
	f.addTrade(2, "2020-03-01", -500, 10, 13)
	f.addQuote("2020-12-31", 60)
	s := f.open()

	holdings, err := Holdings(s, "2020-12-31")
	require.NoError(t, err)
	require.Len(t, holdings, 2)

	// Sorted by account name.
	brokerage := holdings[0]
	assert.Equal(t, "Brokerage", brokerage.Account)
	assert.InDelta(t, -500.0, brokerage.Cash, 1e-9)
	assert.InDelta(t, 100.0, brokerage.Total, 1e-9) // -500 cash + 600 position
	require.Len(t, brokerage.Positions, 1)
	assert.Equal(t, "Security X", brokerage.Positions[0].Security)
	assert.InDelta(t, 10.0, brokerage.Positions[0].Shares, 1e-9)
	assert.InDelta(t, 60.0, brokerage.Positions[0].Price, 1e-9)
	assert.InDelta(t, 600.0, brokerage.Positions[0].Value, 1e-9)

	checking := holdings[1]
	assert.Equal(t, "Checking", checking.Account)
	assert.InDelta(t, 1200.0, checking.Cash, 1e-9)
	assert.InDelta(t, 1200.0, checking.Total, 1e-9)
	assert.Empty(t, checking.Positions)
}

func TestHoldingsDropsNegligiblePositions(t *testing.T) {
	f := newFixture(t)
	f.addCash(1, "2020-01-01", 5)
	f.addTrade(1, "2020-02-01", 0, 0.003, 13)
	f.addQuote("2020-06-01", 0.1)
	s := f.open()

	holdings, err := Holdings(s, "2020-12-31")
	require.NoError(t, err)
	require.Len(t, holdings, 1)

	// The 0.0003-value position is excluded; only cash remains.
	assert.Equal(t, "Checking", holdings[0].Account)
	assert.Empty(t, holdings[0].Positions)
	assert.InDelta(t, 5.0, holdings[0].Cash, 1e-9)
	assert.InDelta(t, 5.0, holdings[0].Total, 1e-9)
}

func TestHoldingsOmitsEmptyAccounts(t *testing.T) {
	f := newFixture(t)
	f.addCash(1, "2020-01-01", 100)
	f.addCash(1, "2020-02-01", -100)
	f.addCash(2, "2020-03-01", 50)
	s := f.open()

	holdings, err := Holdings(s, "2020-12-31")
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, "Brokerage", holdings[0].Account)
}

func TestHoldingsStockSplitReplacesBalance(t *testing.T) {
	f := newFixture(t)
	f.addTrade(2, "2020-01-10", -500, 10, 13)
	f.addTrade(2, "2020-02-10", 0, 999, 12)
	f.addQuote("2020-12-31", 50)
	s := f.open()

	holdings, err := Holdings(s, "2020-12-31")
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	require.Len(t, holdings[0].Positions, 1)
	assert.InDelta(t, 20.0, holdings[0].Positions[0].Shares, 1e-9)
}
