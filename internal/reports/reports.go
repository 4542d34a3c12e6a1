// Package reports derives summaries from the transaction stream: net worth
// by year, per-account holdings, and cash flow by category. Calculators are
// pure functions over a ledger session; rendering is left to the caller.
package reports

import (
	"math"

	"fjacquet/quicken-query/internal/config"
	"fjacquet/quicken-query/internal/ledger"
	"fjacquet/quicken-query/internal/models"

	"github.com/sirupsen/logrus"
)

var log = config.Logger

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// stockSplitPath marks a split as a replacement-of-balance event: the share
// quantity on such a record is the post-split balance, not a delta.
const stockSplitPath = "Investments:Stock Split"

const (
	// sharePurgeEpsilon bounds share-map growth: a balance this close to
	// zero is a closed position plus floating-point residue.
	sharePurgeEpsilon = 0.0001
	// valueCutoff excludes positions whose evaluated value is negligible.
	valueCutoff = 0.0005
	// totalFloor excludes accounts whose total balance is negligible.
	totalFloor = 0.001
)

// shareBalances tracks signed share quantities per security name.
type shareBalances map[string]float64

// apply folds one transaction record into the balance map, handling the
// stock-split replacement rule.
func (b shareBalances) apply(t models.TransactionSplit) {
	if !t.HasSecurity() {
		return
	}
	shares := t.SecurityShares
	if t.CategoryPath == stockSplitPath {
		if bal, ok := b[t.SecurityName]; ok {
			shares = bal
		}
	}
	b[t.SecurityName] += shares
	if math.Abs(b[t.SecurityName]) < sharePurgeEpsilon {
		delete(b, t.SecurityName)
	}
}

// value evaluates the positions at the given date, skipping those below the
// value cutoff.
func (b shareBalances) value(s *ledger.Session, date string) (float64, error) {
	total := 0.0
	for name, shares := range b {
		price, err := s.PriceOnDate(name, date)
		if err != nil {
			return 0, err
		}
		if v := shares * price; v > valueCutoff {
			total += v
		}
	}
	return total, nil
}
