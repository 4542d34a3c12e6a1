package reports

import (
	"math"
	"sort"

	"fjacquet/quicken-query/internal/ledger"
)

// Position is one security holding evaluated at the report date.
type Position struct {
	Security string
	Shares   float64
	Price    float64
	Value    float64
}

// AccountHolding is the evaluated state of one account: its cash balance and
// the security positions still worth carrying.
type AccountHolding struct {
	Account   string
	Cash      float64
	Total     float64
	Positions []Position
}

// Holdings accumulates per-account cash and share balances over the
// transaction stream and evaluates each account at the asOf date. Positions
// whose value falls below the cutoff are dropped; accounts whose total
// balance is negligible are omitted. Accounts are returned sorted by name.
func Holdings(s *ledger.Session, asOf string) ([]AccountHolding, error) {
	it, err := s.Transactions()
	if err != nil {
		return nil, err
	}
	defer it.Close()

	cash := make(map[string]float64)
	shares := make(map[string]shareBalances)

	for it.Next() {
		t := it.Record()
		if _, ok := cash[t.AccountName]; !ok {
			shares[t.AccountName] = make(shareBalances)
		}
		cash[t.AccountName] += t.Amount
		shares[t.AccountName].apply(t)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(cash))
	for name := range cash {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []AccountHolding
	for _, name := range names {
		holding := AccountHolding{Account: name, Cash: cash[name], Total: cash[name]}

		securityNames := make([]string, 0, len(shares[name]))
		for sec := range shares[name] {
			securityNames = append(securityNames, sec)
		}
		sort.Strings(securityNames)

		for _, sec := range securityNames {
			price, err := s.PriceOnDate(sec, asOf)
			if err != nil {
				return nil, err
			}
			qty := shares[name][sec]
			value := qty * price
			if value <= valueCutoff {
				continue
			}
			holding.Total += value
			holding.Positions = append(holding.Positions, Position{
				Security: sec,
				Shares:   qty,
				Price:    price,
				Value:    value,
			})
		}

		if math.Abs(holding.Total) > totalFloor {
			out = append(out, holding)
		}
	}

	log.WithField("accounts", len(out)).Debug("Computed holdings snapshot")
	return out, nil
}
